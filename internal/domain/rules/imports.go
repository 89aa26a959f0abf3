// Package rules contains the layer and convention checkers. Every checker is
// a pure function of the scanned file set: same input, same ordered output.
package rules

import (
	"fmt"

	"github.com/layerlint/layerlint/internal/domain"
	"github.com/layerlint/layerlint/internal/domain/layers"
)

// CheckImports enforces the Dependency Rule: a file may only reference
// modules in its own layer or further inward. Unclassified files and
// external imports are never checked. Violations come out in file discovery
// order, then reference order within a file.
func CheckImports(files []domain.FileRecord) domain.CheckerResult {
	result := domain.CheckerResult{Checker: domain.CheckerDependencyRule}

	for _, f := range files {
		if !f.Layer.Classified() || f.Summary == nil {
			continue
		}
		for _, imp := range f.Summary.Imports {
			target := layers.ClassifyImport(imp)
			if !target.Classified() || target <= f.Layer {
				continue
			}
			result.Violations = append(result.Violations, domain.Violation{
				File:  f.Path,
				Layer: f.Layer.String(),
				Rule:  domain.CheckerDependencyRule,
				Message: fmt.Sprintf("%s (%s) imports %s (%s); dependencies must flow inward.",
					f.Path, f.Layer, imp, target),
			})
		}
	}

	return result
}
