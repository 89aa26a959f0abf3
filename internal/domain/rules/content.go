package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/layerlint/layerlint/internal/domain"
	"github.com/layerlint/layerlint/internal/domain/layers"
)

// forbiddenTokens lists file-name tokens that signal a concern living in the
// wrong layer. Matching is substring on the lowercased base name with the
// extension stripped.
var forbiddenTokens = map[layers.Layer][]string{
	layers.Domain: {
		"controller", "router", "endpoint", "api",
		"database", "sql", "orm", "http", "request", "response",
	},
	layers.Application: {
		"controller", "router", "endpoint", "sql", "orm", "http",
	},
	layers.Infrastructure: {
		"use_case", "usecase", "entity", "value_object",
	},
	layers.Frameworks: nil,
}

// CheckLayerContent verifies that a file's name matches the layer it lives
// in: no controllers in the domain, no use cases in the infrastructure.
func CheckLayerContent(files []domain.FileRecord) domain.CheckerResult {
	result := domain.CheckerResult{Checker: domain.CheckerLayerContent}

	for _, f := range files {
		if !f.Layer.Classified() {
			continue
		}

		base := path.Base(f.Path)
		stem := strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))

		for _, token := range forbiddenTokens[f.Layer] {
			if !strings.Contains(stem, token) {
				continue
			}
			result.Violations = append(result.Violations, domain.Violation{
				File:  f.Path,
				Layer: f.Layer.String(),
				Rule:  domain.CheckerLayerContent,
				Message: fmt.Sprintf("file '%s' contains '%s' which does not belong in the %s layer",
					base, token, f.Layer),
			})
		}
	}

	return result
}
