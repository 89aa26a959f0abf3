package rules

import (
	"fmt"
	"strings"

	"github.com/layerlint/layerlint/internal/domain"
	"github.com/layerlint/layerlint/internal/domain/layers"
)

const useCaseMarker = "UseCase"

// CheckUseCaseTriad enforces the use-case triad convention: every class named
// <X>UseCase in an application-layer use-case file must be accompanied by
// <X>Request and <X>Response classes in the same file. The use-case marker is
// matched anywhere on the file's path, so files grouped under a use_cases/
// directory are covered too.
func CheckUseCaseTriad(files []domain.FileRecord) domain.CheckerResult {
	result := domain.CheckerResult{Checker: domain.CheckerUseCaseTriad}

	for _, f := range files {
		if f.Layer != layers.Application || f.Summary == nil {
			continue
		}
		lower := strings.ToLower(f.Path)
		if !strings.Contains(lower, "use_case") && !strings.Contains(lower, "usecase") {
			continue
		}

		declared := make(map[string]bool, len(f.Summary.Classes))
		for _, c := range f.Summary.Classes {
			declared[c.Name] = true
		}

		for _, c := range f.Summary.Classes {
			if !strings.Contains(c.Name, useCaseMarker) {
				continue
			}
			// The companion name is the use-case name with every marker
			// occurrence stripped, then the suffix appended:
			// CreateTaskUseCase expects CreateTaskRequest.
			stem := strings.ReplaceAll(c.Name, useCaseMarker, "")
			for _, companion := range []string{"Request", "Response"} {
				expected := stem + companion
				if declared[expected] {
					continue
				}
				result.Violations = append(result.Violations, domain.Violation{
					File:  f.Path,
					Layer: f.Layer.String(),
					Rule:  domain.CheckerUseCaseTriad,
					Message: fmt.Sprintf("use case '%s' is missing companion class '%s'",
						c.Name, expected),
				})
			}
		}
	}

	return result
}
