package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/layerlint/layerlint/internal/domain"
)

var (
	pascalCaseRE = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	snakeCaseRE  = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	upperSnakeRE = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// CheckNaming verifies naming conventions: PascalCase classes, snake_case
// functions, UPPER_SNAKE_CASE constants. It runs over every file, classified
// or not, since naming is layer-independent.
func CheckNaming(files []domain.FileRecord) domain.CheckerResult {
	result := domain.CheckerResult{Checker: domain.CheckerNaming}

	for _, f := range files {
		if f.Summary == nil {
			continue
		}

		for _, c := range f.Summary.Classes {
			if pascalCaseRE.MatchString(c.Name) {
				continue
			}
			result.Violations = append(result.Violations, domain.Violation{
				File:    f.Path,
				Layer:   f.Layer.String(),
				Rule:    domain.CheckerNaming,
				Message: fmt.Sprintf("class '%s' should use PascalCase", c.Name),
			})
		}

		for _, fn := range f.Summary.Functions {
			if isDunder(fn.Name) || snakeCaseRE.MatchString(fn.Name) {
				continue
			}
			msg := fmt.Sprintf("function '%s' should use snake_case", fn.Name)
			if suggestion := toSnakeCase(fn.Name); suggestion != "" && suggestion != fn.Name {
				msg = fmt.Sprintf("function '%s' should use snake_case (e.g. '%s')", fn.Name, suggestion)
			}
			result.Violations = append(result.Violations, domain.Violation{
				File:    f.Path,
				Layer:   f.Layer.String(),
				Rule:    domain.CheckerNaming,
				Message: msg,
			})
		}

		for _, a := range f.Summary.Assignments {
			// Double condition: only names that already look intended as
			// constants are held to the strict pattern.
			if !a.LooksConstant || upperSnakeRE.MatchString(a.Name) {
				continue
			}
			result.Violations = append(result.Violations, domain.Violation{
				File:    f.Path,
				Layer:   f.Layer.String(),
				Rule:    domain.CheckerNaming,
				Message: fmt.Sprintf("constant '%s' should use UPPER_SNAKE_CASE", a.Name),
			})
		}
	}

	return result
}

// isDunder reports names like __init__ that are exempt from naming checks.
func isDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// toSnakeCase suggests a snake_case spelling for a camelCase identifier.
func toSnakeCase(name string) string {
	var words []string
	for _, w := range camelcase.Split(name) {
		w = strings.Trim(w, "_")
		if w == "" {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, "_")
}
