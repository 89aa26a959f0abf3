package rules

import (
	"fmt"
	"strings"

	"github.com/layerlint/layerlint/internal/domain"
	"github.com/layerlint/layerlint/internal/domain/layers"
)

// exemptBases are interface-like or structural-data base classes whose
// subclasses legitimately expose public attributes.
var exemptBases = map[string]bool{
	"Protocol":  true,
	"BaseModel": true,
}

// exemptDecorators mark structural data declarations.
var exemptDecorators = map[string]bool{
	"dataclass": true,
}

// CheckEncapsulation flags leaky state in the inner layers: public annotated
// attributes on regular classes, and entity classes that hold private
// attributes without exposing @property accessors. Only domain and
// application files are inspected.
func CheckEncapsulation(files []domain.FileRecord) domain.CheckerResult {
	result := domain.CheckerResult{Checker: domain.CheckerEncapsulation}

	for _, f := range files {
		if f.Summary == nil {
			continue
		}
		if f.Layer != layers.Domain && f.Layer != layers.Application {
			continue
		}

		for _, c := range f.Summary.Classes {
			if isExempt(c) {
				continue
			}

			for _, field := range c.Fields {
				if !field.Annotated || strings.HasPrefix(field.Name, "_") {
					continue
				}
				if field.Name == strings.ToUpper(field.Name) {
					continue // class-level constant
				}
				result.Violations = append(result.Violations, domain.Violation{
					File:  f.Path,
					Layer: f.Layer.String(),
					Rule:  domain.CheckerEncapsulation,
					Message: fmt.Sprintf("class '%s' has public attribute '%s'; consider a private underscore-prefixed field",
						c.Name, field.Name),
				})
			}

			if c.AssignsPrivateAttrs && !c.HasAccessor() && strings.Contains(strings.ToLower(f.Path), "entity") {
				result.Violations = append(result.Violations, domain.Violation{
					File:  f.Path,
					Layer: f.Layer.String(),
					Rule:  domain.CheckerEncapsulation,
					Message: fmt.Sprintf("class '%s' has private attributes but no @property accessors for controlled access",
						c.Name),
				})
			}
		}
	}

	return result
}

// isExempt reports whether a class carries a structural-data decorator or an
// interface-like base, either bare or dotted (typing.Protocol).
func isExempt(c domain.Class) bool {
	for _, d := range c.Decorators {
		if exemptDecorators[d] {
			return true
		}
	}
	for _, b := range c.Bases {
		if exemptBases[b] {
			return true
		}
		if i := strings.LastIndex(b, "."); i >= 0 && exemptBases[b[i+1:]] {
			return true
		}
	}
	return false
}
