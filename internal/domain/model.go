package domain

import (
	"github.com/layerlint/layerlint/internal/domain/layers"
)

// FileRecord is the unit every checker consumes: one discovered source file,
// its layer, and the parsed structural summary. Immutable after extraction.
type FileRecord struct {
	Path    string       `json:"path" yaml:"path"`
	Layer   layers.Layer `json:"-" yaml:"-"`
	Summary *Summary     `json:"-" yaml:"-"`
}

// Summary is the minimal structural view of a parsed source file.
type Summary struct {
	Imports     []string     `json:"imports,omitempty"`
	Classes     []Class      `json:"classes,omitempty"`
	Functions   []Function   `json:"functions,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
}

// Class is a class declaration with the members the checkers care about.
type Class struct {
	Name       string     `json:"name"`
	Bases      []string   `json:"bases,omitempty"`
	Decorators []string   `json:"decorators,omitempty"`
	Fields     []Field    `json:"fields,omitempty"`
	Methods    []Function `json:"methods,omitempty"`

	// AssignsPrivateAttrs is true when the initializer assigns at least one
	// attribute with a private (underscore) prefix.
	AssignsPrivateAttrs bool `json:"assigns_private_attrs,omitempty"`
}

// HasAccessor reports whether any method is decorated as a property.
func (c Class) HasAccessor() bool {
	for _, m := range c.Methods {
		for _, d := range m.Decorators {
			if d == "property" {
				return true
			}
		}
	}
	return false
}

// Field is an attribute declared directly in a class body.
type Field struct {
	Name      string `json:"name"`
	Annotated bool   `json:"annotated,omitempty"`
}

// Function is a function or method declaration.
type Function struct {
	Name       string   `json:"name"`
	Decorators []string `json:"decorators,omitempty"`
}

// Assignment is a module-level assignment target.
type Assignment struct {
	Name string `json:"name"`

	// LooksConstant is true for all-uppercase names with at least one
	// underscore: the author intended a constant, so the strict
	// UPPER_SNAKE_CASE pattern applies.
	LooksConstant bool `json:"looks_constant,omitempty"`
}

// Violation is a single reported rule breach for a specific file.
type Violation struct {
	File    string `json:"file" yaml:"file"`
	Layer   string `json:"layer,omitempty" yaml:"layer,omitempty"`
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

// CheckerResult is the ordered violation list produced by one checker.
// Checkers never see each other's results; the Report owns aggregation.
type CheckerResult struct {
	Checker    string      `json:"checker" yaml:"checker"`
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

func (r CheckerResult) Passed() bool { return len(r.Violations) == 0 }

// Checker rule names, also used as report section headings.
const (
	CheckerDependencyRule = "dependency_rule"
	CheckerNaming         = "naming_convention"
	CheckerEncapsulation  = "encapsulation"
	CheckerLayerContent   = "layer_content"
	CheckerUseCaseTriad   = "use_case_triad"
)

// Warning records a file that was skipped with a recoverable error.
type Warning struct {
	File    string `json:"file" yaml:"file"`
	Message string `json:"message" yaml:"message"`
}

// Report aggregates every checker's result for one run.
type Report struct {
	RootPath     string          `json:"root_path" yaml:"root_path"`
	CommitHash   string          `json:"commit_hash,omitempty" yaml:"commit_hash,omitempty"`
	FilesScanned int             `json:"files_scanned" yaml:"files_scanned"`
	Warnings     []Warning       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Results      []CheckerResult `json:"results" yaml:"results"`
}

// Passed reports whether every checker came back clean.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// TotalViolations counts violations across all checkers. Issues are never
// deduplicated: each checker's findings are independent.
func (r *Report) TotalViolations() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Violations)
	}
	return n
}
