// Package parser implements domain.SourceParser for Python sources using the
// tree-sitter grammar.
package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/layerlint/layerlint/internal/domain"
)

// PythonParser extracts a structural summary from Python source code.
type PythonParser struct{}

func New() *PythonParser {
	return &PythonParser{}
}

// Parse builds a domain.Summary from raw file content. Content whose syntax
// tree contains error nodes is rejected with domain.ErrParse so the caller
// can skip the file with a warning.
func (p *PythonParser) Parse(content []byte) (*domain.Summary, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w: invalid syntax", domain.ErrParse)
	}

	summary := &domain.Summary{}

	walk(root, func(n *sitter.Node) {
		switch n.Type() {
		case "import_statement":
			summary.Imports = append(summary.Imports, importedModules(n, content)...)
		case "import_from_statement":
			if module := fromModule(n, content); module != "" {
				summary.Imports = append(summary.Imports, module)
			}
		case "class_definition":
			summary.Classes = append(summary.Classes, parseClass(n, content))
		case "function_definition":
			summary.Functions = append(summary.Functions, domain.Function{
				Name:       fieldContent(n, "name", content),
				Decorators: decoratorsOf(n, content),
			})
		}
	})

	summary.Assignments = moduleAssignments(root, content)

	return summary, nil
}

// fieldContent returns the source text of a named field, or the empty string
// when the node does not carry that field.
func fieldContent(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(source)
}

// walk visits every named node in the tree, depth first.
func walk(node *sitter.Node, visit func(*sitter.Node)) {
	visit(node)
	for i := 0; i < int(node.NamedChildCount()); i++ {
		walk(node.NamedChild(i), visit)
	}
}

// importedModules handles "import X" and "import X as y": the module path X
// is what the checkers classify, aliases are irrelevant.
func importedModules(node *sitter.Node, source []byte) []string {
	var modules []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			modules = append(modules, child.Content(source))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				modules = append(modules, name.Content(source))
			}
		}
	}
	return modules
}

// fromModule handles "from X import Y": only the target module X
// contributes, never the imported symbol names. Relative imports keep their
// dotted tail ("from .entities import T" contributes "entities").
func fromModule(node *sitter.Node, source []byte) string {
	module := node.ChildByFieldName("module_name")
	if module == nil {
		return ""
	}
	if module.Type() == "relative_import" {
		for i := 0; i < int(module.NamedChildCount()); i++ {
			if child := module.NamedChild(i); child.Type() == "dotted_name" {
				return child.Content(source)
			}
		}
		return ""
	}
	return module.Content(source)
}

func parseClass(node *sitter.Node, source []byte) domain.Class {
	class := domain.Class{
		Name:       fieldContent(node, "name", source),
		Decorators: decoratorsOf(node, source),
	}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			base := supers.NamedChild(i)
			switch base.Type() {
			case "identifier", "attribute":
				class.Bases = append(class.Bases, base.Content(source))
			}
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return class
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)

		definition := child
		if child.Type() == "decorated_definition" {
			if def := child.ChildByFieldName("definition"); def != nil {
				definition = def
			}
		}

		switch definition.Type() {
		case "expression_statement":
			if field, ok := classField(definition, source); ok {
				class.Fields = append(class.Fields, field)
			}
		case "function_definition":
			method := domain.Function{
				Name:       fieldContent(definition, "name", source),
				Decorators: decoratorsOf(definition, source),
			}
			class.Methods = append(class.Methods, method)
			if method.Name == "__init__" && assignsPrivateAttrs(definition, source) {
				class.AssignsPrivateAttrs = true
			}
		}
	}

	return class
}

// classField extracts an attribute declared directly in the class body, with
// or without a type annotation.
func classField(stmt *sitter.Node, source []byte) (domain.Field, bool) {
	if stmt.NamedChildCount() == 0 {
		return domain.Field{}, false
	}
	assign := stmt.NamedChild(0)
	if assign.Type() != "assignment" {
		return domain.Field{}, false
	}
	left := assign.ChildByFieldName("left")
	if left == nil || left.Type() != "identifier" {
		return domain.Field{}, false
	}
	return domain.Field{
		Name:      left.Content(source),
		Annotated: assign.ChildByFieldName("type") != nil,
	}, true
}

// assignsPrivateAttrs reports whether an initializer body assigns any
// attribute with an underscore prefix (self._name = …).
func assignsPrivateAttrs(initNode *sitter.Node, source []byte) bool {
	body := initNode.ChildByFieldName("body")
	if body == nil {
		return false
	}
	found := false
	walk(body, func(n *sitter.Node) {
		if found || n.Type() != "assignment" {
			return
		}
		left := n.ChildByFieldName("left")
		if left == nil || left.Type() != "attribute" {
			return
		}
		if attr := left.ChildByFieldName("attribute"); attr != nil {
			if strings.HasPrefix(attr.Content(source), "_") {
				found = true
			}
		}
	})
	return found
}

// decoratorsOf collects the decorator names applied to a definition. A bare
// decorator contributes its expression ("property", "functools.wraps"), a
// call decorator contributes its callee ("dataclass" for @dataclass(...)).
func decoratorsOf(def *sitter.Node, source []byte) []string {
	parent := def.Parent()
	if parent == nil || parent.Type() != "decorated_definition" {
		return nil
	}
	var names []string
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		child := parent.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}
		expr := child.NamedChild(0)
		if expr == nil {
			continue
		}
		if expr.Type() == "call" {
			if fn := expr.ChildByFieldName("function"); fn != nil {
				expr = fn
			}
		}
		names = append(names, expr.Content(source))
	}
	return names
}

// moduleAssignments collects top-level assignment targets only; assignments
// inside functions or classes never look like module constants.
func moduleAssignments(root *sitter.Node, source []byte) []domain.Assignment {
	var assignments []domain.Assignment
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		assign := stmt.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}
		left := assign.ChildByFieldName("left")
		if left == nil || left.Type() != "identifier" {
			continue
		}
		name := left.Content(source)
		assignments = append(assignments, domain.Assignment{
			Name:          name,
			LooksConstant: looksConstant(name),
		})
	}
	return assignments
}

// looksConstant mirrors Python's name.isupper() plus an underscore check: at
// least one letter, no lowercase letters, at least one separator.
func looksConstant(name string) bool {
	return strings.Contains(name, "_") &&
		name == strings.ToUpper(name) &&
		name != strings.ToLower(name)
}
