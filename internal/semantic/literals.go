package semantic

import (
	"github.com/foundry-zero/esqlcheck/internal/ast"
)

// ContextKind names the construct that ties a literal to a field.
type ContextKind string

const (
	ContextNone       ContextKind = ""
	ContextComparison ContextKind = "Comparison"
	ContextLogicalIn  ContextKind = "LogicalIn"
)

// checkLiteral verifies that a literal compared against a schema field has
// the field's declared type. Literals outside a comparison context, or tied
// to a field the schema does not declare, are not checked here.
func (p *pass) checkLiteral(n *ast.Node) error {
	field, ctx := findComparisonContext(n)
	if field == "" || !p.schema.Has(field) {
		return nil
	}

	expected := p.schema[field]
	actual, ok := inferLiteralType(n, ctx)
	if !ok {
		// null and array literals carry no inferred type
		return nil
	}
	if expected != actual {
		return &TypeMismatchError{Field: field, Expected: expected, Actual: actual, Context: ctx}
	}
	return nil
}

// comparisonContext returns the nearest ancestor of n that is a comparison or
// a logical-in expression. Outer contexts are never consulted.
func comparisonContext(n *ast.Node) (*ast.Node, ContextKind) {
	for anc := n.Parent(); anc != nil; anc = anc.Parent() {
		switch anc.Kind {
		case ast.KindComparison:
			return anc, ContextComparison
		case ast.KindLogicalIn:
			return anc, ContextLogicalIn
		}
	}
	return nil, ContextNone
}

// findComparisonContext returns the field operand of the comparison context
// enclosing a literal: the first child of the first operand. The operand is
// taken by position, whatever rule the parser labelled it with.
func findComparisonContext(n *ast.Node) (string, ContextKind) {
	anc, ctx := comparisonContext(n)
	if ctx == ContextNone {
		return "", ContextNone
	}
	return anc.Child(0).Child(0).GetText(), ctx
}

// inferLiteralType maps a literal's kind to a schema type. The boolean result
// is false for literal kinds that have no mapping.
func inferLiteralType(n *ast.Node, ctx ContextKind) (string, bool) {
	if ctx != ContextComparison && ctx != ContextLogicalIn {
		return TypeUnknown, true
	}
	switch n.Kind {
	case ast.KindStringLiteral:
		return TypeKeyword, true
	case ast.KindIntegerLiteral, ast.KindQualifiedIntegerLiteral:
		return TypeInteger, true
	case ast.KindDecimalLiteral:
		return TypeDecimal, true
	case ast.KindBooleanLiteral:
		return TypeBoolean, true
	}
	return "", false
}
