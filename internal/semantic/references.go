package semantic

import (
	"github.com/foundry-zero/esqlcheck/internal/ast"
)

// enterQualifiedName collects a field reference and checks it against the
// schema. Names introduced directly by an eval command are derived, not
// schema fields, and are skipped.
func (p *pass) enterQualifiedName(n *ast.Node) error {
	if parent := n.Parent(); parent != nil && parent.Kind == ast.KindEvalCommand {
		return nil
	}

	field := n.Text
	p.session.FieldList = append(p.session.FieldList, field)

	if !p.schema.Has(field) {
		return &UnknownFieldError{Field: field}
	}

	if field == DatasetField {
		p.session.DatasetComparisons = append(p.session.DatasetComparisons, datasetComparisonText(n))
	}
	return nil
}

// enterSourceIdentifier records an index pattern when the identifier sits in
// a from command. Anywhere else it names a field and is checked like one,
// without dataset comparison tracking.
func (p *pass) enterSourceIdentifier(n *ast.Node) error {
	if parent := n.Parent(); parent != nil && parent.Kind == ast.KindFromCommand {
		p.session.Indices = append(p.session.Indices, n.Text)
		return nil
	}

	field := n.Text
	p.session.FieldList = append(p.session.FieldList, field)

	if !p.schema.Has(field) {
		return &UnknownFieldError{Field: field}
	}
	return nil
}

// datasetComparisonText returns the text of the comparison a dataset
// reference takes part in, falling back to its parent expression.
func datasetComparisonText(n *ast.Node) string {
	if ctx, _ := comparisonContext(n); ctx != nil {
		return ctx.Text
	}
	return n.Parent().GetText()
}
