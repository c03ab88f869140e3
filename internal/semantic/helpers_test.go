package semantic

import (
	"strings"

	"github.com/foundry-zero/esqlcheck/internal/ast"
)

// The builders below assemble trees shaped like the ones the query parser
// emits: operands of comparisons are wrapped in operatorExpression nodes,
// members of an IN list in valueExpression nodes.

func query(commands ...*ast.Node) *ast.Node {
	texts := make([]string, len(commands))
	for i, c := range commands {
		texts[i] = c.Text
	}
	return ast.NewRule("singleStatement", strings.Join(texts, " | "), commands...)
}

func from(indices ...string) *ast.Node {
	children := make([]*ast.Node, len(indices))
	for i, idx := range indices {
		children[i] = ast.New(ast.KindSourceIdentifier, idx)
	}
	return ast.New(ast.KindFromCommand, "FROM "+strings.Join(indices, ", "), children...)
}

func where(cond *ast.Node) *ast.Node {
	return ast.New(ast.KindWhereCommand, "WHERE "+cond.Text, cond)
}

// eval builds `EVAL name = expr`.
func eval(name string, expr *ast.Node) *ast.Node {
	return ast.New(ast.KindEvalCommand, "EVAL "+name+" = "+expr.Text,
		ast.New(ast.KindQualifiedName, name),
		ast.NewRule("ASSIGN", "="),
		expr,
	)
}

func field(name string) *ast.Node {
	return ast.New(ast.KindOperatorExpression, name, ast.New(ast.KindQualifiedName, name))
}

func lit(kind ast.Kind, text string) *ast.Node {
	return ast.New(ast.KindOperatorExpression, text, ast.New(kind, text))
}

func str(s string) *ast.Node { return lit(ast.KindStringLiteral, `"`+s+`"`) }

func cmp(left *ast.Node, op string, right *ast.Node) *ast.Node {
	return ast.New(ast.KindComparison, left.Text+" "+op+" "+right.Text,
		left, ast.NewRule("comparisonOperator", op), right)
}

func arith(left *ast.Node, op string, right *ast.Node) *ast.Node {
	return ast.NewRule("arithmeticBinary", left.Text+" "+op+" "+right.Text,
		left, ast.NewRule("operator", op), right)
}

func and(left, right *ast.Node) *ast.Node {
	return ast.NewRule("logicalBinary", left.Text+" AND "+right.Text,
		left, ast.NewRule("AND", "AND"), right)
}

// in builds `value IN (members...)`; value and members are operator
// expressions as produced by field and lit.
func in(value *ast.Node, members ...*ast.Node) *ast.Node {
	children := []*ast.Node{ast.New(ast.KindValueExpression, value.Text, value), ast.NewRule("IN", "IN")}
	texts := make([]string, len(members))
	for i, m := range members {
		children = append(children, ast.New(ast.KindValueExpression, m.Text, m))
		texts[i] = m.Text
	}
	return ast.New(ast.KindLogicalIn, value.Text+" IN ("+strings.Join(texts, ", ")+")", children...)
}
