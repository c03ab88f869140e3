package ast

import "fmt"

// Kind tags a syntax node. The set is closed: grammar rules the validator
// does not care about collapse into KindOther.
type Kind int

const (
	KindOther Kind = iota

	// References.
	KindQualifiedName
	KindSourceIdentifier

	// Literals.
	KindNullLiteral
	KindIntegerLiteral
	KindQualifiedIntegerLiteral
	KindDecimalLiteral
	KindBooleanLiteral
	KindStringLiteral
	KindNumericArrayLiteral
	KindBooleanArrayLiteral
	KindStringArrayLiteral

	// Expressions.
	KindComparison
	KindLogicalIn
	KindOperatorExpression
	KindValueExpression

	// Commands.
	KindFromCommand
	KindWhereCommand
	KindEvalCommand
)

var kindNames = map[Kind]string{
	KindOther:                   "other",
	KindQualifiedName:           "qualifiedName",
	KindSourceIdentifier:        "sourceIdentifier",
	KindNullLiteral:             "nullLiteral",
	KindIntegerLiteral:          "integerLiteral",
	KindQualifiedIntegerLiteral: "qualifiedIntegerLiteral",
	KindDecimalLiteral:          "decimalLiteral",
	KindBooleanLiteral:          "booleanLiteral",
	KindStringLiteral:           "stringLiteral",
	KindNumericArrayLiteral:     "numericArrayLiteral",
	KindBooleanArrayLiteral:     "booleanArrayLiteral",
	KindStringArrayLiteral:      "stringArrayLiteral",
	KindComparison:              "comparison",
	KindLogicalIn:               "logicalIn",
	KindOperatorExpression:      "operatorExpression",
	KindValueExpression:         "valueExpression",
	KindFromCommand:             "fromCommand",
	KindWhereCommand:            "whereCommand",
	KindEvalCommand:             "evalCommand",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if k != KindOther {
			m[name] = k
		}
	}
	return m
}()

// LiteralKinds lists every literal kind in declaration order.
var LiteralKinds = []Kind{
	KindNullLiteral,
	KindIntegerLiteral,
	KindQualifiedIntegerLiteral,
	KindDecimalLiteral,
	KindBooleanLiteral,
	KindStringLiteral,
	KindNumericArrayLiteral,
	KindBooleanArrayLiteral,
	KindStringArrayLiteral,
}

// String returns the grammar rule name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a grammar rule name to its Kind. Unrecognized names map to
// KindOther.
func ParseKind(name string) Kind {
	if k, ok := kindsByName[name]; ok {
		return k
	}
	return KindOther
}
