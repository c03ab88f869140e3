package semantic

import (
	"github.com/foundry-zero/esqlcheck/internal/ast"
	"github.com/foundry-zero/esqlcheck/internal/logging"
)

var log = logging.MustGetLogger("semantic")

// Options controls a Validator.
type Options struct {
	Limits ast.Limits // Optional bounds on the walked tree.
}

// Validator checks syntax trees against one schema. It keeps no per-query
// state and is safe for concurrent use as long as the schema is not mutated.
type Validator struct {
	schema Schema
	opts   Options
}

// pass is the state of a single validation walk.
type pass struct {
	schema  Schema
	session *Session
}

// NewValidator creates a Validator for the given schema.
func NewValidator(schema Schema, opts Options) *Validator {
	if schema == nil {
		schema = Schema{}
	}
	return &Validator{schema: schema, opts: opts}
}

// Validate walks root and returns the collected session, or the first
// *UnknownFieldError or *TypeMismatchError in document order. On error the
// partial session is discarded.
func (v *Validator) Validate(root *ast.Node) (*Session, error) {
	p := &pass{schema: v.schema, session: newSession()}

	w := ast.NewWalker(v.opts.Limits)
	w.Handle(ast.KindQualifiedName, p.enterQualifiedName)
	w.Handle(ast.KindSourceIdentifier, p.enterSourceIdentifier)
	for _, k := range ast.LiteralKinds {
		w.Handle(k, p.checkLiteral)
	}

	if err := w.Walk(root); err != nil {
		log.Debugf("validation stopped: %v", err)
		return nil, err
	}

	log.Debugf("validated query: %d fields, %d indices, %d dataset comparisons",
		len(p.session.FieldList), len(p.session.Indices), len(p.session.DatasetComparisons))
	return p.session, nil
}
