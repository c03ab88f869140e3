package semantic

import "fmt"

// UnknownFieldError reports a field reference that is not in the schema.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("Invalid field: %s", e.Field)
}

// TypeMismatchError reports a literal whose inferred type differs from the
// declared type of the field it is compared against.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
	Context  ContextKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Field '%s' in context '%s' expects type '%s', but got '%s'",
		e.Field, e.Context, e.Expected, e.Actual)
}
