// Package semantic validates a parsed query syntax tree against a field
// schema: every referenced field must exist, and every literal compared
// against a field must carry that field's declared type.
package semantic

// Declared field types understood by literal inference. Schemas may declare
// other types; literals are simply never inferred as those.
const (
	TypeKeyword = "keyword"
	TypeInteger = "integer"
	TypeDecimal = "decimal"
	TypeBoolean = "boolean"
	TypeUnknown = "unknown"
)

// DatasetField is the field whose comparisons are collected into
// Session.DatasetComparisons.
const DatasetField = "event.dataset"

// Schema maps field names to declared types. It is read-only during
// validation and may be shared between concurrent validations.
type Schema map[string]string

// Has reports whether field is declared.
func (s Schema) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// Session holds what one validation pass collected. Every slice is
// append-only and in document order.
type Session struct {
	FieldList          []string `json:"fields"`
	Indices            []string `json:"indices"`
	DatasetComparisons []string `json:"dataset_comparisons"`
}

func newSession() *Session {
	return &Session{
		FieldList:          []string{},
		Indices:            []string{},
		DatasetComparisons: []string{},
	}
}
