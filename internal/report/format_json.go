package report

import "encoding/json"

// FormatJSON returns the report, including any collected query facts, as
// indented JSON bytes.
func FormatJSON(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
