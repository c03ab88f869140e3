package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgHiRed).SprintFunc()
	warningColor = color.New(color.FgHiYellow).SprintFunc()
	okColor      = color.New(color.FgHiGreen).SprintFunc()
	labelColor   = color.New(color.FgHiCyan).SprintFunc()
)

// FormatText returns a human-readable string representation of the report.
// Each finding is on its own line with rule ID, severity, message, and location.
// The facts collected by a successful validation follow, then a summary line.
// Colors are applied only when color output is enabled.
func FormatText(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s\n", r.File)
	if r.Query != "" {
		fmt.Fprintf(&b, "Query: %s\n", r.Query)
	}
	if r.Parser != "" {
		fmt.Fprintf(&b, "Parser: %s\n", r.Parser)
	}
	if r.FieldSchema != "" {
		fmt.Fprintf(&b, "Field schema: %s\n", r.FieldSchema)
	}

	for _, f := range r.Errors {
		writeFinding(&b, f)
	}
	for _, f := range r.Warnings {
		writeFinding(&b, f)
	}

	if c := r.Collected; c != nil {
		writeList(&b, "Indices", c.Indices)
		writeList(&b, "Fields", c.FieldList)
		writeList(&b, "Dataset comparisons", c.DatasetComparisons)
	}

	summary := fmt.Sprintf("%d errors, %d warnings", r.Summary.ErrorCount, r.Summary.WarningCount)
	if !r.HasErrors() && !r.HasWarnings() {
		summary = okColor(summary)
	}
	fmt.Fprintf(&b, "\n%s\n", summary)
	return b.String()
}

func writeFinding(b *strings.Builder, f Finding) {
	sev := f.Severity.String()
	switch f.Severity {
	case SeverityError:
		sev = errorColor(sev)
	case SeverityWarning:
		sev = warningColor(sev)
	}

	loc := f.Location.Path
	if f.Location.Field != "" {
		loc = "field " + f.Location.Field
	}
	if loc == "" {
		fmt.Fprintf(b, "  [%s] %s: %s\n", f.Rule, sev, f.Message)
		return
	}
	fmt.Fprintf(b, "  [%s] %s: %s at %s\n", f.Rule, sev, f.Message, loc)
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", labelColor(label), strings.Join(items, ", "))
}
