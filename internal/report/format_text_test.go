package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/foundry-zero/esqlcheck/internal/semantic"
)

func init() {
	color.NoColor = true
}

func TestFormatTextEmpty(t *testing.T) {
	r := NewReport("clean.json")
	r.TreeValid = true
	out := FormatText(r)

	if !strings.Contains(out, "File: clean.json") {
		t.Error("output should contain file name")
	}
	if !strings.Contains(out, "0 errors, 0 warnings") {
		t.Errorf("expected zero summary, got:\n%s", out)
	}
}

func TestFormatTextWithFindings(t *testing.T) {
	r := NewReport("bad.json")
	r.AddFinding(NewError(RuleSchema, "missing property 'text'", Location{
		File: "bad.json",
		Path: "/root/children/0",
	}))
	r.AddFinding(NewWarning(RuleNoIndex, "query names no source index", Location{
		File: "bad.json",
	}))

	out := FormatText(r)

	errIdx := strings.Index(out, RuleSchema)
	warnIdx := strings.Index(out, RuleNoIndex)
	if errIdx < 0 || warnIdx < 0 {
		t.Fatalf("missing rule IDs in output:\n%s", out)
	}
	if errIdx > warnIdx {
		t.Error("errors should appear before warnings")
	}

	if !strings.Contains(out, "[SCHEMA] error: missing property 'text' at /root/children/0") {
		t.Errorf("error finding not formatted correctly:\n%s", out)
	}
	if !strings.Contains(out, "[WARN-01] warning: query names no source index\n") {
		t.Errorf("warning finding not formatted correctly:\n%s", out)
	}
	if !strings.Contains(out, "1 errors, 1 warnings") {
		t.Errorf("summary wrong:\n%s", out)
	}
}

func TestFormatTextFieldLocation(t *testing.T) {
	r := NewReport("q.json")
	r.AddFinding(NewError(RuleUnknownField, "Invalid field: foo", Location{File: "q.json", Field: "foo"}))

	out := FormatText(r)
	if !strings.Contains(out, "[UNKNOWN-FIELD] error: Invalid field: foo at field foo") {
		t.Errorf("field location missing:\n%s", out)
	}
}

func TestFormatTextCollected(t *testing.T) {
	r := NewReport("q.json")
	r.TreeValid = true
	r.Query = `FROM logs-* | WHERE event.dataset == "nginx"`
	r.Parser = "esql-antlr"
	r.FieldSchema = "logs"
	r.Collected = &semantic.Session{
		FieldList:          []string{"event.dataset"},
		Indices:            []string{"logs-*", "metrics-*"},
		DatasetComparisons: []string{`event.dataset == "nginx"`},
	}

	out := FormatText(r)
	for _, want := range []string{
		`Query: FROM logs-* | WHERE event.dataset == "nginx"`,
		"Parser: esql-antlr",
		"Field schema: logs",
		"Indices: logs-*, metrics-*",
		"Fields: event.dataset",
		`Dataset comparisons: event.dataset == "nginx"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTextCollectedEmptyListsOmitted(t *testing.T) {
	r := NewReport("q.json")
	r.Collected = &semantic.Session{Indices: []string{"idx"}}

	out := FormatText(r)
	if strings.Contains(out, "Parser:") || strings.Contains(out, "Field schema:") {
		t.Errorf("unset parser and schema name should be omitted:\n%s", out)
	}
	if strings.Contains(out, "Fields:") || strings.Contains(out, "Dataset comparisons:") {
		t.Errorf("empty lists should be omitted:\n%s", out)
	}
}
