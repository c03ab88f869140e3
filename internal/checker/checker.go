// Package checker orchestrates document and semantic validation of query
// syntax tree dumps, producing a consolidated report.
package checker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	uuid "github.com/satori/go.uuid"

	"github.com/foundry-zero/esqlcheck/internal/ast"
	"github.com/foundry-zero/esqlcheck/internal/logging"
	"github.com/foundry-zero/esqlcheck/internal/report"
	"github.com/foundry-zero/esqlcheck/internal/schema"
	"github.com/foundry-zero/esqlcheck/internal/semantic"
)

var log = logging.MustGetLogger("checker")

// CheckOptions controls a single check.
type CheckOptions struct {
	Schema   string     // Field schema file; empty means no field is declared.
	TreeOnly bool       // Only run JSON Schema validation of the tree dump.
	Limits   ast.Limits // Bounds on tree size, applied while loading and walking.
}

// cachedFields is a loaded field schema and the file state it was read from.
type cachedFields struct {
	modTime time.Time
	size    int64
	fields  *schema.FieldSchema
}

// Checker orchestrates validation of tree dump files.
type Checker struct {
	sv *schema.SchemaValidator

	mu    sync.Mutex
	cache *lru.Cache // absolute schema path -> *cachedFields
}

// NewChecker creates a Checker with the embedded JSON Schema validator and a
// field schema cache holding up to cacheSize entries.
func NewChecker(cacheSize int) (*Checker, error) {
	sv, err := schema.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("initialize schema validator: %w", err)
	}
	return &Checker{sv: sv, cache: lru.New(cacheSize)}, nil
}

// Fields returns the field schema stored at path. Loaded schemas are cached
// until the file changes. An empty path yields a schema declaring no fields.
func (c *Checker) Fields(path string) (*schema.FieldSchema, error) {
	if path == "" {
		return &schema.FieldSchema{Fields: semantic.Schema{}}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve field schema path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("cannot access field schema: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.cache.Get(abs); ok {
		cf := v.(*cachedFields)
		if cf.modTime.Equal(info.ModTime()) && cf.size == info.Size() {
			return cf.fields, nil
		}
	}

	fs, err := c.sv.LoadFields(abs)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded field schema %s: %d fields", abs, len(fs.Fields))
	c.cache.Add(abs, &cachedFields{modTime: info.ModTime(), size: info.Size(), fields: fs})
	return fs, nil
}

// Check validates the tree dump at path and returns a report. It runs JSON
// Schema validation of the dump first, then semantic validation against the
// field schema (if the dump is valid and TreeOnly is not set).
func (c *Checker) Check(path string, opts CheckOptions) *report.Report {
	r := report.NewReport(path)
	r.RunID = uuid.NewV4().String()
	log.Infof("run %s: checking %s", r.RunID, path)

	if _, err := os.Stat(path); err != nil {
		r.AddFinding(report.NewError(report.RuleInput, fmt.Sprintf("cannot access file: %v", err),
			report.Location{File: path}))
		return r
	}

	fields, err := c.Fields(opts.Schema)
	if err != nil {
		r.AddFinding(report.NewError(report.RuleInput, fmt.Sprintf("cannot load field schema: %v", err),
			report.Location{File: opts.Schema}))
		return r
	}
	r.FieldSchema = fields.Name

	data, err := ast.ReadFile(path)
	if err != nil {
		r.AddFinding(report.NewError(report.RuleInput, err.Error(), report.Location{File: path}))
		return r
	}

	// --- Phase 1: JSON Schema validation of the dump ---
	schemaErrors := c.sv.Validate(schema.DocumentTree, data)
	r.TreeValid = len(schemaErrors) == 0

	for _, se := range schemaErrors {
		rule := report.RuleSchema
		if se.ParseError {
			rule = report.RuleInput
		}
		r.AddFinding(report.NewError(rule, se.Message,
			report.Location{File: path, Path: se.Path}))
	}

	if !r.TreeValid || opts.TreeOnly {
		return r
	}

	// --- Phase 2: Load tree ---
	tree, err := ast.ParseTree(data, opts.Limits)
	if err != nil {
		r.AddFinding(errorFinding(path, fmt.Errorf("failed to load tree: %w", err)))
		return r
	}
	r.Query = tree.Query
	r.Parser = tree.Parser

	// --- Phase 3: Semantic validation ---
	session, err := semantic.NewValidator(fields.Fields, semantic.Options{Limits: opts.Limits}).Validate(tree.Root)
	if err != nil {
		r.AddFinding(errorFinding(path, err))
		return r
	}
	r.Collected = session

	if len(session.Indices) == 0 {
		r.AddFinding(report.NewWarning(report.RuleNoIndex, "query names no source index",
			report.Location{File: path}))
	}
	return r
}

// errorFinding converts a loading or validation error into a finding.
func errorFinding(path string, err error) report.Finding {
	var (
		ufe *semantic.UnknownFieldError
		tme *semantic.TypeMismatchError
		le  *ast.LimitError
	)
	switch {
	case errors.As(err, &ufe):
		return report.NewError(report.RuleUnknownField, err.Error(),
			report.Location{File: path, Field: ufe.Field})
	case errors.As(err, &tme):
		return report.NewError(report.RuleTypeMismatch, err.Error(),
			report.Location{File: path, Field: tme.Field})
	case errors.As(err, &le):
		return report.NewError(report.RuleLimit, err.Error(), report.Location{File: path})
	default:
		return report.NewError(report.RuleInput, err.Error(), report.Location{File: path})
	}
}
