// Package schema validates the documents esql-check reads (syntax tree dumps
// and field schema files) against embedded JSON Schemas, and loads field
// schemas.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed all:schemas
var schemaFS embed.FS

// Document identifies which embedded schema a document is validated against.
type Document string

const (
	DocumentTree   Document = "syntax-tree.json"
	DocumentFields Document = "field-schema.json"
)

// SchemaError represents a single schema validation error.
type SchemaError struct {
	Path       string `json:"path"`
	Message    string `json:"message"`
	ParseError bool   `json:"-"` // true when the error is a JSON parse or read failure
}

func (e SchemaError) String() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// SchemaValidator validates documents against the embedded JSON schemas.
type SchemaValidator struct {
	schemas map[Document]*jsonschema.Schema
}

// NewSchemaValidator creates a new validator with the embedded schemas loaded.
func NewSchemaValidator() (*SchemaValidator, error) {
	c := jsonschema.NewCompiler()

	// Resource URLs are relative to schemas/v1/ so that $ref paths like
	// "definitions/node.json" resolve.
	const schemaRoot = "schemas/v1/"
	err := fs.WalkDir(schemaFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		data, err := schemaFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded schema %s: %w", path, err)
		}

		var schemaDoc any
		if err := json.Unmarshal(data, &schemaDoc); err != nil {
			return fmt.Errorf("parse embedded schema %s: %w", path, err)
		}

		id := strings.TrimPrefix(path, schemaRoot)
		if err := c.AddResource(id, schemaDoc); err != nil {
			return fmt.Errorf("add schema resource %s (id=%s): %w", path, id, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load embedded schemas: %w", err)
	}

	v := &SchemaValidator{schemas: make(map[Document]*jsonschema.Schema, 2)}
	for _, doc := range []Document{DocumentTree, DocumentFields} {
		s, err := c.Compile(string(doc))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", doc, err)
		}
		v.schemas[doc] = s
	}
	return v, nil
}

// Validate parses data as JSON and validates it against the schema for kind.
func (v *SchemaValidator) Validate(kind Document, data []byte) []SchemaError {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []SchemaError{{Message: fmt.Sprintf("failed to parse JSON: %v", err), ParseError: true}}
	}
	return v.ValidateDocument(kind, doc)
}

// ValidateDocument validates an already-decoded document against the schema
// for kind.
func (v *SchemaValidator) ValidateDocument(kind Document, doc any) []SchemaError {
	s, ok := v.schemas[kind]
	if !ok {
		return []SchemaError{{Message: fmt.Sprintf("no schema for document kind %q", kind)}}
	}

	err := s.Validate(doc)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []SchemaError{{Message: err.Error()}}
	}
	return collectErrors(validationErr)
}

// collectErrors recursively collects all leaf validation errors from a ValidationError.
func collectErrors(ve *jsonschema.ValidationError) []SchemaError {
	var errors []SchemaError

	instancePath := "/" + strings.Join(ve.InstanceLocation, "/")
	if len(ve.InstanceLocation) == 0 {
		instancePath = ""
	}

	if len(ve.Causes) == 0 {
		msg := ve.Error()
		if msg != "" {
			errors = append(errors, SchemaError{
				Path:    instancePath,
				Message: msg,
			})
		}
	} else {
		for _, cause := range ve.Causes {
			errors = append(errors, collectErrors(cause)...)
		}
	}

	return errors
}
