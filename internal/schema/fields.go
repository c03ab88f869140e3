package schema

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/blang/semver"
	"gopkg.in/yaml.v3"

	"github.com/foundry-zero/esqlcheck/internal/semantic"
)

// SupportedFieldSchemaVersions is the range of field schema file versions
// this build understands.
const SupportedFieldSchemaVersions = ">=1.0.0 <2.0.0"

var supportedRange = semver.MustParseRange(SupportedFieldSchemaVersions)

// FieldSchema is a decoded field schema file.
type FieldSchema struct {
	Name    string
	Version semver.Version
	Fields  semantic.Schema
}

// DocumentError reports a document that failed JSON Schema validation.
type DocumentError struct {
	Document Document
	Errors   []SchemaError
}

func (e *DocumentError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, se := range e.Errors {
		msgs[i] = se.String()
	}
	return fmt.Sprintf("invalid %s document: %s", e.Document, strings.Join(msgs, "; "))
}

// VersionError reports a field schema file whose version is outside
// SupportedFieldSchemaVersions.
type VersionError struct {
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported field schema version %q (want %s)", e.Version, SupportedFieldSchemaVersions)
}

// LoadFields reads a YAML or JSON field schema file.
func (v *SchemaValidator) LoadFields(path string) (*FieldSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field schema: %w", err)
	}
	parsed, err := v.ParseFields(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// ParseFields decodes a field schema document. Nested field maps are
// flattened into dotted names, so
//
//	fields:
//	  host:
//	    name: keyword
//
// declares host.name.
func (v *SchemaValidator) ParseFields(data []byte) (*FieldSchema, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse field schema: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("field schema is empty")
	}

	if errs := v.ValidateDocument(DocumentFields, doc); len(errs) > 0 {
		return nil, &DocumentError{Document: DocumentFields, Errors: errs}
	}

	raw, _ := doc["version"].(string)
	version, err := semver.ParseTolerant(raw)
	if err != nil || !supportedRange(version) {
		return nil, &VersionError{Version: raw}
	}

	name, _ := doc["name"].(string)
	fields := semantic.Schema{}
	if m, ok := doc["fields"].(map[string]any); ok {
		if err := flattenFields("", m, fields); err != nil {
			return nil, err
		}
	}
	return &FieldSchema{Name: name, Version: version, Fields: fields}, nil
}

func flattenFields(prefix string, m map[string]any, out semantic.Schema) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := prefix + k
		switch val := m[k].(type) {
		case string:
			if prev, ok := out[name]; ok && prev != val {
				return fmt.Errorf("field %q declared twice with types %q and %q", name, prev, val)
			}
			out[name] = val
		case map[string]any:
			if err := flattenFields(name+".", val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("field %q has unsupported declaration %T", name, val)
		}
	}
	return nil
}
