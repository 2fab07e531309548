package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// Schema is a JSON schema for a model answer plus the neutral default of
// every required top-level key.
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
	defaults map[string]json.RawMessage
	keys     []string
	raw      []byte
}

// NewSchema compiles definition and indexes defaults, which must be a JSON
// object holding a value for every required key.
func NewSchema(name, definition string, defaults []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(definition))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(defaults, &fields); err != nil {
		return nil, fmt.Errorf("schema %s defaults: %w", name, err)
	}
	res, err := compiled.Validate(gojsonschema.NewBytesLoader(defaults))
	if err != nil {
		return nil, fmt.Errorf("schema %s defaults: %w", name, err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("schema %s defaults do not validate: %v", name, res.Errors())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Schema{name: name, compiled: compiled, defaults: fields, keys: keys, raw: defaults}, nil
}

// MustSchema is NewSchema for package level schemas.
func MustSchema(name, definition string, defaults []byte) *Schema {
	s, err := NewSchema(name, definition, defaults)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Defaults() []byte {
	return append([]byte(nil), s.raw...)
}

// Conform always returns a JSON object that validates against the schema.
// It recovers the object from raw through the direct, embedded and default
// stages, fills missing or null keys from the defaults and resets keys that
// fail validation. A *MalformedResponseError describes any repair; the
// returned document is usable either way.
func (s *Schema) Conform(raw string) ([]byte, error) {
	chain := Chain{DirectStage{}, EmbeddedStage{}, DefaultStage{Defaults: s.raw}}
	doc, stage, chainErr := chain.Decode(raw)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		_ = json.Unmarshal(s.raw, &obj)
		stage = DefaultStage{}.Name()
	}

	defaulted := make(map[string]bool)
	for _, key := range s.keys {
		if r := gjson.GetBytes(doc, key); !r.Exists() || r.Type == gjson.Null {
			obj[key] = s.defaults[key]
			defaulted[key] = true
		}
	}

	out, invalid, err := s.validate(obj)
	if err != nil {
		return s.Defaults(), &MalformedResponseError{Stage: DefaultStage{}.Name(), Cause: err}
	}
	if len(invalid) > 0 {
		for _, key := range invalid {
			def, known := s.defaults[key]
			if !known {
				delete(obj, key)
				continue
			}
			obj[key] = def
			defaulted[key] = true
		}
		out, invalid, err = s.validate(obj)
		if err != nil || len(invalid) > 0 {
			return s.Defaults(), &MalformedResponseError{Stage: DefaultStage{}.Name(), Defaulted: s.keys, Cause: err}
		}
	}

	if stage == (DirectStage{}).Name() && len(defaulted) == 0 {
		return out, nil
	}
	if stage == (DefaultStage{}).Name() {
		return out, &MalformedResponseError{Stage: stage, Defaulted: s.keys, Cause: chainErr}
	}
	return out, &MalformedResponseError{Stage: stage, Defaulted: sortedKeys(defaulted), Cause: chainErr}
}

// validate marshals obj and returns the top-level keys that failed. Keys
// without a default are undeclared ones and get dropped by the caller.
func (s *Schema) validate(obj map[string]json.RawMessage) ([]byte, []string, error) {
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.compiled.Validate(gojsonschema.NewBytesLoader(out))
	if err != nil {
		return nil, nil, err
	}
	if res.Valid() {
		return out, nil, nil
	}

	failed := make(map[string]bool)
	for _, e := range res.Errors() {
		key := topLevelKey(e)
		if key == "" {
			return out, s.keys, nil
		}
		failed[key] = true
	}
	return out, sortedKeys(failed), nil
}

func topLevelKey(e gojsonschema.ResultError) string {
	field := e.Field()
	if field == "(root)" {
		if p, ok := e.Details()["property"].(string); ok {
			return p
		}
		return ""
	}
	return strings.SplitN(field, ".", 2)[0]
}

func sortedKeys(m map[string]bool) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
