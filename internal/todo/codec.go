package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/tada/internal/model"
)

//go:embed items.schema.json
var itemsSchemaJSON string

const itemsSchemaURL = "tada://items.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func itemsSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(itemsSchemaURL, strings.NewReader(itemsSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(itemsSchemaURL)
	})
	return schema, schemaErr
}

// Encode serializes the list in the persisted layout:
// [{"id":1700000000000,"text":"buy milk","completed":false}]
func Encode(items []model.Item) (string, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted list. JSON null decodes to an empty list; any
// other document must be an array of {id, text, completed} records.
func Decode(raw string) ([]model.Item, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "null" {
		return []model.Item{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("json unmarshal: trailing data after list")
	}

	sch, err := itemsSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid item list: %s", describeSchemaError(err))
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// describeSchemaError flattens the leaf causes of a validation error into
// "location: message" pairs.
func describeSchemaError(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var parts []string
	collectSchemaErrors(&parts, ve)
	if len(parts) == 0 {
		return ve.Error()
	}
	return strings.Join(parts, "; ")
}

func collectSchemaErrors(parts *[]string, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*parts = append(*parts, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(parts, cause)
	}
}

// Indent pretty-prints an encoded list for human output.
func Indent(encoded string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(encoded), "", "  "); err != nil {
		return "", fmt.Errorf("json indent: %w", err)
	}
	return buf.String(), nil
}
