// Package tabular turns row-oriented external data (CSV and friends) into
// constructed entities ready for environment registration. It is an adapter
// boundary: the engine knows nothing about it, and per-row build functions
// own the mapping from raw fields to fallible entity constructors.
//
// Rows can optionally be validated against a JSON Schema before construction,
// so malformed source data surfaces as structural errors with row context
// instead of half-built populations.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/simweave/simweave/core"
)

// Row is one record of tabular input, keyed by column name. Values stay raw
// strings; the typed accessors parse on demand.
type Row map[string]string

// Field returns the raw value and whether the column exists.
func (r Row) Field(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Text returns the value of a required column.
func (r Row) Text(key string) (string, error) {
	v, ok := r[key]
	if !ok || v == "" {
		return "", &core.ValidationError{Field: key, Value: v, Message: "required column is missing or empty"}
	}
	return v, nil
}

// Int parses a required integer column.
func (r Row) Int(key string) (int, error) {
	raw, err := r.Text(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &core.ValidationError{Field: key, Value: raw, Message: "must be an integer"}
	}
	return v, nil
}

// Float parses a required numeric column.
func (r Row) Float(key string) (float64, error) {
	raw, err := r.Text(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &core.ValidationError{Field: key, Value: raw, Message: "must be a number"}
	}
	return v, nil
}

// ReadCSV decodes CSV input with a header line into rows.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Schema validates rows against a compiled JSON Schema.
type Schema struct {
	compiled *jsonschema.Schema
}

// CompileSchema compiles a JSON Schema document from source text.
func CompileSchema(source string) (*Schema, error) {
	compiled, err := jsonschema.CompileString("row.schema.json", source)
	if err != nil {
		return nil, fmt.Errorf("compile row schema: %w", err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate checks one row against the schema. String values that parse as
// numbers or booleans are coerced first, since CSV carries no types.
func (s *Schema) Validate(row Row) error {
	doc := make(map[string]any, len(row))
	for k, v := range row {
		doc[k] = coerce(v)
	}
	if err := s.compiled.Validate(doc); err != nil {
		return fmt.Errorf("row validation: %w", err)
	}
	return nil
}

func coerce(v string) any {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

// Build constructs one entity per row via the supplied fallible constructor.
// The first failing row aborts with its index in the error; no partial
// population is returned.
func Build[T core.Registrable](rows []Row, build func(Row) (T, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		entity, err := build(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, entity)
	}
	return out, nil
}

// LoadCSV reads CSV input, optionally validates every row against schema
// (nil skips validation), and builds the entity list ready for registration.
func LoadCSV[T core.Registrable](r io.Reader, schema *Schema, build func(Row) (T, error)) ([]T, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	if schema != nil {
		for i, row := range rows {
			if err := schema.Validate(row); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
	}
	return Build(rows, build)
}
