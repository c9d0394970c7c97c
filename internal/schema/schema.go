// Package schema declares the typed shape of each entity kind and coerces
// raw delimited-text cells to typed values and back.
//
// Blank policy: a blank cell (empty after trimming spaces) takes the field's
// Default when one is declared; otherwise optional fields become null,
// integers become 0, booleans become false and text stays as written.
// Blank dates on required fields and blank identities are rejected.
// Optional text made only of spaces is blank too and is stored as null;
// the store returns records as stored, so a create or update already shows
// the null.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/footadmin/footadmin/pkg/types"
)

// FieldType is the semantic type of a column.
type FieldType int

const (
	Text FieldType = iota
	Integer
	Boolean
	Date
)

func (t FieldType) String() string {
	switch t {
	case Text:
		return "text"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field declares one column of an entity kind.
type Field struct {
	Name     string    // Column header, matched exactly.
	Type     FieldType // Semantic type.
	Optional bool      // Blank input becomes null instead of a zero value.
	Default  string    // Raw text substituted for blank input before parsing.
	Identity bool      // The record's unique id; exactly one per schema.
}

// Schema is the canonical field list of one entity kind.
type Schema struct {
	name     string
	fields   []Field
	index    map[string]int
	identity int
}

// Schema declaration errors.
var (
	ErrNoFields          = errors.New("schema has no fields")
	ErrDuplicateField    = errors.New("duplicate field name")
	ErrIdentityCount     = errors.New("schema needs exactly one identity field")
	ErrIdentityType      = errors.New("identity must be a required text or integer field")
	ErrDefaultUnparsable = errors.New("field default does not parse")
)

// New validates and returns a schema for the named entity kind.
func New(name string, fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	s := &Schema{
		name:     name,
		fields:   append([]Field(nil), fields...),
		index:    make(map[string]int, len(fields)),
		identity: -1,
	}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup || f.Name == "" {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		s.index[f.Name] = i
		if f.Identity {
			if s.identity >= 0 {
				return nil, ErrIdentityCount
			}
			if f.Optional || (f.Type != Text && f.Type != Integer) {
				return nil, ErrIdentityType
			}
			s.identity = i
		}
		if f.Default != "" {
			if _, err := Parse(Field{Name: f.Name, Type: f.Type}, f.Default); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrDefaultUnparsable, f.Name, err)
			}
		}
	}
	if s.identity < 0 {
		return nil, ErrIdentityCount
	}
	return s, nil
}

// MustNew is New for package-level declarations; it panics on error.
func MustNew(name string, fields ...Field) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return s
}

// Name returns the entity kind.
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the declared fields in order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Columns returns the header row in declared order.
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.fields))
	for i, f := range s.fields {
		cols[i] = f.Name
	}
	return cols
}

// Field looks up a field by column name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Identity returns the identity field.
func (s *Schema) Identity() Field { return s.fields[s.identity] }

// Unknown returns header columns the schema does not declare.
func (s *Schema) Unknown(header []string) []string {
	var unknown []string
	for _, col := range header {
		if _, ok := s.index[col]; !ok {
			unknown = append(unknown, col)
		}
	}
	return unknown
}

// CanonicalID normalizes a raw identity to its stored form. Integer
// identities are re-rendered in decimal so "07" and "7" name the same record.
func (s *Schema) CanonicalID(raw string) (types.ID, error) {
	f := s.Identity()
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &types.ValidationError{Field: f.Name, Message: "identity is blank"}
	}
	if f.Type == Integer {
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return "", &types.ValidationError{Field: f.Name, Value: raw, Message: "identity is not an integer"}
		}
		return types.ID(strconv.FormatInt(n, 10)), nil
	}
	return types.ID(trimmed), nil
}

// Decode coerces one row. header names the columns of cells; columns the
// schema does not declare are ignored and declared columns absent from the
// row are treated as blank.
func (s *Schema) Decode(header, cells []string) (Values, error) {
	raw := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(cells) {
			raw[col] = cells[i]
		}
	}
	vals := make(Values, len(s.fields))
	for _, f := range s.fields {
		v, err := Parse(f, raw[f.Name])
		if err != nil {
			return nil, err
		}
		vals[f.Name] = v
	}
	return vals, nil
}

// Format renders values as text keyed by column name. Fields missing from
// vals render blank.
func (s *Schema) Format(vals Values) map[string]string {
	out := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		v, ok := vals[f.Name]
		if !ok {
			out[f.Name] = ""
			continue
		}
		out[f.Name] = Format(v)
	}
	return out
}

// Encode renders values as a row in declared column order.
func (s *Schema) Encode(vals Values) []string {
	formatted := s.Format(vals)
	row := make([]string, len(s.fields))
	for i, f := range s.fields {
		row[i] = formatted[f.Name]
	}
	return row
}
