package schema

import (
	"time"

	"github.com/footadmin/footadmin/pkg/types"
)

// Value is one typed cell. Only the member matching Type is meaningful.
type Value struct {
	Type FieldType
	Null bool
	Text string
	Int  int64
	Bool bool
	Date time.Time
}

// Values holds a record's typed cells keyed by column name.
type Values map[string]Value

func TextValue(s string) Value     { return Value{Type: Text, Text: s} }
func IntValue(n int64) Value       { return Value{Type: Integer, Int: n} }
func BoolValue(b bool) Value       { return Value{Type: Boolean, Bool: b} }
func DateValue(d types.Date) Value { return Value{Type: Date, Date: d.Time} }
func NullValue(t FieldType) Value  { return Value{Type: t, Null: true} }

// OptionalText maps nil to null.
func OptionalText(p *string) Value {
	if p == nil {
		return NullValue(Text)
	}
	return TextValue(*p)
}

// OptionalInt maps nil to null.
func OptionalInt(p *int64) Value {
	if p == nil {
		return NullValue(Integer)
	}
	return IntValue(*p)
}

// Equal compares two values, using time equality for dates.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type || v.Null != o.Null {
		return false
	}
	if v.Null {
		return true
	}
	switch v.Type {
	case Text:
		return v.Text == o.Text
	case Integer:
		return v.Int == o.Int
	case Boolean:
		return v.Bool == o.Bool
	case Date:
		return v.Date.Equal(o.Date)
	}
	return false
}

// Equal reports whether both maps hold equal values for the same columns.
func (vs Values) Equal(o Values) bool {
	if len(vs) != len(o) {
		return false
	}
	for k, v := range vs {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (vs Values) Text(name string) string { return vs[name].Text }
func (vs Values) Int(name string) int64   { return vs[name].Int }
func (vs Values) Bool(name string) bool   { return vs[name].Bool }

func (vs Values) Date(name string) types.Date {
	return types.Date{Time: vs[name].Date}
}

// OptionalText returns nil for a null or missing cell.
func (vs Values) OptionalText(name string) *string {
	v, ok := vs[name]
	if !ok || v.Null {
		return nil
	}
	s := v.Text
	return &s
}

// OptionalInt returns nil for a null or missing cell.
func (vs Values) OptionalInt(name string) *int64 {
	v, ok := vs[name]
	if !ok || v.Null {
		return nil
	}
	n := v.Int
	return &n
}
