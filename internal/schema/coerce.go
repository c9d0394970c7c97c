package schema

import (
	"strconv"
	"strings"

	"github.com/footadmin/footadmin/pkg/types"
)

// truthy lists the lowercase spellings read as true; anything else is false.
var truthy = map[string]bool{"true": true, "1": true, "yes": true}

// Parse coerces a raw cell to the field's type following the package blank
// policy. Failures are *types.ValidationError.
func Parse(f Field, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" && f.Default != "" {
		raw, trimmed = f.Default, strings.TrimSpace(f.Default)
	}

	if trimmed == "" {
		switch {
		case f.Identity:
			return Value{}, &types.ValidationError{Field: f.Name, Message: "identity is blank"}
		case f.Optional:
			return NullValue(f.Type), nil
		}
		switch f.Type {
		case Integer:
			return IntValue(0), nil
		case Boolean:
			return BoolValue(false), nil
		case Date:
			return Value{}, &types.ValidationError{Field: f.Name, Message: "required date is blank"}
		default:
			return TextValue(raw), nil
		}
	}

	switch f.Type {
	case Integer:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return Value{}, &types.ValidationError{Field: f.Name, Value: raw, Message: "not an integer"}
		}
		return IntValue(n), nil
	case Boolean:
		return BoolValue(truthy[strings.ToLower(trimmed)]), nil
	case Date:
		d, err := types.ParseDate(trimmed)
		if err != nil {
			return Value{}, &types.ValidationError{Field: f.Name, Value: raw, Message: "not a YYYY-MM-DD date"}
		}
		return DateValue(d), nil
	default:
		if f.Identity {
			return TextValue(trimmed), nil
		}
		return TextValue(raw), nil
	}
}

// Format renders a value as it is written to disk. Null renders blank.
func Format(v Value) string {
	if v.Null {
		return ""
	}
	switch v.Type {
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case Boolean:
		return strconv.FormatBool(v.Bool)
	case Date:
		return v.Date.Format(types.DateLayout)
	default:
		return v.Text
	}
}
