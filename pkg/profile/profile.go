/*
Package profile projects single, typed fields out of a Gravatar profile
document.
*/
package profile

import (
	"encoding/json"
	"math"
)

/*
Document is a profile as decoded from the API. It is never mutated here.
*/
type Document map[string]any

/*
Value is the result of projecting a field. A Value that is not Present is the
neutral empty result and renders as JSON null.
*/
type Value struct {
	Field   string
	Shape   Shape
	Present bool
	raw     any
}

/*
Project looks up field in doc and returns it typed by the descriptor table.
Missing keys and unknown field names both yield an empty Value, not an error.
*/
func Project(doc Document, field string) Value {
	d, known := Lookup(field)
	if !known {
		return Value{Field: field, Shape: ShapeUnknown}
	}

	raw, ok := doc[field]
	if !ok || raw == nil {
		return Value{Field: field, Shape: d.Shape}
	}

	if coerced, ok := coerce(d.Shape, raw); ok {
		raw = coerced
	}

	return Value{Field: field, Shape: d.Shape, Present: true, raw: raw}
}

// Raw returns the projected value, or nil when absent.
func (value Value) Raw() any {
	return value.raw
}

func (value Value) Text() (string, bool) {
	s, ok := value.raw.(string)
	return s, ok
}

func (value Value) Bool() (bool, bool) {
	b, ok := value.raw.(bool)
	return b, ok
}

func (value Value) Int() (int, bool) {
	i, ok := value.raw.(int)
	return i, ok
}

func (value Value) Records() ([]map[string]any, bool) {
	r, ok := value.raw.([]map[string]any)
	return r, ok
}

func (value Value) Record() (map[string]any, bool) {
	r, ok := value.raw.(map[string]any)
	return r, ok
}

func (value Value) MarshalJSON() ([]byte, error) {
	if !value.Present {
		return []byte("null"), nil
	}

	return json.Marshal(value.raw)
}

/*
coerce narrows values that come out of encoding/json in a wider type than the
declared shape. Values that already match, or cannot be narrowed, are left
alone and reported as not coerced.
*/
func coerce(shape Shape, raw any) (any, bool) {
	switch shape {
	case ShapeInteger:
		switch n := raw.(type) {
		case float64:
			if n == math.Trunc(n) {
				return int(n), true
			}
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return int(i), true
			}
		case int64:
			return int(n), true
		}
	case ShapeRecordList:
		items, ok := raw.([]any)
		if !ok {
			return nil, false
		}

		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}

		return out, true
	case ShapeRecord:
		// Decoded JSON is already map[string]any; nested Documents only
		// appear in profiles assembled in code.
		if m, ok := raw.(Document); ok {
			return map[string]any(m), true
		}
	}

	return nil, false
}
