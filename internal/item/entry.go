package item

import (
	"maps"
	"reflect"

	"github.com/oklog/ulid/v2"
)

// ImplicitField is the field name used for the value of a single-column list.
const ImplicitField = "item"

// ID identifies a stored entry for the lifetime of its collection.
type ID = ulid.ULID

// Fields maps column keys to cell values.
type Fields map[string]any

// Equal reports whether both field maps hold deeply equal values.
func (f Fields) Equal(other Fields) bool {
	return reflect.DeepEqual(f, other)
}

// Entry is a single record in a Collection.
type Entry struct {
	ID     ID
	Fields Fields
}

// Value returns the value stored under key.
// The boolean is false when the entry has no such field.
func (e Entry) Value(key string) (any, bool) {
	if e.Fields == nil {
		return nil, false
	}
	v, ok := e.Fields[key]
	return v, ok
}

// Wrap converts a caller-supplied value into Fields.
// Maps are copied so later edits do not leak back to the caller;
// anything else is stored under ImplicitField.
func Wrap(v any) Fields {
	switch t := v.(type) {
	case Fields:
		return maps.Clone(t)
	case map[string]any:
		return maps.Clone(Fields(t))
	default:
		return Fields{ImplicitField: v}
	}
}

// Unwrap is the inverse of Wrap for the given list shape.
// Multi-column lists hand back a copy of the whole field map.
func Unwrap(f Fields, multiColumn bool) any {
	if multiColumn {
		return map[string]any(maps.Clone(f))
	}
	return f[ImplicitField]
}
