// Package attrs provides read-only access to the attribute bag handed to
// elements and widgets by compiled templates.
//
// A bag is an arbitrary map[string]any, conceptually partitioned into a
// "wml" namespace (runtime-reserved keys) and an "html" namespace
// (attributes applied to the produced node). Paths descend nested maps and
// may be delimited with ':' or '.', so "wml:id" and "html.class" both work.
package attrs

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Reader wraps a raw attribute bag. The bag is owned by the caller that
// constructed the Reader; a Reader never mutates it.
type Reader struct {
	bag map[string]any
}

// NewReader creates a Reader over bag. A nil bag behaves as an empty one.
func NewReader(bag map[string]any) *Reader {
	return &Reader{bag: bag}
}

// splitPath splits on ':' and '.'.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == ':' || r == '.'
	})
}

// Get resolves path against the bag. The second return is false when any
// segment is missing or the leaf is nil; absence anywhere in the path is
// equivalent to absence of the leaf.
func (r *Reader) Get(path string) (any, bool) {
	var current any = r.bag
	for _, segment := range splitPath(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Has reports whether path resolves to a non-absent value.
func (r *Reader) Has(path string) bool {
	_, ok := r.Get(path)
	return ok
}

// Read returns the value at path, or def when absent.
func (r *Reader) Read(path string, def any) any {
	if v, ok := r.Get(path); ok {
		return v
	}
	return def
}

// ReadString returns the string at path, or def when absent or not a string.
func (r *Reader) ReadString(path, def string) string {
	if v, ok := r.Get(path); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// ReadBool returns the bool at path, or def when absent or not a bool.
func (r *Reader) ReadBool(path string, def bool) bool {
	if v, ok := r.Get(path); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// ReadInt returns the integer at path, or def when absent.
// Float values with no fractional part are accepted, since bags decoded
// from JSON carry numbers as float64.
func (r *Reader) ReadInt(path string, def int) int {
	v, ok := r.Get(path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return def
}

// Decode decodes the sub-bag at path into out, which must be a pointer to
// a struct or map. Absent paths leave out untouched.
func (r *Reader) Decode(path string, out any) error {
	v, ok := r.Get(path)
	if !ok {
		return nil
	}
	return mapstructure.Decode(v, out)
}
