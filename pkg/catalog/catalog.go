package catalog

import (
	"reflect"
	"slices"
)

// Catalog is an ordered mapping from string keys to values.
//
// Values are *Catalog for nested namespaces, or any JSON scalar (string,
// json.Number, bool, nil), or []any for arrays. The zero value is an empty
// catalog ready to use.
type Catalog struct {
	keys   []string
	values map[string]any
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{values: make(map[string]any)}
}

// Len returns the number of top-level keys.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the top-level keys in document order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.keys)
}

// Get returns the value stored under key.
func (c *Catalog) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]
	return v, ok
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position and has its value replaced.
func (c *Catalog) Set(key string, v any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// Delete removes key and reports whether it was present.
func (c *Catalog) Delete(key string) bool {
	if c == nil {
		return false
	}
	if _, ok := c.values[key]; !ok {
		return false
	}
	delete(c.values, key)
	if i := slices.Index(c.keys, key); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
	return true
}

// Clone returns a deep copy. Nested catalogs and arrays are copied; scalars
// are immutable and shared.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{
		keys:   slices.Clone(c.keys),
		values: make(map[string]any, len(c.values)),
	}
	for k, v := range c.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case *Catalog:
		return v.Clone()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether c and o hold the same keys and values. Key order is
// not compared.
func (c *Catalog) Equal(o *Catalog) bool {
	if c.Len() != o.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	for k, v := range c.values {
		ov, ok := o.values[k]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch a := a.(type) {
	case *Catalog:
		bc, ok := b.(*Catalog)
		return ok && a.Equal(bc)
	case []any:
		bs, ok := b.([]any)
		if !ok || len(a) != len(bs) {
			return false
		}
		for i := range a {
			if !valuesEqual(a[i], bs[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}
