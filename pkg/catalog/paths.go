package catalog

import (
	"slices"
	"strings"
)

// Separator joins mapping keys into a key path.
const Separator = "."

// Join appends key to the key path prefix.
func Join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

// Paths returns the key path of every node in c in document pre-order: each
// mapping's own path comes before the paths of its children.
func Paths(c *Catalog) []string {
	var out []string
	walk(c, "", func(path string, _ any) {
		out = append(out, path)
	})
	return out
}

// Leaves returns the key paths of every value that is not itself a mapping.
func Leaves(c *Catalog) []string {
	var out []string
	walk(c, "", func(path string, v any) {
		if _, ok := v.(*Catalog); !ok {
			out = append(out, path)
		}
	})
	return out
}

func walk(c *Catalog, prefix string, fn func(path string, v any)) {
	if c == nil {
		return
	}
	for _, k := range c.keys {
		v := c.values[k]
		path := Join(prefix, k)
		fn(path, v)
		if sub, ok := v.(*Catalog); ok {
			walk(sub, path, fn)
		}
	}
}

// KeySet is a set of key paths.
type KeySet map[string]struct{}

// NewKeySet returns the set of all key paths in c.
func NewKeySet(c *Catalog) KeySet {
	s := make(KeySet)
	walk(c, "", func(path string, _ any) {
		s[path] = struct{}{}
	})
	return s
}

// Has reports whether path is in the set.
func (s KeySet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the members of s in lexicographic order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Difference returns the paths in s that are not in other, sorted.
func (s KeySet) Difference(other KeySet) []string {
	var out []string
	for k := range s {
		if !other.Has(k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Lookup returns the value at path.
func Lookup(c *Catalog, path string) (any, bool) {
	segments := strings.Split(path, Separator)
	parent, ok := descend(c, segments[:len(segments)-1])
	if !ok {
		return nil, false
	}
	return parent.Get(segments[len(segments)-1])
}

// DeletePath removes the node at path and reports whether anything was
// removed. A missing intermediate mapping means the node is already gone and
// is reported as false, not as an error. The parent mapping is left in place
// even when it ends up empty.
func DeletePath(c *Catalog, path string) bool {
	segments := strings.Split(path, Separator)
	parent, ok := descend(c, segments[:len(segments)-1])
	if !ok {
		return false
	}
	return parent.Delete(segments[len(segments)-1])
}

func descend(c *Catalog, segments []string) (*Catalog, bool) {
	cur := c
	for _, seg := range segments {
		v, ok := cur.Get(seg)
		if !ok {
			return nil, false
		}
		sub, ok := v.(*Catalog)
		if !ok {
			return nil, false
		}
		cur = sub
	}
	return cur, cur != nil
}
