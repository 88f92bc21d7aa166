package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPaths(t *testing.T) {
	c := mustDecode(t, `{"a":{"b":"x","c":{"d":"y"}},"e":"z","f":{}}`)

	want := []string{"a", "a.b", "a.c", "a.c.d", "e", "f"}
	if diff := cmp.Diff(want, Paths(c)); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestLeaves(t *testing.T) {
	c := mustDecode(t, `{"a":{"b":"x","c":{"d":"y"}},"e":"z","f":{},"g":["1"]}`)

	want := []string{"a.b", "a.c.d", "e", "g"}
	if diff := cmp.Diff(want, Leaves(c)); diff != "" {
		t.Errorf("Leaves() mismatch (-want +got):\n%s", diff)
	}
}

// Every leaf and every intermediate mapping appears exactly once.
func TestKeySetCoversEveryNode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", `{}`, []string{}},
		{"flat", `{"a":"1","b":"2"}`, []string{"a", "b"}},
		{"nested", `{"a":{"b":{"c":"1"}}}`, []string{"a", "a.b", "a.b.c"}},
		{"empty namespace", `{"a":{}}`, []string{"a"}},
		{"array leaf", `{"a":[{"b":"1"}]}`, []string{"a"}},
		{"siblings", `{"x":{"y":"1","z":"2"},"w":"3"}`, []string{"w", "x", "x.y", "x.z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustDecode(t, tt.input)
			got := NewKeySet(c).Sorted()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewKeySet() mismatch (-want +got):\n%s", diff)
			}
			if paths := Paths(c); len(paths) != len(got) {
				t.Errorf("Paths() returned %d entries, KeySet has %d", len(paths), len(got))
			}
		})
	}
}

func TestKeySetDifference(t *testing.T) {
	a := KeySet{"a": {}, "a.b": {}, "c": {}, "d": {}}
	b := KeySet{"a": {}, "a.b": {}}

	if diff := cmp.Diff([]string{"c", "d"}, a.Difference(b)); diff != "" {
		t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
	}
	if got := b.Difference(a); len(got) != 0 {
		t.Errorf("Difference() of subset = %v, want empty", got)
	}
}

func TestLookup(t *testing.T) {
	c := mustDecode(t, `{"a":{"b":{"c":"deep"}},"s":"leaf"}`)

	tests := []struct {
		path   string
		want   any
		wantOK bool
	}{
		{"a.b.c", "deep", true},
		{"s", "leaf", true},
		{"a.x", nil, false},
		{"s.x", nil, false},
		{"missing.b.c", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Lookup(c, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDeletePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
		want  bool
		after string
	}{
		{"top-level", `{"a":"1","b":"2"}`, "a", true, `{"b":"2"}`},
		{"nested leaf", `{"a":{"b":"1","c":"2"}}`, "a.c", true, `{"a":{"b":"1"}}`},
		{"whole namespace", `{"a":{"b":"1"},"c":"2"}`, "a", true, `{"c":"2"}`},
		{"leaves empty parent", `{"a":{"b":"1"}}`, "a.b", true, `{"a":{}}`},
		{"missing leaf", `{"a":{"b":"1"}}`, "a.x", false, `{"a":{"b":"1"}}`},
		{"missing parent", `{"a":"1"}`, "x.y.z", false, `{"a":"1"}`},
		{"parent is a string", `{"a":"1"}`, "a.b", false, `{"a":"1"}`},
		{"parent is an array", `{"a":[{"b":"1"}]}`, "a.b", false, `{"a":[{"b":"1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustDecode(t, tt.input)
			if got := DeletePath(c, tt.path); got != tt.want {
				t.Errorf("DeletePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if want := mustDecode(t, tt.after); !c.Equal(want) {
				t.Errorf("after DeletePath(%q) = %s, want %s", tt.path, mustEncode(t, c), tt.after)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join("", "a"); got != "a" {
		t.Errorf("Join(\"\", a) = %q", got)
	}
	if got := Join("a.b", "c"); got != "a.b.c" {
		t.Errorf("Join(a.b, c) = %q", got)
	}
}
