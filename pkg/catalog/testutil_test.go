package catalog

import (
	"strings"
	"testing"
)

// mustDecode decodes a JSON literal or fails the test.
func mustDecode(t *testing.T, s string) *Catalog {
	t.Helper()
	c, err := Decode(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Decode(%s) error: %v", s, err)
	}
	return c
}

// mustEncode encodes c or fails the test.
func mustEncode(t *testing.T, c *Catalog) string {
	t.Helper()
	var b strings.Builder
	if err := Encode(&b, c); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	return b.String()
}
