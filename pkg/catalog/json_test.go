package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodePreservesOrder(t *testing.T) {
	c := mustDecode(t, `{"zeta":"z","alpha":{"two":"2","one":"1"},"mid":"m"}`)

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, c.Keys()); diff != "" {
		t.Errorf("top-level keys mismatch (-want +got):\n%s", diff)
	}
	alpha, _ := c.Get("alpha")
	if diff := cmp.Diff([]string{"two", "one"}, alpha.(*Catalog).Keys()); diff != "" {
		t.Errorf("nested keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDuplicateKeys(t *testing.T) {
	c := mustDecode(t, `{"a":"first","b":"x","a":"last"}`)

	if diff := cmp.Diff([]string{"a", "b"}, c.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := c.Get("a"); v != "last" {
		t.Errorf("Get(a) = %v, want last", v)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "empty document"},
		{"whitespace", "  \n", "empty document"},
		{"array", `["a"]`, "must be an object, got array"},
		{"string", `"a"`, "must be an object, got string"},
		{"number", `12`, "must be an object, got number"},
		{"null", `null`, "must be an object, got null"},
		{"truncated", `{"a":`, ""},
		{"bad syntax", `{"a" "b"}`, ""},
		{"trailing object", `{"a":"1"} {"b":"2"}`, "unexpected data"},
		{"trailing comma", `{"a":"1",}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Decode(%q) expected error", tt.input)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Decode(%q) error = %q, want substring %q", tt.input, err, tt.wantMsg)
			}
		})
	}
}

func TestEncodeFormat(t *testing.T) {
	c := mustDecode(t, `{"title":"Files","common":{"save":"Save","empty":{}},"list":[],"n":1.50,"ok":true,"none":null}`)

	want := `{
  "title": "Files",
  "common": {
    "save": "Save",
    "empty": {}
  },
  "list": [],
  "n": 1.50,
  "ok": true,
  "none": null
}
`
	if diff := cmp.Diff(want, mustEncode(t, c)); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeText(t *testing.T) {
	c := New()
	c.Set("greeting", "Grüße, 世界")
	c.Set("html", "<b>Tom & Jerry</b>")
	c.Set("quote", "say \"hi\"\n")

	want := `{
  "greeting": "Grüße, 世界",
  "html": "<b>Tom & Jerry</b>",
  "quote": "say \"hi\"\n"
}
`
	if diff := cmp.Diff(want, mustEncode(t, c)); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptyCatalog(t *testing.T) {
	if got := mustEncode(t, New()); got != "{}\n" {
		t.Errorf("Encode(empty) = %q, want %q", got, "{}\n")
	}
}

func TestEncodeUnsupportedValue(t *testing.T) {
	c := New()
	c.Set("ch", make(chan int))
	var b strings.Builder
	if err := Encode(&b, c); err == nil {
		t.Error("Encode() with channel value should fail")
	}
	if b.Len() != 0 {
		t.Errorf("Encode() wrote %d bytes on failure", b.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	input := `{
  "auth": {
    "login": "Anmelden",
    "errors": {
      "invalid": "Ungültig",
      "codes": [
        1,
        2e3
      ]
    }
  },
  "title": "Dateien"
}
`
	c := mustDecode(t, input)
	if diff := cmp.Diff(input, mustEncode(t, c)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
