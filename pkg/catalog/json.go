package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// indent is the per-level indentation used by [Encode].
const indent = "  "

// Decode reads a single JSON object from r. Key order is preserved and
// numbers are decoded as json.Number. Anything after the object other than
// whitespace is an error.
func Decode(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty document")
	}
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top-level value must be an object, got %s", describe(tok))
	}

	c, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return c, nil
}

// decodeObject reads members up to and including the closing brace. The
// opening brace has already been consumed.
func decodeObject(dec *json.Decoder) (*Catalog, error) {
	c := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %s", describe(tok))
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		c.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	out := []any{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", len(out), err)
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q", rune(t))
	default:
		return t, nil
	}
}

func describe(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return fmt.Sprintf("%q", rune(t))
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", tok)
}

// Encode writes c to w as indented JSON followed by a newline. Keys are
// written in catalog order, non-ASCII text is written as-is, and HTML
// characters are not escaped.
func Encode(w io.Writer, c *Catalog) error {
	var compact bytes.Buffer
	if err := appendValue(&compact, c); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err := w.Write(out.Bytes())
	return err
}

// MarshalJSON implements json.Marshaler with compact, order-preserving output.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. The receiver is replaced by
// the decoded object.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case *Catalog:
		if v == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendScalar(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendValue(buf, v.values[k]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(buf, e); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	default:
		return appendScalar(buf, v)
	}
	return nil
}

func appendScalar(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encoder terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
