// Package codec parses and serializes the structured header block of a
// ticket file. A ticket file is a header delimited by marker lines,
// containing ordered "key: value" fields, followed by free-form body text:
//
//	---
//	id: tick-3f8a2c
//	title: Fix the flux capacitor
//	status: open
//	deps: [tick-9b1d4e]
//	---
//	body text...
//
// The codec is lossless: field order and fields it does not understand
// survive a parse/encode round trip, and edit operations are scoped
// strictly to the header region. The body is never rewritten.
package codec

import (
	"fmt"
	"os"
	"strings"

	"github.com/tickfile/tick/internal/types"
)

// Marker delimits the header block at the top of a ticket file.
const Marker = "---"

// Field is one "key: value" line in the header, value stored raw.
type Field struct {
	Key   string
	Value string
}

// Document is the parsed form of a ticket file: the ordered header
// fields plus the untouched body text.
type Document struct {
	Fields []Field
	Body   string
}

// Parse decodes a ticket file's contents into a Document.
func Parse(data string) (*Document, error) {
	lines := strings.Split(data, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != Marker {
		return nil, fmt.Errorf("%w: missing header marker", types.ErrParse)
	}

	doc := &Document{}
	i := 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimRight(line, " \t") == Marker {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: malformed header line %d: %q", types.ErrParse, i+1, line)
		}
		doc.Fields = append(doc.Fields, Field{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if i == len(lines) {
		return nil, fmt.Errorf("%w: unterminated header block", types.ErrParse)
	}

	// Everything after the closing marker is body, verbatim.
	if i+1 < len(lines) {
		doc.Body = strings.Join(lines[i+1:], "\n")
	}
	return doc, nil
}

// ParseFile reads and decodes a ticket file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Callers distinguish a missing ticket from a bad one.
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %s: %v", types.ErrIO, path, err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode serializes the document back to file form.
func (d *Document) Encode() string {
	var b strings.Builder
	b.WriteString(Marker)
	b.WriteByte('\n')
	for _, f := range d.Fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	b.WriteString(Marker)
	b.WriteByte('\n')
	b.WriteString(d.Body)
	return b.String()
}

// WriteFile serializes the document and writes it to path.
func WriteFile(path string, d *Document) error {
	if err := os.WriteFile(path, []byte(d.Encode()), 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", types.ErrIO, path, err)
	}
	return nil
}

// Get returns the value of a header field, and whether it is present.
func (d *Document) Get(key string) (string, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing header field in place, or
// appends the field to the header if absent. Only the header region is
// affected; body text that happens to contain "key:" lines is never
// touched.
func (d *Document) Set(key, value string) {
	for i := range d.Fields {
		if d.Fields[i].Key == key {
			d.Fields[i].Value = value
			return
		}
	}
	d.Fields = append(d.Fields, Field{Key: key, Value: value})
}

// Unset deletes a header field. Header-scoped only.
func (d *Document) Unset(key string) {
	for i := range d.Fields {
		if d.Fields[i].Key == key {
			d.Fields = append(d.Fields[:i], d.Fields[i+1:]...)
			return
		}
	}
}

// GetList returns an ID-list field ("[a, b, c]") as a slice.
// An absent field or an empty list yields nil.
func (d *Document) GetList(key string) []string {
	raw, ok := d.Get(key)
	if !ok {
		return nil
	}
	return DecodeList(raw)
}

// SetList stores a slice as an ID-list field.
func (d *Document) SetList(key string, ids []string) {
	d.Set(key, EncodeList(ids))
}

// DecodeList parses the "[a, b, c]" list encoding.
func DecodeList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// EncodeList formats a slice in the "[a, b, c]" list encoding.
func EncodeList(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}
