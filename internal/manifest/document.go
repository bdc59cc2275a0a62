package manifest

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/indaco/cra2parcel/internal/core"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// prettyOptions mirrors a two-space JSON.stringify: one element per line,
// insertion order kept.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Document is a JSON object held as raw bytes and edited with gjson/sjson.
type Document struct {
	data []byte
}

// NewDocument returns an empty JSON object.
func NewDocument() *Document {
	return &Document{data: []byte("{}")}
}

// Parse wraps data after checking it holds a JSON object.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if !gjson.ValidBytes(trimmed) {
		return nil, fmt.Errorf("invalid JSON")
	}
	if !gjson.ParseBytes(trimmed).IsObject() {
		return nil, fmt.Errorf("JSON document is not an object")
	}
	return &Document{data: append([]byte(nil), trimmed...)}, nil
}

// ReadDocument reads and parses the JSON object stored at path.
func ReadDocument(ctx context.Context, fs core.FileSystem, path string) (*Document, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return doc, nil
}

// Get returns the value at the given escaped path.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.data, path)
}

// Has reports whether a value exists at path.
func (d *Document) Has(path string) bool {
	return d.Get(path).Exists()
}

// Set stores value at path, creating intermediate objects as needed.
func (d *Document) Set(path string, value any) error {
	updated, err := sjson.SetBytes(d.data, path, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", path, err)
	}
	d.data = updated
	return nil
}

// SetRaw stores a raw JSON fragment at path.
func (d *Document) SetRaw(path string, raw []byte) error {
	updated, err := sjson.SetRawBytes(d.data, path, raw)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", path, err)
	}
	d.data = updated
	return nil
}

// Append adds value to the end of the array at path, creating it if absent.
func (d *Document) Append(path string, value any) error {
	return d.Set(path+".-1", value)
}

// Delete removes the value at path. Deleting a missing path is not an error.
func (d *Document) Delete(path string) error {
	updated, err := sjson.DeleteBytes(d.data, path)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", path, err)
	}
	d.data = updated
	return nil
}

// Bytes returns the document indented with two spaces and a trailing newline.
func (d *Document) Bytes() []byte {
	out := pretty.PrettyOptions(d.data, prettyOptions)
	out = bytes.TrimRight(out, "\n")
	return append(out, '\n')
}

// Raw returns the unformatted document.
func (d *Document) Raw() []byte {
	return d.data
}

// WriteTo stores the formatted document at path.
func (d *Document) WriteTo(ctx context.Context, fs core.FileSystem, path string) error {
	if err := fs.WriteFile(ctx, path, d.Bytes(), core.PermFile); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// pathSpecials are the characters gjson and sjson give meaning to in a path.
const pathSpecials = `\.*?|#@!=<>%`

// Key joins literal object keys into a path, escaping characters that would
// otherwise be read as path syntax. "^jsx:.+\.svg" stays a single key.
func Key(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, part := range parts {
		var sb strings.Builder
		for _, r := range part {
			if strings.ContainsRune(pathSpecials, r) {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		escaped[i] = sb.String()
	}
	return strings.Join(escaped, ".")
}
