package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/jonathan/people-filter/internal/types"
)

// Exists reports whether path can be stat'ed. Any stat failure counts as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadRecords loads a JSON array of objects from path.
func LoadRecords(path string) ([]types.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if !utf8.Valid(content) {
		return nil, &LoadError{Message: fmt.Sprintf("file %s is not valid UTF-8", path)}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(content, &items); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			line, column := position(content, syntaxErr.Offset)
			return nil, &ParseError{Path: path, Line: line, Column: column, Cause: err}
		}
		return nil, &types.StructureError{
			Index:   -1,
			Message: fmt.Sprintf("%s: expected a JSON array of objects", path),
			Cause:   err,
		}
	}
	// A top-level null decodes into a nil slice without error
	if items == nil {
		return nil, &types.StructureError{
			Index:   -1,
			Message: fmt.Sprintf("%s: expected a JSON array of objects, got null", path),
		}
	}

	records := make([]types.Record, 0, len(items))
	for i, item := range items {
		record, err := types.DecodeRecord(item)
		if err != nil {
			return nil, &types.StructureError{Index: i, Message: path, Cause: err}
		}
		records = append(records, record)
	}

	return records, nil
}

// position converts a json.SyntaxError offset into a 1-based line and column.
// The offset counts the bytes read up to and including the offending one.
func position(content []byte, offset int64) (line, column int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(content) {
		pos = len(content)
	}

	before := content[:pos]
	line = bytes.Count(before, []byte("\n")) + 1
	column = pos - bytes.LastIndexByte(before, '\n')
	return line, column
}

// EncodeJSON encodes v with two-space indentation. Non-ASCII and HTML
// characters are written literally and no trailing newline is added.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile creates or truncates path and writes data to it, creating the
// parent directory if needed. The write is not atomic.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Cause: fmt.Errorf("failed to create output directory: %w", err)}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}
