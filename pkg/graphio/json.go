package graphio

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSON decodes a graph description from JSON.
func ReadJSON(r io.Reader) (File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode: %w", err)
	}
	return f, nil
}

// WriteJSON encodes a graph description as indented JSON.
func WriteJSON(f File, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
