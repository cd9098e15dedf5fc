package graphio

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// ReadTOML decodes a graph description from TOML.
func ReadTOML(r io.Reader) (File, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode: %w", err)
	}
	return f, nil
}

// WriteTOML encodes a graph description as TOML.
func WriteTOML(f File, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
