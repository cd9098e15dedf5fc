package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/ugraph/pkg/graph"
)

// ReadFile reads a graph description from path, choosing the decoder by
// extension: .toml reads TOML, everything else JSON.
func ReadFile(path string) (File, error) {
	r, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(r)
	}
	return ReadJSON(r)
}

// ReadGraphFile reads a description from path and builds the graph it
// describes, returning both.
func ReadGraphFile(path string) (*graph.Graph[string], File, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, File{}, err
	}
	g, err := ToGraph(f)
	if err != nil {
		return nil, File{}, fmt.Errorf("build graph from %s: %w", path, err)
	}
	return g, f, nil
}

// WriteJSONFile writes a description to a JSON file at path.
func WriteJSONFile(f File, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer w.Close()
	return WriteJSON(f, w)
}
