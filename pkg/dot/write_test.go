package dot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	g := twoNodeGraph(t)
	path := filepath.Join(t.TempDir(), "out.dot")

	if err := WriteFile(path, g, Options[string]{Name: "two"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `graph "two" {`) {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	g := twoNodeGraph(t)
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.dot"), g, Options[string]{})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestPipe(t *testing.T) {
	var out bytes.Buffer
	err := Pipe(context.Background(), []byte("graph {}\n"), DisplayOptions{
		Command: "cat",
		Args:    []string{},
		Stdout:  &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "graph {}\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestPipeCommandFailure(t *testing.T) {
	err := Pipe(context.Background(), nil, DisplayOptions{Command: "false", Args: []string{}})
	if err == nil || !strings.Contains(err.Error(), "run false") {
		t.Fatalf("expected wrapped run error, got %v", err)
	}
}

func TestDisplayMarshalErrorShortCircuits(t *testing.T) {
	g := twoNodeGraph(t)
	err := Display(context.Background(), g, Options[string]{
		Layers: [][]string{{"A"}, {"A"}},
	}, DisplayOptions{Command: "cat", Args: []string{}})
	if err == nil || !strings.Contains(err.Error(), "layers must be disjoint") {
		t.Fatalf("expected layer error before piping, got %v", err)
	}
}
