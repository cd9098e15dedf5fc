package dot

import (
	"bufio"
	"fmt"
	"os"

	"github.com/matzehuels/ugraph/pkg/graph"
)

// WriteFile serializes g to DOT in the file at path, creating or
// truncating it.
func WriteFile[N comparable](path string, g *graph.Graph[N], opts Options[N]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, g, opts); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
