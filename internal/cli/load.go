package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/ugraph/pkg/cache"
	"github.com/matzehuels/ugraph/pkg/dot"
	"github.com/matzehuels/ugraph/pkg/graph"
	"github.com/matzehuels/ugraph/pkg/graphio"
)

// Supported output formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// validateFormat checks an output format flag value.
func validateFormat(format string) error {
	switch format {
	case formatSVG, formatPNG, formatDOT:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want svg, png or dot)", format)
	}
}

// outputPath derives the output file path: the explicit --output value
// when given, otherwise the input path with its extension swapped for
// the format.
func outputPath(input, output, format string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}

// loadGraph reads a graph description file and builds the graph.
func (c *CLI) loadGraph(path string) (*graph.Graph[string], graphio.File, error) {
	g, f, err := graphio.ReadGraphFile(path)
	if err != nil {
		return nil, graphio.File{}, err
	}
	c.Logger.Debug("loaded graph", "path", path, "nodes", g.NodeCount(), "links", g.LinkCount())
	return g, f, nil
}

// renderArtifact turns DOT source into the requested format, consulting
// the artifact cache first. Entries are content-addressed so they are
// stored without a ttl. The second return reports a cache hit.
func (c *CLI) renderArtifact(ctx context.Context, src []byte, format string, noCache bool) ([]byte, bool, error) {
	if format == formatDOT {
		return src, false, nil
	}

	store := newCache(noCache)
	defer store.Close()

	key := cache.ArtifactKey(cache.Hash(src), format)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+format+"...")
	spinner.Start()

	var (
		data []byte
		err  error
	)
	switch format {
	case formatPNG:
		data, err = dot.RenderPNG(ctx, src)
	default:
		data, err = dot.RenderSVG(ctx, src)
	}
	if err != nil {
		spinner.StopWithError("Rendering " + format + " failed")
		return nil, false, err
	}
	spinner.Stop()

	if err := store.Set(ctx, key, data, 0); err != nil {
		c.Logger.Debug("cache write failed", "err", err)
	}
	return data, false, nil
}

// writeArtifact renders src and writes the result to the derived output
// path, printing the standard result lines.
func (c *CLI) writeArtifact(ctx context.Context, src []byte, g *graph.Graph[string], input, output, format string, noCache bool) error {
	data, cached, err := c.renderArtifact(ctx, src, format, noCache)
	if err != nil {
		return err
	}

	path := outputPath(input, output, format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered %s", filepath.Base(input))
	printFile(path)
	printStats(g.NodeCount(), g.LinkCount(), cached)
	return nil
}
