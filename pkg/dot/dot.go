package dot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/ugraph/pkg/graph"
)

// ErrOverlappingLayers is returned by [Marshal] and [Write] when the
// layers in [Options] share a node. Layers partition the layered nodes;
// a node can hold only one rank.
var ErrOverlappingLayers = errors.New("dot: layers must be disjoint")

// Escaper lets a node type control its own DOT identifier. Types that do
// not implement it are formatted with fmt.Sprint and escaped with
// [Escape]'s default rules.
type Escaper interface {
	EscapeDOT() string
}

// Style renders to an attribute clause list. The two implementations are
// [Attrs] for key/value styling and [Raw] for verbatim DOT fragments.
type Style interface {
	render(delim string) string
}

// Attrs is a key/value style. Keys are rendered in sorted order so the
// output is deterministic, and both keys and values pass through
// [Escape].
type Attrs map[string]string

func (a Attrs) render(delim string) string {
	clauses := make([]string, 0, len(a))
	for _, k := range slices.Sorted(maps.Keys(a)) {
		clauses = append(clauses, Escape(k)+"="+Escape(a[k]))
	}
	return strings.Join(clauses, delim)
}

// Raw is a verbatim DOT fragment emitted without any escaping. The
// caller is responsible for its syntax.
type Raw string

func (r Raw) render(string) string { return string(r) }

// Options configures [Marshal] and [Write].
type Options[N comparable] struct {
	// Name is the optional graph name after the graph keyword.
	Name string

	// GraphStyle is emitted as top-level statements inside the braces.
	GraphStyle Style

	// NodeStyles and LinkStyles attach bracketed attribute lists to
	// individual nodes and links.
	NodeStyles map[N]Style
	LinkStyles map[graph.Link[N]]Style

	// Layers groups nodes into rank=same blocks. Layers must be
	// disjoint; nodes absent from every layer are emitted flat. A layer
	// member that is not a graph node is simply skipped.
	Layers [][]N
}

// Escape formats v as a quoted DOT identifier, backslash-escaping
// backslashes and double quotes. Values implementing [Escaper] are taken
// verbatim instead.
func Escape(v any) string {
	if e, ok := v.(Escaper); ok {
		return e.EscapeDOT()
	}
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// Marshal serializes g to DOT.
func Marshal[N comparable](g *graph.Graph[N], opts Options[N]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes g to DOT on w. Nodes and links appear in the graph's
// insertion order (or layer order when Options.Layers is set), so equal
// graphs built by equal mutation sequences serialize identically.
func Write[N comparable](w io.Writer, g *graph.Graph[N], opts Options[N]) error {
	var buf bytes.Buffer
	buf.WriteString("graph ")
	if opts.Name != "" {
		buf.WriteString(Escape(opts.Name) + " ")
	}
	buf.WriteString("{\n")

	if opts.GraphStyle != nil {
		if s := opts.GraphStyle.render(";\n  "); s != "" {
			fmt.Fprintf(&buf, "  %s;\n", s)
		}
	}

	if len(opts.Layers) > 0 {
		if err := writeLayered(&buf, g, opts); err != nil {
			return err
		}
	} else {
		writeFlat(&buf, g, opts)
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func writeFlat[N comparable](buf *bytes.Buffer, g *graph.Graph[N], opts Options[N]) {
	for _, n := range g.Nodes() {
		fmt.Fprintf(buf, "  %s [%s];\n", Escape(n), styleOf(opts.NodeStyles, n))
	}
	for _, l := range g.Links().All() {
		writeLink(buf, l, opts)
	}
}

func writeLayered[N comparable](buf *bytes.Buffer, g *graph.Graph[N], opts Options[N]) error {
	inLayer := make(map[N]int)
	for i, layer := range opts.Layers {
		for _, n := range layer {
			if j, ok := inLayer[n]; ok {
				return fmt.Errorf("%w: %v appears in layers %d and %d", ErrOverlappingLayers, n, j, i)
			}
			inLayer[n] = i
		}
	}

	for _, layer := range opts.Layers {
		buf.WriteString("  { rank=same;\n")
		for _, n := range layer {
			if !g.Contains(n) {
				continue
			}
			fmt.Fprintf(buf, "    %s [%s];\n", Escape(n), styleOf(opts.NodeStyles, n))
		}
		buf.WriteString("  }\n")
	}
	for _, n := range g.Nodes() {
		if _, ok := inLayer[n]; ok {
			continue
		}
		fmt.Fprintf(buf, "  %s [%s];\n", Escape(n), styleOf(opts.NodeStyles, n))
	}

	// Walk layers in order and link each node to its not-yet-visited
	// neighbors, so every link is emitted exactly once, grouped under
	// the layer of its earlier endpoint.
	seen := make(map[N]struct{})
	for _, layer := range opts.Layers {
		for _, n := range layer {
			seen[n] = struct{}{}
			for _, nb := range g.Neighborhood(n).All() {
				if nb == n {
					continue
				}
				if _, done := seen[nb]; done {
					continue
				}
				l, err := graph.NewLink(n, nb)
				if err != nil {
					continue
				}
				writeLink(buf, l, opts)
			}
		}
	}
	for _, l := range g.Links().All() {
		_, a := inLayer[l.Left()]
		_, b := inLayer[l.Right()]
		if !a && !b {
			writeLink(buf, l, opts)
		}
	}
	return nil
}

func writeLink[N comparable](buf *bytes.Buffer, l graph.Link[N], opts Options[N]) {
	fmt.Fprintf(buf, "  %s -- %s [%s];\n", Escape(l.Left()), Escape(l.Right()), styleOf(opts.LinkStyles, l))
}

func styleOf[K comparable](styles map[K]Style, key K) string {
	s, ok := styles[key]
	if !ok || s == nil {
		return ""
	}
	return s.render(", ")
}

// MarshalSpanning serializes a spanning subgraph with layer-aligned
// ranks and a top-to-bottom layout, coloring the start node red unless
// the caller styled it explicitly.
func MarshalSpanning[N comparable](s *graph.Spanning[N], opts Options[N]) ([]byte, error) {
	if opts.GraphStyle == nil {
		opts.GraphStyle = Attrs{"rankdir": "TB", "newrank": "false"}
	}
	if opts.Layers == nil {
		opts.Layers = s.Layers()
	}
	if _, styled := opts.NodeStyles[s.Start()]; !styled && s.Contains(s.Start()) {
		styles := make(map[N]Style, len(opts.NodeStyles)+1)
		maps.Copy(styles, opts.NodeStyles)
		styles[s.Start()] = Attrs{"color": "red"}
		opts.NodeStyles = styles
	}
	return Marshal(s.Graph, opts)
}
