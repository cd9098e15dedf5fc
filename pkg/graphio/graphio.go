package graphio

import (
	"github.com/matzehuels/ugraph/pkg/dot"
	"github.com/matzehuels/ugraph/pkg/graph"
)

// File is the on-disk description of a string-labeled graph, shared by
// the JSON and TOML encodings. Nodes and links replay in file order, so
// a file round-trips into a graph with the same iteration order.
type File struct {
	Name  string     `json:"name,omitempty" toml:"name,omitempty"`
	Nodes []string   `json:"nodes" toml:"nodes"`
	Links [][]string `json:"links,omitempty" toml:"links,omitempty"`

	GraphStyle map[string]string            `json:"graph_style,omitempty" toml:"graph_style,omitempty"`
	NodeStyles map[string]map[string]string `json:"node_styles,omitempty" toml:"node_styles,omitempty"`
	LinkStyles []LinkStyle                  `json:"link_styles,omitempty" toml:"link_styles,omitempty"`
}

// LinkStyle attaches attributes to one link, named by its endpoint pair.
type LinkStyle struct {
	Link  []string          `json:"link" toml:"link"`
	Style map[string]string `json:"style" toml:"style"`
}

// ToGraph builds the described graph by replaying AddNode for every node
// and a link add for every pair, failing exactly as the manual calls
// would: a malformed pair fails with graph.ErrInvalidLink, a link naming
// an unlisted node with graph.ErrUnknownNode.
func ToGraph(f File) (*graph.Graph[string], error) {
	g := graph.New[string]()
	for _, n := range f.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, pair := range f.Links {
		l, err := graph.LinkOf(pair)
		if err != nil {
			return nil, err
		}
		if err := g.AddLinkOf(l); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromGraph captures g as a file description, in insertion order.
func FromGraph(g *graph.Graph[string], name string) File {
	f := File{Name: name, Nodes: g.Nodes()}
	for _, l := range g.Links().All() {
		f.Links = append(f.Links, []string{l.Left(), l.Right()})
	}
	return f
}

// Options converts the file's style blocks into DOT rendering options.
func (f File) Options() (dot.Options[string], error) {
	opts := dot.Options[string]{Name: f.Name}
	if len(f.GraphStyle) > 0 {
		opts.GraphStyle = dot.Attrs(f.GraphStyle)
	}
	if len(f.NodeStyles) > 0 {
		opts.NodeStyles = make(map[string]dot.Style, len(f.NodeStyles))
		for n, attrs := range f.NodeStyles {
			opts.NodeStyles[n] = dot.Attrs(attrs)
		}
	}
	if len(f.LinkStyles) > 0 {
		opts.LinkStyles = make(map[graph.Link[string]]dot.Style, len(f.LinkStyles))
		for _, ls := range f.LinkStyles {
			l, err := graph.LinkOf(ls.Link)
			if err != nil {
				return dot.Options[string]{}, err
			}
			opts.LinkStyles[l] = dot.Attrs(ls.Style)
		}
	}
	return opts, nil
}
