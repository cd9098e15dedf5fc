package graph

import (
	"fmt"
	"slices"
)

// Graph is a mutable set of nodes and undirected links between them.
//
// The graph maintains four mutually redundant indices: the node set, the
// link set, the incident links of each node, and the neighborhood of each
// node (which always contains the node itself). All mutation funnels
// through [Graph.AddNode], [Graph.RemoveNode], [Graph.AddLinkOf] and
// [Graph.RemoveLinkOf], so no code path can update one index without the
// others. Each of those calls either completes or leaves every index
// untouched.
//
// Iteration over nodes, links, incident links and neighborhoods follows
// insertion order. This is the iteration contract [Graph.MinimalSpanning]
// relies on for deterministic layering.
//
// Graph is not safe for concurrent use without external synchronization:
// wrap any sequence of reads and writes shared across goroutines in a
// single exclusive lock.
type Graph[N comparable] struct {
	nodes     map[N]struct{}
	nodeList  []N
	links     map[Link[N]]struct{}
	linkList  []Link[N]
	incident  map[N][]Link[N]
	neighbors map[N][]N // insertion order; the node itself always first
	frozen    bool
}

// New creates an empty graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		nodes:     make(map[N]struct{}),
		links:     make(map[Link[N]]struct{}),
		incident:  make(map[N][]Link[N]),
		neighbors: make(map[N][]N),
	}
}

// NewFrom builds a graph by replaying [Graph.AddNode] for every node and
// [Graph.AddLinkOf] for every link, in order. It fails exactly as the
// manual sequence of calls would, e.g. with ErrUnknownNode when a link
// cites a node that was never added.
func NewFrom[N comparable](nodes []N, links []Link[N]) (*Graph[N], error) {
	g := New[N]()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, l := range links {
		if err := g.AddLinkOf(l); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewFromPairs is like [NewFrom] for links given as plain two-element
// pairs instead of prebuilt [Link] values.
func NewFromPairs[N comparable](nodes []N, pairs [][2]N) (*Graph[N], error) {
	links := make([]Link[N], 0, len(pairs))
	for _, p := range pairs {
		l, err := NewLink(p[0], p[1])
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return NewFrom(nodes, links)
}

// Clone returns a deep copy of the graph. The copy is always mutable, even
// when g is a frozen spanning-subgraph result.
func (g *Graph[N]) Clone() *Graph[N] {
	c := New[N]()
	c.nodeList = slices.Clone(g.nodeList)
	c.linkList = slices.Clone(g.linkList)
	for n := range g.nodes {
		c.nodes[n] = struct{}{}
	}
	for l := range g.links {
		c.links[l] = struct{}{}
	}
	for n, ls := range g.incident {
		c.incident[n] = slices.Clone(ls)
	}
	for n, ns := range g.neighbors {
		c.neighbors[n] = slices.Clone(ns)
	}
	return c
}

// Contains reports whether n is a member of the graph.
func (g *Graph[N]) Contains(n N) bool {
	_, ok := g.nodes[n]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph[N]) NodeCount() int { return len(g.nodeList) }

// LinkCount returns the number of links.
func (g *Graph[N]) LinkCount() int { return len(g.linkList) }

// Nodes returns the nodes in insertion order.
func (g *Graph[N]) Nodes() []N { return slices.Clone(g.nodeList) }

// Degree returns the number of links touching n, zero when n is absent.
func (g *Graph[N]) Degree(n N) int { return len(g.incident[n]) }

// Frozen reports whether the graph rejects mutation.
func (g *Graph[N]) Frozen() bool { return g.frozen }

// freeze makes every subsequent mutation fail with ErrImmutable.
func (g *Graph[N]) freeze() { g.frozen = true }

// AddNode adds a node to the graph. Adding an existing node is a no-op.
// A new node's neighborhood is initialized to contain the node itself.
func (g *Graph[N]) AddNode(n N) error {
	if g.frozen {
		return ErrImmutable
	}
	if _, ok := g.nodes[n]; ok {
		return nil
	}
	g.nodes[n] = struct{}{}
	g.nodeList = append(g.nodeList, n)
	g.neighbors[n] = []N{n}
	return nil
}

// RemoveNode removes a node, first removing every link that touches it.
// Removing an absent node is a no-op.
func (g *Graph[N]) RemoveNode(n N) error {
	if g.frozen {
		return ErrImmutable
	}
	if _, ok := g.nodes[n]; !ok {
		return nil
	}
	for _, l := range slices.Clone(g.incident[n]) {
		g.removeLink(l)
	}
	delete(g.nodes, n)
	delete(g.neighbors, n)
	delete(g.incident, n)
	g.nodeList = slices.DeleteFunc(g.nodeList, func(m N) bool { return m == n })
	return nil
}

// AddLink links two existing member nodes. Returns ErrInvalidLink when
// a == b, ErrUnknownNode when either node is not a member, and nil without
// any effect when the link already exists.
func (g *Graph[N]) AddLink(a, b N) error {
	l, err := NewLink(a, b)
	if err != nil {
		return err
	}
	return g.AddLinkOf(l)
}

// AddLinkOf adds a prebuilt link, updating all four indices together.
// Returns ErrImmutable on a frozen graph, ErrInvalidLink for the zero
// Link, and ErrUnknownNode when an endpoint is not a member. Adding an
// existing link is a no-op. On error no index is mutated.
func (g *Graph[N]) AddLinkOf(l Link[N]) error {
	if g.frozen {
		return ErrImmutable
	}
	if !l.valid() {
		return ErrInvalidLink
	}
	if _, ok := g.nodes[l.left]; !ok {
		return fmt.Errorf("%w: cannot link to %v", ErrUnknownNode, l.left)
	}
	if _, ok := g.nodes[l.right]; !ok {
		return fmt.Errorf("%w: cannot link to %v", ErrUnknownNode, l.right)
	}
	if _, ok := g.links[l]; ok {
		return nil
	}
	g.links[l] = struct{}{}
	g.linkList = append(g.linkList, l)
	g.incident[l.left] = append(g.incident[l.left], l)
	g.incident[l.right] = append(g.incident[l.right], l)
	g.neighbors[l.left] = append(g.neighbors[l.left], l.right)
	g.neighbors[l.right] = append(g.neighbors[l.right], l.left)
	return nil
}

// RemoveLink removes the link between a and b. Absent links are a no-op,
// and so are malformed pairs (a == b), which cannot name an existing link.
func (g *Graph[N]) RemoveLink(a, b N) error {
	if g.frozen {
		return ErrImmutable
	}
	l, err := NewLink(a, b)
	if err != nil {
		return nil
	}
	g.removeLink(l)
	return nil
}

// RemoveLinkOf removes a link. Removing an absent link is a no-op.
func (g *Graph[N]) RemoveLinkOf(l Link[N]) error {
	if g.frozen {
		return ErrImmutable
	}
	g.removeLink(l)
	return nil
}

// SetLinks replaces the entire link set: existing links are cleared and
// [Graph.AddLinkOf] is replayed for every given link, failing as the
// manual calls would.
func (g *Graph[N]) SetLinks(links []Link[N]) error {
	if g.frozen {
		return ErrImmutable
	}
	for _, l := range slices.Clone(g.linkList) {
		g.removeLink(l)
	}
	for _, l := range links {
		if err := g.AddLinkOf(l); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether g and other contain the same node set. From the
// caller's perspective a graph is a set of nodes; links are a secondary
// attribute reached through [Graph.Links].
func (g *Graph[N]) Equal(other *Graph[N]) bool {
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for n := range g.nodes {
		if _, ok := other.nodes[n]; !ok {
			return false
		}
	}
	return true
}

// String formats the graph as its node list and, when present, link list.
func (g *Graph[N]) String() string {
	switch {
	case len(g.nodeList) == 0:
		return "Graph()"
	case len(g.linkList) == 0:
		return fmt.Sprintf("Graph(%v)", g.nodeList)
	default:
		return fmt.Sprintf("Graph(%v, %v)", g.nodeList, g.linkList)
	}
}

// removeLink deletes l from all four indices, pruning per-node entries
// that become empty so that absent and empty buckets stay equivalent.
// A node's own entry in its neighborhood is never pruned.
func (g *Graph[N]) removeLink(l Link[N]) {
	if _, ok := g.links[l]; !ok {
		return
	}
	delete(g.links, l)
	g.linkList = slices.DeleteFunc(g.linkList, func(m Link[N]) bool { return m == l })
	g.pruneIncident(l.left, l)
	g.pruneIncident(l.right, l)
	g.pruneNeighbor(l.left, l.right)
	g.pruneNeighbor(l.right, l.left)
}

func (g *Graph[N]) pruneIncident(n N, l Link[N]) {
	rest := slices.DeleteFunc(g.incident[n], func(m Link[N]) bool { return m == l })
	if len(rest) == 0 {
		delete(g.incident, n)
	} else {
		g.incident[n] = rest
	}
}

func (g *Graph[N]) pruneNeighbor(n, other N) {
	if ns, ok := g.neighbors[n]; ok {
		g.neighbors[n] = slices.DeleteFunc(ns, func(m N) bool { return m == other })
	}
}
