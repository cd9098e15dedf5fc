package graph

import (
	"fmt"
	"slices"
)

// MutableLinkSet is the mutable-set capability shared by [LinksView] and
// [NodeLinksView]: size, membership, iteration, and add/discard that
// delegate to the owning graph's primitive operations.
type MutableLinkSet[N comparable] interface {
	Len() int
	Contains(Link[N]) bool
	All() []Link[N]
	Add(Link[N]) error
	Discard(Link[N]) error
}

// MutableNodeSet is the node-valued counterpart, implemented by
// [NeighborhoodView].
type MutableNodeSet[N comparable] interface {
	Len() int
	Contains(N) bool
	All() []N
	Add(N) error
	Discard(N) error
}

var (
	_ MutableLinkSet[int] = LinksView[int]{}
	_ MutableLinkSet[int] = NodeLinksView[int]{}
	_ MutableNodeSet[int] = NeighborhoodView[int]{}
)

// LinksView is a live window onto a graph's full link set. Views own no
// data: every read reflects the graph at call time, and every mutation
// delegates to the graph's primitive operations so invariants are enforced
// in one place. Views are cheap to create and discard freely.
type LinksView[N comparable] struct {
	g *Graph[N]
}

// Links returns a live view of the full link set.
func (g *Graph[N]) Links() LinksView[N] { return LinksView[N]{g: g} }

// Len returns the number of links.
func (v LinksView[N]) Len() int { return len(v.g.linkList) }

// All returns the links in insertion order.
func (v LinksView[N]) All() []Link[N] { return slices.Clone(v.g.linkList) }

// Contains reports membership. The zero (malformed) link is never a member.
func (v LinksView[N]) Contains(l Link[N]) bool {
	_, ok := v.g.links[l]
	return ok
}

// ContainsPair reports whether a link between a and b exists. Malformed
// pairs (a == b) report false rather than failing.
func (v LinksView[N]) ContainsPair(a, b N) bool {
	l, err := NewLink(a, b)
	if err != nil {
		return false
	}
	return v.Contains(l)
}

// Add adds the link through [Graph.AddLinkOf].
func (v LinksView[N]) Add(l Link[N]) error { return v.g.AddLinkOf(l) }

// Discard removes the link through [Graph.RemoveLinkOf]; absent links are
// a no-op.
func (v LinksView[N]) Discard(l Link[N]) error { return v.g.RemoveLinkOf(l) }

// NodeLinksView is a live view of the links touching a single node.
// Reads on a node that has been removed from the graph return empty
// results rather than failing.
type NodeLinksView[N comparable] struct {
	g    *Graph[N]
	node N
}

// NodeLinks returns a live view of the links touching n.
func (g *Graph[N]) NodeLinks(n N) NodeLinksView[N] { return NodeLinksView[N]{g: g, node: n} }

// Node returns the node the view is anchored to.
func (v NodeLinksView[N]) Node() N { return v.node }

// Len returns the number of links touching the node.
func (v NodeLinksView[N]) Len() int { return len(v.g.incident[v.node]) }

// All returns the incident links in insertion order.
func (v NodeLinksView[N]) All() []Link[N] { return slices.Clone(v.g.incident[v.node]) }

// Contains reports whether l touches the node and is present in the graph.
func (v NodeLinksView[N]) Contains(l Link[N]) bool {
	return slices.Contains(v.g.incident[v.node], l)
}

// Add adds the link through the graph. The link must touch the view's
// node; otherwise Add fails with ErrLinkNotIncident.
func (v NodeLinksView[N]) Add(l Link[N]) error {
	if !l.Touches(v.node) {
		return fmt.Errorf("%w: expected a link to %v", ErrLinkNotIncident, v.node)
	}
	return v.g.AddLinkOf(l)
}

// Discard removes the link when it is present in this view; anything else
// is a no-op.
func (v NodeLinksView[N]) Discard(l Link[N]) error {
	if !v.Contains(l) {
		return nil
	}
	return v.g.RemoveLinkOf(l)
}

// Clear removes every link touching the node.
func (v NodeLinksView[N]) Clear() error {
	if v.g.frozen {
		return ErrImmutable
	}
	for _, l := range slices.Clone(v.g.incident[v.node]) {
		v.g.removeLink(l)
	}
	return nil
}

// NeighborhoodView is a live view of a node's neighborhood. While the node
// is a graph member its neighborhood always contains the node itself.
type NeighborhoodView[N comparable] struct {
	g    *Graph[N]
	node N
}

// Neighborhood returns a live view of n's neighborhood.
func (g *Graph[N]) Neighborhood(n N) NeighborhoodView[N] {
	return NeighborhoodView[N]{g: g, node: n}
}

// Node returns the node the view is anchored to.
func (v NeighborhoodView[N]) Node() N { return v.node }

// Len returns the neighborhood size, zero when the node is absent.
func (v NeighborhoodView[N]) Len() int { return len(v.g.neighbors[v.node]) }

// All returns the neighborhood in insertion order, the node itself first.
func (v NeighborhoodView[N]) All() []N { return slices.Clone(v.g.neighbors[v.node]) }

// Contains reports whether n is in the neighborhood.
func (v NeighborhoodView[N]) Contains(n N) bool {
	return slices.Contains(v.g.neighbors[v.node], n)
}

// Add makes other a neighbor of the node, adding other to the graph first
// when it is not yet a member. Adding the node itself is a no-op: a node is
// already its own neighbor, and self links are disallowed.
func (v NeighborhoodView[N]) Add(other N) error {
	if err := v.g.AddNode(other); err != nil {
		return err
	}
	if other == v.node {
		return nil
	}
	return v.g.AddLink(v.node, other)
}

// Discard removes the link between the node and other. Removing the node
// from its own neighborhood fails with ErrSelfNeighborhood.
func (v NeighborhoodView[N]) Discard(other N) error {
	if other == v.node {
		return ErrSelfNeighborhood
	}
	return v.g.RemoveLink(v.node, other)
}

// NodeView bundles the per-node operations: membership, the node's links
// and neighborhood, and convenience link/unlink against other nodes.
type NodeView[N comparable] struct {
	g    *Graph[N]
	node N
}

// NodeView returns a unit view of n.
func (g *Graph[N]) NodeView(n N) NodeView[N] { return NodeView[N]{g: g, node: n} }

// Node returns the node the view is anchored to.
func (v NodeView[N]) Node() N { return v.node }

// InGraph reports whether the node is currently a member of the graph.
func (v NodeView[N]) InGraph() bool { return v.g.Contains(v.node) }

// Links returns the live incident-link view of the node.
func (v NodeView[N]) Links() NodeLinksView[N] { return v.g.NodeLinks(v.node) }

// Neighborhood returns the live neighborhood view of the node.
func (v NodeView[N]) Neighborhood() NeighborhoodView[N] { return v.g.Neighborhood(v.node) }

// SetLinks clears the node's incident links and replays [Graph.AddLinkOf]
// for each given link. It is a no-op when the node is absent.
func (v NodeView[N]) SetLinks(links []Link[N]) error {
	if !v.InGraph() {
		return nil
	}
	if err := v.Links().Clear(); err != nil {
		return err
	}
	for _, l := range links {
		if err := v.g.AddLinkOf(l); err != nil {
			return err
		}
	}
	return nil
}

// SetNeighborhood replaces the node's neighborhood. The replacement must
// include the node itself, or SetNeighborhood fails with
// ErrSelfNeighborhood; every other member must already be a graph node.
// It is a no-op when the node is absent.
func (v NodeView[N]) SetNeighborhood(nodes []N) error {
	if !v.InGraph() {
		return nil
	}
	if !slices.Contains(nodes, v.node) {
		return fmt.Errorf("%w: replacement neighborhood must include %v", ErrSelfNeighborhood, v.node)
	}
	if err := v.Links().Clear(); err != nil {
		return err
	}
	for _, n := range nodes {
		if n == v.node {
			continue
		}
		if err := v.g.AddLink(v.node, n); err != nil {
			return err
		}
	}
	return nil
}

// AddSelf adds the node to the graph.
func (v NodeView[N]) AddSelf() error { return v.g.AddNode(v.node) }

// RemoveSelf removes the node, and its links, from the graph.
func (v NodeView[N]) RemoveSelf() error { return v.g.RemoveNode(v.node) }

// LinkTo links the node to other.
func (v NodeView[N]) LinkTo(other N) error { return v.g.AddLink(v.node, other) }

// UnlinkFrom removes the link between the node and other.
func (v NodeView[N]) UnlinkFrom(other N) error { return v.g.RemoveLink(v.node, other) }
