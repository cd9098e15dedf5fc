package graph

import "errors"

var (
	// ErrInvalidLink is returned by [NewLink] and [LinkOf] when a link
	// candidate does not resolve to exactly two distinct endpoints.
	ErrInvalidLink = errors.New("link requires exactly two distinct endpoints")

	// ErrUnknownNode is returned by [Graph.AddLink] and [Graph.AddLinkOf]
	// when a link references a node that is not a member of the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrImmutable is returned by every mutating operation on a frozen
	// graph, such as the result of [Graph.MinimalSpanning]. Frozen graphs
	// are derived snapshots; rebuild them instead of editing them.
	ErrImmutable = errors.New("graph is immutable")

	// ErrSelfNeighborhood is returned when a caller attempts to remove a
	// node from its own neighborhood, or supplies a replacement
	// neighborhood that excludes the node itself. A node is always a
	// member of its own neighborhood while it exists.
	ErrSelfNeighborhood = errors.New("node cannot be removed from its own neighborhood")

	// ErrLinkNotIncident is returned by [NodeLinksView.Add] when the link
	// does not touch the view's node.
	ErrLinkNotIncident = errors.New("link does not touch node")

	// ErrRelabelMapping is returned by [Graph.Relabeled] when the supplied
	// mapping is not a one-to-one onto relabeling of the node set.
	ErrRelabelMapping = errors.New("expected a one-to-one onto label mapping")
)
