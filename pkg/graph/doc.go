// Package graph implements in-memory undirected graphs over an opaque
// comparable node type.
//
// # Overview
//
// A [Graph] is a set of nodes connected by unordered [Link] values. The
// graph keeps four mutually consistent indices (nodes, links, per-node
// incident links, per-node neighborhoods including the node itself) and
// funnels all mutation through a handful of primitives, so the indices
// can never drift apart.
//
// # Basic usage
//
//	g := graph.New[string]()
//	g.AddNode("a")
//	g.AddNode("b")
//	g.AddLink("a", "b")
//
// # Views
//
// [Graph.Links], [Graph.NodeLinks], [Graph.Neighborhood] and
// [Graph.NodeView] return live views: cheap handles that read the graph
// at call time and write through the same primitives. Mutating a view
// mutates the graph.
//
// # Layering
//
// [Graph.MinimalSpanning] runs a breadth-first walk from a start node
// and returns a frozen [Spanning] subgraph holding one discovery link
// per reached node, with the BFS layers exposed for rank-aligned
// rendering.
//
// # Concurrency
//
// Graphs and views are not safe for concurrent use; guard shared graphs
// with external synchronization.
package graph
