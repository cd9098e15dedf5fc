package graph

import "slices"

// Spanning is the minimal spanning subgraph rooted at a start node: the
// result of a breadth-first walk that keeps, for each reached node, only
// the link to the first parent that discovered it. The embedded graph is
// frozen; every mutating operation on it, directly or through a view,
// returns ErrImmutable.
type Spanning[N comparable] struct {
	*Graph[N]

	start  N
	layers [][]N
}

// MinimalSpanning computes the minimal spanning subgraph reachable from
// start. Nodes are grouped into BFS layers by distance from start, and
// each node beyond the first layer carries exactly one link, to the
// first parent (in insertion order) that reached it. When start is not a
// member of g the result is an empty frozen graph with zero layers.
//
// Given the same graph built by the same sequence of mutations the walk
// is deterministic: frontiers and neighbor lists are both visited in
// insertion order.
func (g *Graph[N]) MinimalSpanning(start N) *Spanning[N] {
	sub := New[N]()
	s := &Spanning[N]{Graph: sub, start: start}
	if !g.Contains(start) {
		sub.freeze()
		return s
	}

	sub.AddNode(start)
	seen := map[N]struct{}{start: {}}
	frontier := []N{start}
	for len(frontier) > 0 {
		s.layers = append(s.layers, slices.Clone(frontier))
		var next []N
		for _, parent := range frontier {
			for _, child := range g.neighbors[parent] {
				if _, ok := seen[child]; ok {
					continue
				}
				seen[child] = struct{}{}
				sub.AddNode(child)
				sub.AddLink(parent, child)
				next = append(next, child)
			}
		}
		frontier = next
	}
	sub.freeze()
	return s
}

// Start returns the node the walk was rooted at.
func (s *Spanning[N]) Start() N { return s.start }

// Layers returns the BFS layers in discovery order. The first layer is
// [start] alone; layer i holds the nodes at distance i. The returned
// slices are copies.
func (s *Spanning[N]) Layers() [][]N {
	out := make([][]N, len(s.layers))
	for i, layer := range s.layers {
		out[i] = slices.Clone(layer)
	}
	return out
}

// Depth returns the number of layers.
func (s *Spanning[N]) Depth() int { return len(s.layers) }

// MinimalSpanningForest computes the minimal spanning subgraph rooted at
// every node of g, keyed by root.
func (g *Graph[N]) MinimalSpanningForest() map[N]*Spanning[N] {
	forest := make(map[N]*Spanning[N], len(g.nodeList))
	for _, n := range g.nodeList {
		forest[n] = g.MinimalSpanning(n)
	}
	return forest
}
