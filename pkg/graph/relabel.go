package graph

import (
	"math/rand/v2"
	"slices"
)

// Relabeled returns a copy of the graph with every node renamed through
// mapping. The mapping must be a permutation of the node set: every node
// mapped, every target distinct and itself a node. Anything else fails
// with ErrRelabelMapping.
func (g *Graph[N]) Relabeled(mapping map[N]N) (*Graph[N], error) {
	if len(mapping) != len(g.nodes) {
		return nil, ErrRelabelMapping
	}
	targets := make(map[N]struct{}, len(mapping))
	for from, to := range mapping {
		if _, ok := g.nodes[from]; !ok {
			return nil, ErrRelabelMapping
		}
		if _, ok := g.nodes[to]; !ok {
			return nil, ErrRelabelMapping
		}
		if _, dup := targets[to]; dup {
			return nil, ErrRelabelMapping
		}
		targets[to] = struct{}{}
	}

	out := New[N]()
	for _, n := range g.nodeList {
		out.AddNode(mapping[n])
	}
	for _, l := range g.linkList {
		if err := out.AddLink(mapping[l.left], mapping[l.right]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Shuffled returns a copy of the graph with node labels permuted at
// random. Pass a nil rng to use a fixed default seed.
func (g *Graph[N]) Shuffled(rng *rand.Rand) *Graph[N] {
	r := newRNG(rng)
	from := g.Nodes()
	to := slices.Clone(from)
	r.Shuffle(len(to), func(i, j int) { to[i], to[j] = to[j], to[i] })
	mapping := make(map[N]N, len(from))
	for i, n := range from {
		mapping[n] = to[i]
	}
	out, _ := g.Relabeled(mapping)
	return out
}
