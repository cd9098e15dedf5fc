package graph

import "math/rand/v2"

// DefaultSeed seeds the generator RNG when the caller passes nil.
const DefaultSeed = 42

// DefaultLinkChance is the per-pair link probability used by
// [ErdosRenyi] when the options leave both knobs unset.
const DefaultLinkChance = 0.5

// RandomOptions tunes [ErdosRenyi]. When LinkCount is positive exactly
// that many links are drawn (capped at the number of candidate pairs)
// and LinkChance is ignored; otherwise each pair is linked independently
// with probability LinkChance, defaulting to [DefaultLinkChance].
type RandomOptions struct {
	LinkCount  int
	LinkChance float64
}

func newRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(DefaultSeed, DefaultSeed))
}

// Complete builds the complete graph over the given nodes: every pair of
// distinct nodes is linked. Duplicate nodes collapse as [Graph.AddNode]
// would collapse them.
func Complete[N comparable](nodes []N) *Graph[N] {
	g := New[N]()
	for _, n := range nodes {
		g.AddNode(n)
	}
	all := g.Nodes()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			g.AddLink(all[i], all[j])
		}
	}
	return g
}

// CompleteN builds the complete graph over the nodes 0..n-1.
func CompleteN(n int) *Graph[int] { return Complete(intRange(n)) }

// ErdosRenyi builds a random graph over the given nodes. Pass a nil rng
// to use a fixed default seed; results are deterministic for a given rng
// state, node order and options.
func ErdosRenyi[N comparable](nodes []N, rng *rand.Rand, opts RandomOptions) *Graph[N] {
	r := newRNG(rng)
	g := New[N]()
	for _, n := range nodes {
		g.AddNode(n)
	}
	all := g.Nodes()

	var pairs [][2]N
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			pairs = append(pairs, [2]N{all[i], all[j]})
		}
	}

	if opts.LinkCount > 0 {
		r.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		if opts.LinkCount < len(pairs) {
			pairs = pairs[:opts.LinkCount]
		}
		for _, p := range pairs {
			g.AddLink(p[0], p[1])
		}
		return g
	}

	chance := opts.LinkChance
	if chance == 0 {
		chance = DefaultLinkChance
	}
	for _, p := range pairs {
		if r.Float64() < chance {
			g.AddLink(p[0], p[1])
		}
	}
	return g
}

// ErdosRenyiN is [ErdosRenyi] over the nodes 0..n-1.
func ErdosRenyiN(n int, rng *rand.Rand, opts RandomOptions) *Graph[int] {
	return ErdosRenyi(intRange(n), rng, opts)
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
