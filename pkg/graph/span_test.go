package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalSpanningLayers(t *testing.T) {
	g, err := NewFromPairs(
		[]int{1, 2, 3, 4},
		[][2]int{{1, 2}, {2, 3}, {2, 4}},
	)
	require.NoError(t, err)

	s := g.MinimalSpanning(1)

	assert.Equal(t, 1, s.Start())
	assert.Equal(t, [][]int{{1}, {2}, {3, 4}}, s.Layers())
	assert.Equal(t, 3, s.Depth())
	assert.Equal(t, 4, s.NodeCount())
	assert.Equal(t, 3, s.LinkCount(), "one discovery link per reached node")
}

func TestMinimalSpanningDropsCycleLinks(t *testing.T) {
	g := buildTriangle(t)
	s := g.MinimalSpanning("a")

	// Both b and c are discovered from a; the b--c closing link is dropped.
	assert.Equal(t, [][]string{{"a"}, {"b", "c"}}, s.Layers())
	assert.Equal(t, 2, s.LinkCount())
	assert.True(t, s.Links().ContainsPair("a", "b"))
	assert.True(t, s.Links().ContainsPair("a", "c"))
	assert.False(t, s.Links().ContainsPair("b", "c"))
}

func TestMinimalSpanningSingleParent(t *testing.T) {
	// d is reachable from both b and c in the same frontier; only the
	// first parent in insertion order contributes a link.
	g, err := NewFromPairs(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
	)
	require.NoError(t, err)

	s := g.MinimalSpanning("a")
	assert.Equal(t, [][]string{{"a"}, {"b", "c"}, {"d"}}, s.Layers())
	assert.True(t, s.Links().ContainsPair("b", "d"))
	assert.False(t, s.Links().ContainsPair("c", "d"))
}

func TestMinimalSpanningAbsentStart(t *testing.T) {
	g := buildTriangle(t)
	s := g.MinimalSpanning("ghost")

	assert.Equal(t, 0, s.NodeCount())
	assert.Equal(t, 0, s.Depth())
	assert.Empty(t, s.Layers())
	assert.True(t, s.Frozen())
}

func TestMinimalSpanningIsolatedStart(t *testing.T) {
	g := New[string]()
	require.NoError(t, g.AddNode("solo"))

	s := g.MinimalSpanning("solo")
	assert.Equal(t, [][]string{{"solo"}}, s.Layers())
	assert.Equal(t, 1, s.NodeCount())
	assert.Equal(t, 0, s.LinkCount())
}

func TestMinimalSpanningUnreachableExcluded(t *testing.T) {
	g, err := NewFromPairs(
		[]string{"a", "b", "x", "y"},
		[][2]string{{"a", "b"}, {"x", "y"}},
	)
	require.NoError(t, err)

	s := g.MinimalSpanning("a")
	assert.Equal(t, 2, s.NodeCount())
	assert.False(t, s.Contains("x"))
}

func TestSpanningIsImmutable(t *testing.T) {
	s := buildTriangle(t).MinimalSpanning("a")
	require.True(t, s.Frozen())

	assert.ErrorIs(t, s.AddNode("d"), ErrImmutable)
	assert.ErrorIs(t, s.RemoveNode("a"), ErrImmutable)
	assert.ErrorIs(t, s.AddLink("b", "c"), ErrImmutable)
	assert.ErrorIs(t, s.RemoveLink("a", "b"), ErrImmutable)
	assert.ErrorIs(t, s.SetLinks(nil), ErrImmutable)
	assert.ErrorIs(t, s.Links().Add(MustLink("b", "c")), ErrImmutable)
	assert.ErrorIs(t, s.NodeLinks("a").Clear(), ErrImmutable)
	assert.ErrorIs(t, s.Neighborhood("a").Add("d"), ErrImmutable)
	assert.ErrorIs(t, s.NodeView("a").RemoveSelf(), ErrImmutable)
}

func TestSpanningLayersAreCopies(t *testing.T) {
	s := buildTriangle(t).MinimalSpanning("a")
	layers := s.Layers()
	layers[0][0] = "tampered"
	assert.Equal(t, [][]string{{"a"}, {"b", "c"}}, s.Layers())
}

func TestMinimalSpanningDoesNotTouchSource(t *testing.T) {
	g := buildTriangle(t)
	_ = g.MinimalSpanning("a")

	assert.False(t, g.Frozen())
	assert.Equal(t, 3, g.LinkCount())
	require.NoError(t, g.AddNode("d"))
}

func TestMinimalSpanningForest(t *testing.T) {
	g, err := NewFromPairs([]string{"a", "b", "c"}, [][2]string{{"a", "b"}})
	require.NoError(t, err)

	forest := g.MinimalSpanningForest()
	require.Len(t, forest, 3)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, forest["a"].Layers())
	assert.Equal(t, [][]string{{"b"}, {"a"}}, forest["b"].Layers())
	assert.Equal(t, [][]string{{"c"}}, forest["c"].Layers())
}
