package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkUnordered(t *testing.T) {
	ab, err := NewLink("a", "b")
	require.NoError(t, err)
	ba, err := NewLink("b", "a")
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
	assert.Equal(t, "a", ba.Left())
	assert.Equal(t, "b", ba.Right())

	set := map[Link[string]]int{ab: 1}
	assert.Equal(t, 1, set[ba], "reversed link must hit the same map key")
}

// sameName prints identically for every value, forcing the canonical
// ordering onto its Go-syntax tie-break.
type sameName int

func (sameName) String() string { return "node" }

func TestNewLinkCollidingPrintedForms(t *testing.T) {
	ab, err := NewLink(sameName(1), sameName(2))
	require.NoError(t, err)
	ba, err := NewLink(sameName(2), sameName(1))
	require.NoError(t, err)

	assert.Equal(t, ab, ba, "orientation must not leak through a non-injective Stringer")

	g := New[sameName]()
	require.NoError(t, g.AddNode(sameName(1)))
	require.NoError(t, g.AddNode(sameName(2)))
	require.NoError(t, g.AddLink(sameName(1), sameName(2)))
	require.NoError(t, g.AddLink(sameName(2), sameName(1)))
	assert.Equal(t, 1, g.LinkCount(), "both orientations must collapse to one link")
}

func TestNewLinkSelfPair(t *testing.T) {
	_, err := NewLink("a", "a")
	require.ErrorIs(t, err, ErrInvalidLink)
}

func TestLinkOf(t *testing.T) {
	tests := []struct {
		name    string
		pair    []int
		wantErr bool
	}{
		{name: "pair", pair: []int{1, 2}},
		{name: "self pair", pair: []int{3, 3}, wantErr: true},
		{name: "empty", pair: nil, wantErr: true},
		{name: "single", pair: []int{1}, wantErr: true},
		{name: "triple", pair: []int{1, 2, 3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := LinkOf(tt.pair)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLink)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Touches(tt.pair[0]))
			assert.True(t, l.Touches(tt.pair[1]))
		})
	}
}

func TestLinkTouchesAndOther(t *testing.T) {
	l := MustLink(1, 2)

	assert.True(t, l.Touches(1))
	assert.True(t, l.Touches(2))
	assert.False(t, l.Touches(3))

	other, ok := l.Other(1)
	require.True(t, ok)
	assert.Equal(t, 2, other)

	other, ok = l.Other(2)
	require.True(t, ok)
	assert.Equal(t, 1, other)

	_, ok = l.Other(3)
	assert.False(t, ok)
}

func TestMustLinkPanics(t *testing.T) {
	assert.Panics(t, func() { MustLink("x", "x") })
}

func TestLinkString(t *testing.T) {
	assert.Equal(t, "(a, b)", MustLink("b", "a").String())
}

func TestZeroLinkIsInvalid(t *testing.T) {
	var zero Link[string]
	assert.False(t, zero.valid())

	g := New[string]()
	require.NoError(t, g.AddNode(""))
	require.ErrorIs(t, g.AddLinkOf(zero), ErrInvalidLink)
}
