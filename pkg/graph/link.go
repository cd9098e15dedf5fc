package graph

import "fmt"

// Link is an undirected connection between two distinct nodes. It is a
// small value type meant to be passed around and used as a map key: two
// links over the same pair of nodes compare equal regardless of the
// order the endpoints were given in, because construction canonicalizes
// the endpoint order using a stable textual ordering (fmt.Sprint, with
// the Go-syntax form %#v as a tie-break when two distinct values print
// alike, e.g. through a non-injective Stringer). Distinct nodes whose
// %#v forms also collide cannot be ordered and must not share a graph.
//
// The zero Link is malformed (both endpoints are the zero N) and is
// rejected by [Graph.AddLinkOf]; always build links through [NewLink],
// [LinkOf] or [MustLink].
type Link[N comparable] struct {
	left, right N
}

// NewLink builds the link between a and b. The endpoints must be
// distinct; a self-pair fails with ErrInvalidLink.
func NewLink[N comparable](a, b N) (Link[N], error) {
	if a == b {
		return Link[N]{}, fmt.Errorf("%w: got %v twice", ErrInvalidLink, a)
	}
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	if sa == sb {
		sa, sb = fmt.Sprintf("%#v", a), fmt.Sprintf("%#v", b)
	}
	if sb < sa {
		a, b = b, a
	}
	return Link[N]{left: a, right: b}, nil
}

// LinkOf builds a link from a two-element pair, failing with
// ErrInvalidLink for any other length or for a self-pair.
func LinkOf[N comparable](pair []N) (Link[N], error) {
	if len(pair) != 2 {
		return Link[N]{}, fmt.Errorf("%w: expected a pair, got %d elements", ErrInvalidLink, len(pair))
	}
	return NewLink(pair[0], pair[1])
}

// MustLink is like [NewLink] but panics on error. Use it for literals in
// tests and examples where the endpoints are known to be distinct.
func MustLink[N comparable](a, b N) Link[N] {
	l, err := NewLink(a, b)
	if err != nil {
		panic(err)
	}
	return l
}

// Left returns the first endpoint in canonical order.
func (l Link[N]) Left() N { return l.left }

// Right returns the second endpoint in canonical order.
func (l Link[N]) Right() N { return l.right }

// Endpoints returns both endpoints in canonical order.
func (l Link[N]) Endpoints() (N, N) { return l.left, l.right }

// Touches reports whether n is one of the link's endpoints.
func (l Link[N]) Touches(n N) bool { return n == l.left || n == l.right }

// Other returns the endpoint opposite to n, and whether n is an endpoint
// at all.
func (l Link[N]) Other(n N) (N, bool) {
	switch n {
	case l.left:
		return l.right, true
	case l.right:
		return l.left, true
	}
	var zero N
	return zero, false
}

// String formats the link as its canonical endpoint pair.
func (l Link[N]) String() string { return fmt.Sprintf("(%v, %v)", l.left, l.right) }

// valid reports whether the link was built through a constructor. The
// zero Link has equal endpoints and is the only way to obtain an
// invalid value.
func (l Link[N]) valid() bool { return l.left != l.right }
