package clothesline

import (
	"strings"
)

// Interval is a single contiguous span between two pegs:
//
//	[a, b]   (a, b)   [a, b)   (a, b]
//
// Either end may be infinite. An interval with equal begin and end values is
// the closed point [a, a].
//
// Intervals are immutable values. They are created by Domain factories, which
// validate the interval invariants; the zero Interval is not a valid interval.
type Interval[T any] struct {
	begin, end Peg[T]
	dom        *Domain[T]
}

// Begin returns the lower peg.
func (iv Interval[T]) Begin() Peg[T] {
	return iv.begin
}

// End returns the upper peg.
func (iv Interval[T]) End() Peg[T] {
	return iv.end
}

// Pegs returns both pegs, begin first.
func (iv Interval[T]) Pegs() (Peg[T], Peg[T]) {
	return iv.begin, iv.end
}

// Domain returns the domain the interval has been created with.
func (iv Interval[T]) Domain() *Domain[T] {
	return iv.dom
}

// IsPoint is true for degenerate intervals [a, a].
func (iv Interval[T]) IsPoint() bool {
	return iv.dom != nil && iv.dom.Order().Equals(iv.begin.Value, iv.end.Value)
}

// Contains tests whether a finite value belongs to the interval.
func (iv Interval[T]) Contains(x T) bool {
	return iv.ContainsValue(Finite(x))
}

// ContainsValue tests whether an extended value belongs to the interval.
// Infinities denote extent, not location: they are never contained, even in
// intervals reaching out to them.
func (iv Interval[T]) ContainsValue(x Value[T]) bool {
	if x.IsInf() || iv.dom == nil {
		return false
	}
	order := iv.dom.Order()
	switch order.Compare(iv.begin.Value, x) {
	case 0:
		return iv.begin.Included
	case 1:
		return false
	}
	switch order.Compare(x, iv.end.Value) {
	case 0:
		return iv.end.Included
	case 1:
		return false
	}
	return true
}

// Equal is true if both intervals have equal pegs.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	if iv.dom == nil || !iv.dom.compatible(other.dom) {
		return iv.dom == nil && other.dom == nil
	}
	order := iv.dom.Order()
	return iv.begin.Equal(other.begin, order) && iv.end.Equal(other.end, order)
}

// AsSet returns the set consisting of this interval only.
func (iv Interval[T]) AsSet() Set[T] {
	assert(iv.dom != nil, "interval: zero interval cannot be converted to a set")
	return setFromCanonical(iv.dom, []Interval[T]{iv})
}

// String renders the interval in bracket notation, e.g. "[10, 13)" or
// "(-inf, 0]".
func (iv Interval[T]) String() string {
	var b strings.Builder
	if iv.begin.Included {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(iv.formatPeg(iv.begin))
	b.WriteString(", ")
	b.WriteString(iv.formatPeg(iv.end))
	if iv.end.Included {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

func (iv Interval[T]) formatPeg(p Peg[T]) string {
	if iv.dom == nil {
		return p.Value.String()
	}
	return iv.dom.format(p.Value)
}
