package clothesline

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Set is a subset of a domain, defined by a finite number of intervals, like
//
//	(-inf, -5] ∪ (-3, 3) ∪ [4, 8)
//
// Sets hold their intervals in canonical form: sorted, pairwise disjoint, and
// with no two neighbours which could be fused into one interval. Therefore
// two sets are equal if and only if their intervals are equal.
//
// Sets are immutable; every set operation returns a new set. A set created by
//
//	Set[T]{}
//
// is a valid object and behaves like the empty set. It has no domain, however,
// and will adopt the domain of the other operand in binary operations.
// Sets of incompatible domains are never equal, even if both are empty.
type Set[T any] struct {
	dom  *Domain[T]
	list *immutable.List[Interval[T]]
}

// setFromCanonical wraps intervals already in canonical form.
func setFromCanonical[T any](d *Domain[T], intervals []Interval[T]) Set[T] {
	if len(intervals) == 0 {
		return Set[T]{dom: d}
	}
	b := immutable.NewListBuilder[Interval[T]]()
	for _, iv := range intervals {
		b.Append(iv)
	}
	return Set[T]{dom: d, list: b.List()}
}

// Domain returns the domain of the set. It may be nil for the zero set.
func (s Set[T]) Domain() *Domain[T] {
	return s.dom
}

// Len returns the number of intervals in the set.
func (s Set[T]) Len() int {
	if s.list == nil {
		return 0
	}
	return s.list.Len()
}

// IsEmpty is true if the set contains no point.
func (s Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the i-th interval, counted from the left. It panics if i is out
// of range.
func (s Set[T]) At(i int) Interval[T] {
	assert(i >= 0 && i < s.Len(), "set: interval index out of bounds")
	return s.list.Get(i)
}

// Intervals returns an iterator over the intervals of the set, from left to
// right.
func (s Set[T]) Intervals() iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		for i := range s.Len() {
			if !yield(s.list.Get(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the intervals of the set.
func (s Set[T]) Slice() []Interval[T] {
	intervals := make([]Interval[T], 0, s.Len())
	for iv := range s.Intervals() {
		intervals = append(intervals, iv)
	}
	return intervals
}

// Contains tests whether a value belongs to the set.
func (s Set[T]) Contains(x T) bool {
	return s.ContainsValue(Finite(x))
}

// ContainsValue tests whether an extended value belongs to the set.
// Infinities never belong to any set.
func (s Set[T]) ContainsValue(x Value[T]) bool {
	for iv := range s.Intervals() {
		if iv.ContainsValue(x) {
			return true
		}
	}
	return false
}

// --- Set algebra -----------------------------------------------------------

// Union returns s ∪ other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	return s.combine(other, Or)
}

// Difference returns s \ other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return s.combine(other, AndNot)
}

// Intersect returns s ∩ other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return s.combine(other, And)
}

// Xor returns the symmetric difference of s and other.
func (s Set[T]) Xor(other Set[T]) Set[T] {
	return s.combine(other, Xor)
}

// Complement returns the set of all points of the domain not in s.
// It panics for the zero set, which has no domain to complement in.
func (s Set[T]) Complement() Set[T] {
	assert(s.dom != nil, "set: complement needs a domain")
	return s.dom.AllSet().Difference(s)
}

// SupersetOf is true if every point of other belongs to s.
func (s Set[T]) SupersetOf(other Set[T]) bool {
	return other.Difference(s).IsEmpty()
}

// combine applies a binary combiner. Operands from incompatible domains are a
// programming error and will panic.
func (s Set[T]) combine(other Set[T], f Combiner) Set[T] {
	d := s.dom
	if d == nil {
		d = other.dom
	}
	if d == nil {
		return Set[T]{}
	}
	intervals, err := d.Combine(f, s.Slice(), other.Slice())
	if err != nil {
		panic(err.Error())
	}
	return setFromCanonical(d, intervals)
}

// --- Equality and hashing --------------------------------------------------

// Equal is true if both sets contain the same points of compatible domains.
// A zero set has no domain and equals every empty set.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.dom != nil && other.dom != nil && !s.dom.compatible(other.dom) {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.Len() {
		if !s.list.Get(i).Equal(other.list.Get(i)) {
			return false
		}
	}
	return true
}

// Hash computes a hash value of the set, given a hasher for domain values.
// Equal sets have equal hash values.
func (s Set[T]) Hash(values immutable.Hasher[T]) uint32 {
	h := uint32(17)
	mix := func(x uint32) {
		h = h*31 + x
	}
	for iv := range s.Intervals() {
		for _, p := range []Peg[T]{iv.begin, iv.end} {
			mix(uint32(p.Value.kind) + 2)
			if p.Included {
				mix(1)
			} else {
				mix(0)
			}
			if v, ok := p.Value.Get(); ok {
				mix(values.Hash(v))
			}
		}
	}
	return h
}

// SetHasher lets sets be used as keys in immutable.Map.
type SetHasher[T any] struct {
	Values immutable.Hasher[T] // hasher for domain values
}

// Hash returns the hash of a set.
func (h SetHasher[T]) Hash(s Set[T]) uint32 {
	return s.Hash(h.Values)
}

// Equal is true if both sets are equal.
func (h SetHasher[T]) Equal(a, b Set[T]) bool {
	return a.Equal(b)
}

// String renders the intervals of the set joined by '∪', or "∅" for the
// empty set.
func (s Set[T]) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	var b strings.Builder
	for iv := range s.Intervals() {
		if b.Len() > 0 {
			b.WriteString(" ∪ ")
		}
		b.WriteString(iv.String())
	}
	return b.String()
}
