package clothesline

import (
	"cmp"
	"fmt"
)

// Domain is the capability record of a value type T. It tells the package
// how to compare values and, optionally, how to serialize and print them.
//
// Name and Version are used as class signature in serialization records
// (see Set.Record). A version of 0 marks the domain as not serializable.
//
// Intervals and sets keep a reference to the domain they have been created
// with. Clients should create one Domain per value type and share it.
type Domain[T any] struct {
	Name    string           // class name prefix for serialization records
	Version int              // serialization version, 0 for none
	Compare func(a, b T) int // total order of T, required
	Codec   Codec[T]         // encoding of values, optional
	Format  func(T) string   // formatting of values for diagnostics, optional
}

// NewOrdered creates a domain for a type with a natural order.
func NewOrdered[T cmp.Ordered](name string, version int) *Domain[T] {
	return &Domain[T]{
		Name:    name,
		Version: version,
		Compare: cmp.Compare[T],
	}
}

// Order returns the extended order over T ∪ {-∞, +∞}.
func (d *Domain[T]) Order() Order[T] {
	return Order[T](d.Compare)
}

func (d *Domain[T]) compatible(other *Domain[T]) bool {
	if d == other {
		return true
	}
	return d != nil && other != nil && d.Name != "" && d.Name == other.Name
}

func (d *Domain[T]) String() string {
	if d == nil {
		return "<nil domain>"
	}
	return d.Name
}

// FormatValue renders an extended value, using d.Format for finite values
// if present.
func (d *Domain[T]) FormatValue(v Value[T]) string {
	return d.format(v)
}

func (d *Domain[T]) format(v Value[T]) string {
	if d == nil {
		return v.String()
	}
	return v.format(d.Format)
}

// --- Interval factories ----------------------------------------------------

// Interval creates an interval from two pegs.
//
// It fails with ErrInvalidValue if begin comes after end, or if begin and end
// denote the same point but are not both included.
func (d *Domain[T]) Interval(begin, end Peg[T]) (Interval[T], error) {
	assert(d != nil && d.Compare != nil, "domain needs a comparison function")
	if !begin.valid() || !end.valid() {
		return Interval[T]{}, fmt.Errorf("%w: infinities cannot be included in peg", ErrInvalidValue)
	}
	switch d.Order().Compare(begin.Value, end.Value) {
	case 1:
		return Interval[T]{}, fmt.Errorf("%w: interval begin %s must come before its end %s",
			ErrInvalidValue, d.format(begin.Value), d.format(end.Value))
	case 0:
		if begin.Included != end.Included {
			return Interval[T]{}, fmt.Errorf("%w: contradicting inclusion for point-like interval at %s",
				ErrInvalidValue, d.format(begin.Value))
		}
		if !begin.Included {
			return Interval[T]{}, fmt.Errorf("%w: empty point-like open interval at %s",
				ErrInvalidValue, d.format(begin.Value))
		}
	}
	return Interval[T]{begin: begin, end: end, dom: d}, nil
}

// Span creates an interval from two finite values and their inclusion flags.
func (d *Domain[T]) Span(from T, fromIncluded bool, to T, toIncluded bool) (Interval[T], error) {
	return d.Interval(Peg[T]{Finite(from), fromIncluded}, Peg[T]{Finite(to), toIncluded})
}

// Open creates the interval (from, to).
func (d *Domain[T]) Open(from, to T) (Interval[T], error) {
	return d.Span(from, false, to, false)
}

// Closed creates the interval [from, to].
func (d *Domain[T]) Closed(from, to T) (Interval[T], error) {
	return d.Span(from, true, to, true)
}

// Point creates the degenerate interval [v, v].
func (d *Domain[T]) Point(v T) Interval[T] {
	return d.mustInterval(Incl(v), Incl(v))
}

// LowSlice creates the interval (-∞, to) or (-∞, to].
func (d *Domain[T]) LowSlice(to T, included bool) Interval[T] {
	return d.mustInterval(Peg[T]{Value: NegInf[T]()}, Peg[T]{Finite(to), included})
}

// HighSlice creates the interval (from, +∞) or [from, +∞).
func (d *Domain[T]) HighSlice(from T, included bool) Interval[T] {
	return d.mustInterval(Peg[T]{Finite(from), included}, Peg[T]{Value: PosInf[T]()})
}

// All creates the interval (-∞, +∞), covering the whole domain.
func (d *Domain[T]) All() Interval[T] {
	return d.mustInterval(Peg[T]{Value: NegInf[T]()}, Peg[T]{Value: PosInf[T]()})
}

func (d *Domain[T]) mustInterval(begin, end Peg[T]) Interval[T] {
	iv, err := d.Interval(begin, end)
	assert(err == nil, "domain: cannot create well-formed interval")
	return iv
}

// --- Set factories ---------------------------------------------------------

// NewSet creates an interval set from arbitrary intervals, which may overlap
// and may be unsorted. The intervals are normalized to canonical form.
//
// All intervals must have been created by d (or a domain of the same name).
// Mixing domains is a programming error and will panic.
func (d *Domain[T]) NewSet(intervals ...Interval[T]) Set[T] {
	normal, err := d.Combine(Identity, intervals)
	if err != nil {
		panic(err.Error())
	}
	return setFromCanonical(d, normal)
}

// Empty returns the empty set.
func (d *Domain[T]) Empty() Set[T] {
	return Set[T]{dom: d}
}

// AllSet returns the set covering the whole domain.
func (d *Domain[T]) AllSet() Set[T] {
	return d.NewSet(d.All())
}

// OpenSet creates the set (from, to).
func (d *Domain[T]) OpenSet(from, to T) (Set[T], error) {
	iv, err := d.Open(from, to)
	if err != nil {
		return d.Empty(), err
	}
	return d.NewSet(iv), nil
}

// ClosedSet creates the set [from, to].
func (d *Domain[T]) ClosedSet(from, to T) (Set[T], error) {
	iv, err := d.Closed(from, to)
	if err != nil {
		return d.Empty(), err
	}
	return d.NewSet(iv), nil
}

// PointSet creates the set [v, v].
func (d *Domain[T]) PointSet(v T) Set[T] {
	return d.NewSet(d.Point(v))
}

// LowSliceSet creates the set (-∞, to) or (-∞, to].
func (d *Domain[T]) LowSliceSet(to T, included bool) Set[T] {
	return d.NewSet(d.LowSlice(to, included))
}

// HighSliceSet creates the set (from, +∞) or [from, +∞).
func (d *Domain[T]) HighSliceSet(from T, included bool) Set[T] {
	return d.NewSet(d.HighSlice(from, included))
}

// Must is a helper for factories returning an error. It panics if err is
// non-nil and returns x otherwise.
//
//	s := clothesline.Must(d.ClosedSet(0, 2))
func Must[X any](x X, err error) X {
	if err != nil {
		panic(err.Error())
	}
	return x
}
