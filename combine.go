package clothesline

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/benbjohnson/immutable"
)

// Combiner is a boolean predicate over N operands. Given whether a point
// belongs to each of N interval lists, it decides whether the point belongs to
// the combined result. q has exactly one entry per operand.
//
// A combiner must map "in no operand" to false.
type Combiner func(q []bool) bool

// Standard combiners.
var (
	// Identity is used for normalizing a single list of intervals.
	Identity Combiner = func(q []bool) bool { return q[0] }
	// Or is set union of two operands.
	Or Combiner = func(q []bool) bool { return q[0] || q[1] }
	// AndNot is set difference of two operands.
	AndNot Combiner = func(q []bool) bool { return q[0] && !q[1] }
	// And is set intersection of two operands.
	And Combiner = func(q []bool) bool { return q[0] && q[1] }
	// Xor is symmetric set difference of two operands.
	Xor Combiner = func(q []bool) bool { return q[0] != q[1] }
)

// AtLeast returns a combiner for any number of operands which selects points
// contained in at least k of them. k must be positive.
func AtLeast(k int) Combiner {
	assert(k > 0, "AtLeast: k must be positive")
	return func(q []bool) bool {
		cnt := 0
		for _, in := range q {
			if in {
				cnt++
			}
		}
		return cnt >= k
	}
}

// Combine is the workhorse of the interval algebra. It combines N lists of
// intervals under combiner f and returns the canonical list of intervals
// for which
//
//	p ∈ result  ⇔  f(p ∈ lists[0], …, p ∈ lists[N-1])
//
// holds for every point p. Input lists may be unsorted and may contain
// overlapping intervals; the result is sorted, disjoint and non-mergeable.
// With N=1 and the Identity combiner, Combine normalizes a single list.
//
// Combine works as a sweep line over the distinct boundary values (markers)
// of all input intervals. For every marker it records, per operand, whether
// the marker point itself is covered and whether the open span up to the next
// marker is covered. Both are then projected through f, and a final left-to-
// right scan merges covered points and spans into intervals.
//
// Combine never modifies its input. It either succeeds completely or returns
// an error without any result.
func (d *Domain[T]) Combine(f Combiner, lists ...[]Interval[T]) ([]Interval[T], error) {
	n := len(lists)
	if n == 0 {
		return nil, nil
	}
	if f(make([]bool, n)) {
		return nil, fmt.Errorf("%w: combiner includes points outside of all operands", ErrInvalidCombiner)
	}
	markers, index, err := d.collectMarkers(lists)
	if err != nil || len(markers) == 0 {
		return nil, err
	}
	k := len(markers)
	// labeling: row m of the tables holds the flags of all operands at marker m
	pointIn := make([]bool, k*n)
	rangeIn := make([]bool, k*n)
	for i, list := range lists {
		for _, iv := range list {
			b, _ := index.Get(iv.begin.Value)
			e, _ := index.Get(iv.end.Value)
			if iv.begin.Included {
				pointIn[b*n+i] = true
			}
			if iv.end.Included {
				pointIn[e*n+i] = true
			}
			for m := b + 1; m < e; m++ {
				pointIn[m*n+i] = true
			}
			for m := b; m < e; m++ {
				rangeIn[m*n+i] = true
			}
		}
	}
	// projection: there is no range after the last marker
	pointMerged := make([]bool, k)
	rangeMerged := make([]bool, k)
	for m := range k {
		pointMerged[m] = f(pointIn[m*n : (m+1)*n])
		if m < k-1 {
			rangeMerged[m] = f(rangeIn[m*n : (m+1)*n])
		}
	}
	result, err := d.mergeMarkers(markers, pointMerged, rangeMerged)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("combine: %d operand(s), %d markers, %d intervals", n, k, len(result))
	return result, nil
}

// collectMarkers returns the distinct boundary values of all intervals, sorted
// by extended order, together with an index from marker value to position.
func (d *Domain[T]) collectMarkers(lists [][]Interval[T]) ([]Value[T], *immutable.SortedMap[Value[T], int], error) {
	order := d.Order()
	distinct := immutable.NewSortedMapBuilder[Value[T], int](order)
	for i, list := range lists {
		for _, iv := range list {
			if !d.compatible(iv.dom) {
				return nil, nil, fmt.Errorf("%w: interval %s of operand %d is not from domain %s",
					ErrIncompatibleDomain, iv, i, d)
			}
			distinct.Set(iv.begin.Value, 0)
			distinct.Set(iv.end.Value, 0)
		}
	}
	sorted := distinct.Map()
	markers := make([]Value[T], 0, sorted.Len())
	positions := immutable.NewSortedMapBuilder[Value[T], int](order)
	for it := sorted.Iterator(); !it.Done(); {
		m, _, _ := it.Next()
		positions.Set(m, len(markers))
		markers = append(markers, m)
	}
	return markers, positions.Map(), nil
}

// mergeMarkers scans the projected flags from left to right. An open buffer
// holds the start peg of the interval currently being built.
func (d *Domain[T]) mergeMarkers(markers []Value[T], point, rng []bool) ([]Interval[T], error) {
	var result []Interval[T]
	var start Peg[T]
	buffered := false
	for m, marker := range markers {
		if !buffered {
			if rng[m] {
				start, buffered = Peg[T]{Value: marker, Included: point[m]}, true
			} else if point[m] {
				// isolated point, always closed
				iv, err := d.Interval(Peg[T]{marker, true}, Peg[T]{marker, true})
				if err != nil {
					return nil, err
				}
				result = append(result, iv)
			}
			continue
		}
		if rng[m] && point[m] {
			continue // interval extends beyond marker
		}
		end := Peg[T]{Value: marker, Included: point[m]}
		iv, err := d.Interval(start, end)
		if err != nil {
			return nil, err
		}
		result = append(result, iv)
		if rng[m] { // a hole: re-open right here
			start = end
		} else {
			buffered = false
		}
	}
	if buffered {
		return nil, fmt.Errorf("%w: unterminated interval starting at %s", ErrInvalidCombineEndState,
			d.format(start.Value))
	}
	return result, nil
}
