package clothesline

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Kind discriminates the variants of an extended value.
type Kind int8

// Extended values are either ordinary domain values or one of the two
// infinities. The numeric order of kinds reflects their position on the line.
const (
	NegInfKind Kind = iota - 1 // -∞
	FiniteKind                 // an ordinary domain value
	PosInfKind                 // +∞
)

// Value is a domain value extended by the symbolic endpoints -∞ and +∞.
//
// The zero value is the finite zero value of T.
type Value[T any] struct {
	kind Kind
	v    T
}

// Finite wraps an ordinary domain value.
func Finite[T any](v T) Value[T] {
	return Value[T]{kind: FiniteKind, v: v}
}

// NegInf returns -∞.
func NegInf[T any]() Value[T] {
	return Value[T]{kind: NegInfKind}
}

// PosInf returns +∞.
func PosInf[T any]() Value[T] {
	return Value[T]{kind: PosInfKind}
}

// Kind returns the variant of v.
func (v Value[T]) Kind() Kind {
	return v.kind
}

// IsFinite is true for ordinary domain values.
func (v Value[T]) IsFinite() bool {
	return v.kind == FiniteKind
}

// IsInf is true for both -∞ and +∞.
func (v Value[T]) IsInf() bool {
	return v.kind != FiniteKind
}

// Get returns the domain value of v. The second result is false for infinities.
func (v Value[T]) Get() (T, bool) {
	if v.kind != FiniteKind {
		var zero T
		return zero, false
	}
	return v.v, true
}

// String renders infinities as "-inf" and "+inf" and finite values with
// their default format.
func (v Value[T]) String() string {
	return v.format(nil)
}

func (v Value[T]) format(f func(T) string) string {
	switch v.kind {
	case NegInfKind:
		return "-inf"
	case PosInfKind:
		return "+inf"
	}
	if f != nil {
		return f(v.v)
	}
	return fmt.Sprint(v.v)
}

// --- Extended order --------------------------------------------------------

// Order is a comparison function for domain values. It must return a negative
// number, zero or a positive number if a < b, a == b or a > b, respectively.
//
// Methods of Order extend the comparison to -∞ and +∞: each infinity equals
// only itself, -∞ is less than every other value, +∞ greater than every other
// value. Order implements immutable.Comparer[Value[T]].
type Order[T any] func(a, b T) int

// Compare compares two extended values, returning -1, 0 or +1.
func (o Order[T]) Compare(a, b Value[T]) int {
	if a.kind != FiniteKind || b.kind != FiniteKind {
		switch {
		case a.kind < b.kind:
			return -1
		case a.kind > b.kind:
			return 1
		}
		return 0
	}
	c := o(a.v, b.v)
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

// Equals is true if a and b denote the same point.
func (o Order[T]) Equals(a, b Value[T]) bool {
	return o.Compare(a, b) == 0
}

// Less is true if a < b.
func (o Order[T]) Less(a, b Value[T]) bool {
	return o.Compare(a, b) < 0
}

// Greater is true if a > b.
func (o Order[T]) Greater(a, b Value[T]) bool {
	return o.Compare(a, b) > 0
}

// --- Extended arithmetic ---------------------------------------------------

// Sum adds two extended values, using add for finite operands.
//
//	+∞ + +∞ = +∞     -∞ + -∞ = -∞     ±∞ + x = x + ±∞ = ±∞
//
// Adding infinities of opposite sign results in ErrIndeterminateForm.
func Sum[L any](a, b Value[L], add func(L, L) L) (Value[L], error) {
	switch {
	case a.kind == FiniteKind && b.kind == FiniteKind:
		return Finite(add(a.v, b.v)), nil
	case a.kind == FiniteKind:
		return b, nil
	case b.kind == FiniteKind || a.kind == b.kind:
		return a, nil
	}
	return Value[L]{}, fmt.Errorf("%w: %s + %s", ErrIndeterminateForm, a, b)
}

// Difference evaluates a - b, using sub for finite operands. The result type
// may differ from the operand type, as with points in time and durations.
//
//	+∞ - -∞ = +∞     -∞ - +∞ = -∞     ±∞ - x = ±∞     x - ±∞ = ∓∞
//
// Subtracting infinities of equal sign results in ErrIndeterminateForm.
func Difference[T, L any](a, b Value[T], sub func(T, T) L) (Value[L], error) {
	switch {
	case a.kind == FiniteKind && b.kind == FiniteKind:
		return Finite(sub(a.v, b.v)), nil
	case a.kind == FiniteKind:
		return Value[L]{kind: -b.kind}, nil
	case b.kind == FiniteKind || a.kind != b.kind:
		return Value[L]{kind: a.kind}, nil
	}
	return Value[L]{}, fmt.Errorf("%w: %s - %s", ErrIndeterminateForm, a, b)
}
