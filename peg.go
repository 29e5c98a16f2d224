package clothesline

import "fmt"

// Peg is one boundary of an interval: an extended value together with a flag
// telling whether the value belongs to the interval.
//
// Infinities are never included. Pegs do not define an order among themselves;
// only their values are ordered.
type Peg[T any] struct {
	Value    Value[T]
	Included bool
}

// NewPeg creates a peg. It fails with ErrInvalidValue if v is an infinity and
// included is true.
func NewPeg[T any](v Value[T], included bool) (Peg[T], error) {
	if v.IsInf() && included {
		return Peg[T]{}, fmt.Errorf("%w: infinity %s cannot be included in peg", ErrInvalidValue, v)
	}
	return Peg[T]{Value: v, Included: included}, nil
}

// Incl creates an included peg for a finite value.
func Incl[T any](v T) Peg[T] {
	return Peg[T]{Value: Finite(v), Included: true}
}

// Excl creates an excluded peg for a finite value.
func Excl[T any](v T) Peg[T] {
	return Peg[T]{Value: Finite(v)}
}

// Equal is true if both pegs have the same value and inclusion flag.
func (p Peg[T]) Equal(other Peg[T], order Order[T]) bool {
	return p.Included == other.Included && order.Equals(p.Value, other.Value)
}

func (p Peg[T]) valid() bool {
	return !(p.Included && p.Value.IsInf())
}

// String renders the peg's value, with a trailing '*' for included pegs.
func (p Peg[T]) String() string {
	if p.Included {
		return p.Value.String() + "*"
	}
	return p.Value.String()
}
