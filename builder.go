package clothesline

import "fmt"

// Builder incrementally stages intervals and finalizes them into a Set.
//
// Pegs are added from left to right; every second peg completes an interval:
//
//	s, err := d.Build().Closed(10).Open(13).Open(13).Closed(14).Closed(15).Inf().Set()
//	// s = [10, 13) ∪ (13, 14] ∪ [15, +inf)
//
// The first error occurring while staging sticks and is reported when the
// builder is finalized with Interval or Set. It is illegal to continue adding
// pegs after Set has been called, but Set may be called multiple times.
type Builder[T any] struct {
	dom    *Domain[T]
	staged []Interval[T]
	pegs   []Peg[T] // begin peg of the interval under construction, if any
	err    error
	done   bool
	set    Set[T]
}

// Build creates a new and empty builder for intervals of d.
func (d *Domain[T]) Build() *Builder[T] {
	return &Builder[T]{dom: d}
}

// Closed adds an included peg.
func (b *Builder[T]) Closed(v T) *Builder[T] {
	return b.add(Incl(v))
}

// Open adds an excluded peg.
func (b *Builder[T]) Open(v T) *Builder[T] {
	return b.add(Excl(v))
}

// Inf adds an infinite peg: -∞ if it starts an interval, +∞ if it ends one.
func (b *Builder[T]) Inf() *Builder[T] {
	if len(b.pegs) == 0 {
		return b.add(Peg[T]{Value: NegInf[T]()})
	}
	return b.add(Peg[T]{Value: PosInf[T]()})
}

// Peg adds an arbitrary peg.
func (b *Builder[T]) Peg(p Peg[T]) *Builder[T] {
	return b.add(p)
}

func (b *Builder[T]) add(p Peg[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	if b.done {
		b.err = ErrBuilderCompleted
		return b
	}
	if len(b.pegs) == 0 {
		b.pegs = append(b.pegs, p)
		return b
	}
	iv, err := b.dom.Interval(b.pegs[0], p)
	b.pegs = b.pegs[:0]
	if err != nil {
		tracer().Debugf("interval builder: %v", err)
		b.err = err
		return b
	}
	b.staged = append(b.staged, iv)
	return b
}

// Interval returns the single interval staged. It is an error to call
// Interval with more than one or with an incomplete interval staged.
func (b *Builder[T]) Interval() (Interval[T], error) {
	if err := b.check(); err != nil {
		return Interval[T]{}, err
	}
	if len(b.staged) != 1 {
		return Interval[T]{}, fmt.Errorf("%w: builder holds %d intervals", ErrInvalidValue, len(b.staged))
	}
	return b.staged[0], nil
}

// Set returns the normalized set of all intervals staged.
func (b *Builder[T]) Set() (Set[T], error) {
	if err := b.check(); err != nil {
		return b.dom.Empty(), err
	}
	if !b.done {
		b.set = b.dom.NewSet(b.staged...)
		b.done = true
		if b.set.IsEmpty() {
			tracer().Debugf("interval builder: set is empty")
		}
	}
	return b.set, nil
}

func (b *Builder[T]) check() error {
	if b.err != nil {
		return b.err
	}
	if len(b.pegs) > 0 {
		return fmt.Errorf("%w: incomplete interval starting at %s", ErrInvalidValue,
			b.dom.format(b.pegs[0].Value))
	}
	return nil
}

// Reset drops all staged intervals and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.staged = nil
	b.pegs = nil
	b.err = nil
	b.done = false
	b.set = Set[T]{}
}
