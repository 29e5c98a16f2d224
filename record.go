package clothesline

import (
	"errors"
	"fmt"
)

// Codec converts domain values to and from a serializable primitive, e.g.
// a value which encoding/json is able to marshal.
type Codec[T any] interface {
	Encode(T) (any, error)
	Decode(any) (T, error)
}

// Symbols of the infinities within serialization records.
const (
	NegInfSymbol = "-inf"
	PosInfSymbol = "+inf"
)

// ValueRecord is the generic representation of an extended value. Exactly
// one of Symbol or OValue is set.
type ValueRecord struct {
	Symbol string `json:"symbol,omitempty"`
	OValue any    `json:"o_value,omitempty"`
}

// PegRecord is the generic representation of a peg.
type PegRecord struct {
	Value    ValueRecord `json:"value"`
	Included bool        `json:"included"`
}

// IntervalRecord is the generic representation of an interval.
type IntervalRecord struct {
	Class   string      `json:"class"`
	Version int         `json:"version"`
	Pegs    []PegRecord `json:"pegs"`
}

// SetRecord is the generic representation of an interval set.
type SetRecord struct {
	Class     string           `json:"class"`
	Version   int              `json:"version"`
	Intervals []IntervalRecord `json:"intervals"`
}

// IntervalClass is the class signature of interval records of d.
func (d *Domain[T]) IntervalClass() string {
	return d.Name + "Interval"
}

// SetClass is the class signature of set records of d.
func (d *Domain[T]) SetClass() string {
	return d.Name + "IntervalSet"
}

func (d *Domain[T]) serializable() error {
	if d == nil || d.Codec == nil || d.Version <= 0 {
		return fmt.Errorf("%w: domain %s has no codec", ErrUnserializableItem, d)
	}
	return nil
}

// --- Encoding --------------------------------------------------------------

// Record returns the generic representation of the interval.
// It fails with ErrUnserializableItem if the domain has no codec.
func (iv Interval[T]) Record() (IntervalRecord, error) {
	if err := iv.dom.serializable(); err != nil {
		return IntervalRecord{}, err
	}
	rec := IntervalRecord{
		Class:   iv.dom.IntervalClass(),
		Version: iv.dom.Version,
		Pegs:    make([]PegRecord, 2),
	}
	for i, p := range []Peg[T]{iv.begin, iv.end} {
		vrec, err := iv.dom.encodeValue(p.Value)
		if err != nil {
			return IntervalRecord{}, err
		}
		rec.Pegs[i] = PegRecord{Value: vrec, Included: p.Included}
	}
	return rec, nil
}

// Record returns the generic representation of the set.
// It fails with ErrUnserializableItem if the domain has no codec.
func (s Set[T]) Record() (SetRecord, error) {
	if err := s.dom.serializable(); err != nil {
		return SetRecord{}, err
	}
	rec := SetRecord{
		Class:     s.dom.SetClass(),
		Version:   s.dom.Version,
		Intervals: make([]IntervalRecord, 0, s.Len()),
	}
	for iv := range s.Intervals() {
		irec, err := iv.Record()
		if err != nil {
			return SetRecord{}, err
		}
		rec.Intervals = append(rec.Intervals, irec)
	}
	return rec, nil
}

func (d *Domain[T]) encodeValue(v Value[T]) (ValueRecord, error) {
	switch v.Kind() {
	case NegInfKind:
		return ValueRecord{Symbol: NegInfSymbol}, nil
	case PosInfKind:
		return ValueRecord{Symbol: PosInfSymbol}, nil
	}
	x, _ := v.Get()
	o, err := d.Codec.Encode(x)
	if err != nil {
		return ValueRecord{}, fmt.Errorf("%w: %w", ErrUnserializableItem, err)
	}
	return ValueRecord{OValue: o}, nil
}

// --- Decoding --------------------------------------------------------------

// IntervalFromRecord re-creates an interval from its generic representation.
//
// It fails with ErrUnserializableItem if d has no codec, with
// ErrUnsupportedVersion if the record is newer than d, and with
// ErrUnparseableRecord for any other mismatch or malformed content.
func (d *Domain[T]) IntervalFromRecord(rec IntervalRecord) (Interval[T], error) {
	if err := d.serializable(); err != nil {
		return Interval[T]{}, err
	}
	if err := d.checkSignature(rec.Class, d.IntervalClass(), rec.Version); err != nil {
		return Interval[T]{}, err
	}
	if len(rec.Pegs) != 2 {
		return Interval[T]{}, fmt.Errorf("%w: interval record needs 2 pegs, has %d",
			ErrUnparseableRecord, len(rec.Pegs))
	}
	var pegs [2]Peg[T]
	for i, prec := range rec.Pegs {
		v, err := d.decodeValue(prec.Value)
		if err != nil {
			return Interval[T]{}, err
		}
		if pegs[i], err = NewPeg(v, prec.Included); err != nil {
			return Interval[T]{}, fmt.Errorf("%w: %w", ErrUnparseableRecord, err)
		}
	}
	iv, err := d.Interval(pegs[0], pegs[1])
	if err != nil {
		return Interval[T]{}, fmt.Errorf("%w: %w", ErrUnparseableRecord, err)
	}
	return iv, nil
}

// SetFromRecord re-creates a set from its generic representation.
// Errors are reported as with IntervalFromRecord.
func (d *Domain[T]) SetFromRecord(rec SetRecord) (Set[T], error) {
	if err := d.serializable(); err != nil {
		return Set[T]{}, err
	}
	if err := d.checkSignature(rec.Class, d.SetClass(), rec.Version); err != nil {
		return Set[T]{}, err
	}
	intervals := make([]Interval[T], 0, len(rec.Intervals))
	for _, irec := range rec.Intervals {
		iv, err := d.IntervalFromRecord(irec)
		if err != nil {
			return Set[T]{}, err
		}
		intervals = append(intervals, iv)
	}
	return d.NewSet(intervals...), nil
}

func (d *Domain[T]) checkSignature(class, expected string, version int) error {
	if class != expected {
		return fmt.Errorf("%w: class %q, expected %q", ErrUnparseableRecord, class, expected)
	}
	if version > d.Version {
		return fmt.Errorf("%w: version %d of %s, supported up to %d", ErrUnsupportedVersion,
			version, class, d.Version)
	}
	if version != d.Version {
		return fmt.Errorf("%w: version %d of %s, expected %d", ErrUnparseableRecord,
			version, class, d.Version)
	}
	return nil
}

func (d *Domain[T]) decodeValue(rec ValueRecord) (Value[T], error) {
	switch rec.Symbol {
	case NegInfSymbol:
		return NegInf[T](), nil
	case PosInfSymbol:
		return PosInf[T](), nil
	case "":
	default:
		return Value[T]{}, fmt.Errorf("%w: unknown symbol %q", ErrUnparseableRecord, rec.Symbol)
	}
	if rec.OValue == nil {
		return Value[T]{}, fmt.Errorf("%w: value record without content", ErrUnparseableRecord)
	}
	x, err := d.Codec.Decode(rec.OValue)
	if err != nil {
		if errors.Is(err, ErrUnserializableItem) {
			return Value[T]{}, err
		}
		return Value[T]{}, fmt.Errorf("%w: %w", ErrUnparseableRecord, err)
	}
	return Finite(x), nil
}
