package clothesline

import "errors"

var (
	// ErrInvalidValue signals a malformed peg or interval: an included
	// infinity, a begin after its end, or an inconsistent point-like interval.
	ErrInvalidValue = errors.New("clothesline: invalid value")
	// ErrIndeterminateForm signals arithmetic on infinities without a
	// defined result, e.g. +∞ + -∞ or +∞ - +∞.
	ErrIndeterminateForm = errors.New("clothesline: indeterminate form")
	// ErrMetricNotImplemented signals a length computation without a metric.
	ErrMetricNotImplemented = errors.New("clothesline: metric not implemented")
	// ErrUnserializableItem signals an attempt to encode or decode values of
	// a domain which has no codec.
	ErrUnserializableItem = errors.New("clothesline: item not serializable")
	// ErrUnparseableRecord signals a malformed serialization record.
	ErrUnparseableRecord = errors.New("clothesline: unparseable record")
	// ErrUnsupportedVersion signals a serialization record too new to be read.
	ErrUnsupportedVersion = errors.New("clothesline: unsupported record version")
	// ErrInvalidCombineEndState signals an internal defect of the combine
	// engine. It cannot be triggered by valid input.
	ErrInvalidCombineEndState = errors.New("clothesline: invalid combine end state")
	// ErrInvalidCombiner signals a combiner which maps "in no operand" to true.
	ErrInvalidCombiner = errors.New("clothesline: invalid combiner")
	// ErrIncompatibleDomain signals intervals bound to different domains.
	ErrIncompatibleDomain = errors.New("clothesline: incompatible domain")
	// ErrBuilderCompleted signals that a builder has already produced its set
	// and it is illegal to stage further intervals.
	ErrBuilderCompleted = errors.New("clothesline: builder has been completed")
)
