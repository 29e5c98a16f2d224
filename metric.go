package clothesline

import "fmt"

// Metric is an additive structure over a domain T, enabling the computation
// of lengths (extensions). Lengths are of type L, which may differ from T,
// e.g. time.Time and time.Duration.
//
// For lengths s, t, u, Add should be associative and Zero should be the
// neutral element:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Subtract(b, a) is the length of the span from a to b.
type Metric[T, L any] interface {
	Zero() L
	Add(a, b L) L
	Subtract(a, b T) L
}

// Length returns the extension of an interval, i.e. end - begin. Unbounded
// intervals have infinite length.
//
// Length fails with ErrMetricNotImplemented if metric is nil.
func Length[T, L any](iv Interval[T], metric Metric[T, L]) (Value[L], error) {
	if metric == nil {
		return Value[L]{}, fmt.Errorf("%w: cannot measure %s", ErrMetricNotImplemented, iv)
	}
	return Difference(iv.end.Value, iv.begin.Value, metric.Subtract)
}

// Extension returns the total length of all intervals of a set, starting from
// the metric's zero.
//
// Extension fails with ErrMetricNotImplemented if metric is nil.
func Extension[T, L any](s Set[T], metric Metric[T, L]) (Value[L], error) {
	if metric == nil {
		return Value[L]{}, fmt.Errorf("%w: cannot measure %s", ErrMetricNotImplemented, s)
	}
	total := Finite(metric.Zero())
	for iv := range s.Intervals() {
		l, err := Length(iv, metric)
		if err != nil {
			return Value[L]{}, err
		}
		if total, err = Sum(total, l, metric.Add); err != nil {
			return Value[L]{}, err
		}
	}
	return total, nil
}
