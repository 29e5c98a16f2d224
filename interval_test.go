package clothesline

import (
	"cmp"
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- Test domain -----------------------------------------------------------

type realCodec struct{}

func (realCodec) Encode(x float64) (any, error) { return x, nil }

func (realCodec) Decode(o any) (float64, error) {
	x, ok := o.(float64)
	if !ok {
		return 0, fmt.Errorf("not a real value: %T", o)
	}
	return x, nil
}

type realMetric struct{}

func (realMetric) Zero() float64                 { return 0 }
func (realMetric) Add(a, b float64) float64      { return a + b }
func (realMetric) Subtract(a, b float64) float64 { return a - b }

var reals = &Domain[float64]{
	Name:    "Real",
	Version: 1,
	Compare: cmp.Compare[float64],
	Codec:   realCodec{},
}

func span(a float64, ai bool, b float64, bi bool) Interval[float64] {
	return Must(reals.Span(a, ai, b, bi))
}

func closed(a, b float64) Interval[float64] { return Must(reals.Closed(a, b)) }
func open(a, b float64) Interval[float64]   { return Must(reals.Open(a, b)) }

// ---------------------------------------------------------------------------

func TestPegInfinityNotIncluded(t *testing.T) {
	if _, err := NewPeg(PosInf[float64](), true); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected included +inf peg to fail with invalid value, got %v", err)
	}
	if _, err := NewPeg(NegInf[float64](), true); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected included -inf peg to fail with invalid value, got %v", err)
	}
	p, err := NewPeg(PosInf[float64](), false)
	if err != nil || p.Included {
		t.Errorf("expected excluded +inf peg to be valid, got %v", err)
	}
}

func TestPegEquality(t *testing.T) {
	order := reals.Order()
	if !Incl(3.0).Equal(Incl(3.0), order) {
		t.Errorf("expected [3 == [3")
	}
	if Incl(3.0).Equal(Excl(3.0), order) {
		t.Errorf("expected pegs with different inclusion to differ")
	}
	if Excl(3.0).Equal(Excl(4.0), order) {
		t.Errorf("expected pegs with different values to differ")
	}
}

func TestIntervalValidation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	invalid := []struct {
		begin, end Peg[float64]
	}{
		{Incl(5.0), Incl(4.0)},                             // begin > end
		{Excl(5.0), Excl(5.0)},                             // open point
		{Incl(5.0), Excl(5.0)},                             // contradicting point
		{Excl(5.0), Incl(5.0)},                             // contradicting point
		{Peg[float64]{Value: PosInf[float64]()}, Excl(0.0)}, // begin > end
		{Peg[float64]{Value: PosInf[float64]()}, Peg[float64]{Value: PosInf[float64]()}},
		{Peg[float64]{Value: NegInf[float64](), Included: true}, Excl(0.0)},
	}
	for _, test := range invalid {
		iv, err := reals.Interval(test.begin, test.end)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected interval %s…%s to be invalid, is %s", test.begin, test.end, iv)
		} else {
			t.Logf("ok: %v", err)
		}
	}
	if _, err := reals.Open(5, 5); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected (5, 5) to be invalid")
	}
	p := reals.Point(5)
	if !p.IsPoint() || p.String() != "[5, 5]" {
		t.Errorf("expected closed point [5, 5], is %s", p)
	}
}

func TestIntervalContains(t *testing.T) {
	tests := []struct {
		iv     Interval[float64]
		x      float64
		expect bool
	}{
		{closed(0, 2), 1, true},
		{closed(0, 2), 0, true},
		{closed(0, 2), 2, true},
		{open(0, 2), 0, false},
		{open(0, 2), 2, false},
		{open(0, 2), 1.999, true},
		{span(0, true, 2, false), 0, true},
		{span(0, true, 2, false), 2, false},
		{closed(0, 2), -1, false},
		{closed(0, 2), 3, false},
		{reals.Point(7), 7, true},
		{reals.Point(7), 7.5, false},
		{reals.LowSlice(0, true), -1e300, true},
		{reals.LowSlice(0, false), 0, false},
		{reals.HighSlice(0, true), 0, true},
		{reals.All(), 42, true},
	}
	for _, test := range tests {
		if test.iv.Contains(test.x) != test.expect {
			t.Errorf("expected %s.contains(%v) to be %v", test.iv, test.x, test.expect)
		}
	}
}

func TestIntervalNeverContainsInfinity(t *testing.T) {
	all := reals.All()
	if all.ContainsValue(PosInf[float64]()) || all.ContainsValue(NegInf[float64]()) {
		t.Errorf("expected infinities not to be contained in %s", all)
	}
	if reals.HighSlice(0, true).ContainsValue(PosInf[float64]()) {
		t.Errorf("expected +inf not to be contained in [0, +inf)")
	}
	if !all.ContainsValue(Finite(0.0)) {
		t.Errorf("expected 0 to be contained in %s", all)
	}
}

func TestIntervalString(t *testing.T) {
	tests := []struct {
		iv     Interval[float64]
		expect string
	}{
		{closed(0, 2), "[0, 2]"},
		{open(0, 2.5), "(0, 2.5)"},
		{span(10, true, 13, false), "[10, 13)"},
		{reals.LowSlice(0, true), "(-inf, 0]"},
		{reals.HighSlice(15, true), "[15, +inf)"},
		{reals.All(), "(-inf, +inf)"},
	}
	for _, test := range tests {
		if test.iv.String() != test.expect {
			t.Errorf("expected %q, got %q", test.expect, test.iv.String())
		}
	}
}

func TestIntervalEquality(t *testing.T) {
	if !closed(0, 2).Equal(closed(0, 2)) {
		t.Errorf("expected [0, 2] == [0, 2]")
	}
	if closed(0, 2).Equal(span(0, true, 2, false)) {
		t.Errorf("expected [0, 2] != [0, 2)")
	}
	other := NewOrdered[float64]("Other", 1)
	if closed(0, 2).Equal(Must(other.Closed(0, 2))) {
		t.Errorf("expected intervals of different domains to differ")
	}
}

func TestIntervalLength(t *testing.T) {
	l, err := Length(span(1, false, 5, true), realMetric{})
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := l.Get(); x != 4 {
		t.Errorf("expected length of (1, 5] to be 4, is %s", l)
	}
	l, err = Length(reals.HighSlice(0, true), realMetric{})
	if err != nil || l.Kind() != PosInfKind {
		t.Errorf("expected length of [0, +inf) to be +inf, is %s (%v)", l, err)
	}
	l, err = Length(reals.All(), realMetric{})
	if err != nil || l.Kind() != PosInfKind {
		t.Errorf("expected length of (-inf, +inf) to be +inf, is %s (%v)", l, err)
	}
	if _, err = Length[float64, float64](closed(0, 1), nil); !errors.Is(err, ErrMetricNotImplemented) {
		t.Errorf("expected length without metric to fail, got %v", err)
	}
}
