package domains

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/npillmayer/clothesline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRealExtension(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := Reals()
	s, err := d.Build().Closed(0).Open(2).Open(1).Closed(5).Set()
	if err != nil {
		t.Fatal(err)
	}
	s = s.Union(clothesline.Must(d.OpenSet(100, 150))).Union(clothesline.Must(d.ClosedSet(1000, 1500)))
	x, err := clothesline.Extension(s, RealMetric{})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := x.Get(); !ok || v != 555 {
		t.Errorf("expected extension of %s to be 555, is %s", s, x)
	}
	x, _ = clothesline.Extension(d.HighSliceSet(0, false), RealMetric{})
	if x.Kind() != clothesline.PosInfKind {
		t.Errorf("expected extension of (0, +inf) to be +inf, is %s", x)
	}
}

func TestTimestampExtension(t *testing.T) {
	d := Timestamps()
	day := 24 * time.Hour
	t0 := time.Date(2000, 10, 20, 12, 34, 56, 0, time.UTC)
	at := func(days int) time.Time { return t0.Add(time.Duration(days) * day) }
	s, err := d.Build().Closed(at(0)).Open(at(2)).Open(at(1)).Closed(at(5)).
		Open(at(100)).Open(at(150)).Closed(at(1000)).Closed(at(1500)).Set()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 intervals, have %s", s)
	}
	x, err := clothesline.Extension(s, DurationMetric{})
	if err != nil {
		t.Fatal(err)
	}
	if dur, ok := x.Get(); !ok || dur != 555*day {
		t.Errorf("expected extension of 555 days, is %s", x)
	}
	x, _ = clothesline.Extension(d.HighSliceSet(t0, true), DurationMetric{})
	if x.Kind() != clothesline.PosInfKind {
		t.Errorf("expected extension of [t0, +inf) to be +inf, is %s", x)
	}
	if !strings.HasPrefix(s.String(), "[2000-10-20T12:34:56Z, 2000-10-25T12:34:56Z]") {
		t.Errorf("unexpected formatting of timestamps: %s", s)
	}
}

func TestTimestampRecord(t *testing.T) {
	d := Timestamps()
	t0 := time.Date(2021, 3, 14, 15, 9, 26, 535897932, time.UTC)
	s := d.NewSet(d.LowSlice(t0, false), d.Point(t0.Add(time.Hour)))
	rec, err := s.Record()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Class != "DatetimeIntervalSet" {
		t.Errorf("unexpected class %q", rec.Class)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	var decoded clothesline.SetRecord
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	r, err := d.SetFromRecord(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(s) {
		t.Errorf("expected %s after round trip, got %s", s, r)
	}
}

func TestStringDomain(t *testing.T) {
	d := Strings()
	s, err := d.Build().Closed("a").Open("z").Set()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains("m") || !s.Contains("a") || s.Contains("z") || s.Contains("zz") {
		t.Errorf("unexpected membership in %s", s)
	}
	if _, err := clothesline.Extension[string, int](s, nil); !errors.Is(err, clothesline.ErrMetricNotImplemented) {
		t.Errorf("expected strings to have no metric, got %v", err)
	}
	if _, err := clothesline.Length[string, int](s.At(0), nil); !errors.Is(err, clothesline.ErrMetricNotImplemented) {
		t.Errorf("expected string intervals to have no metric, got %v", err)
	}
	if _, err := s.Record(); !errors.Is(err, clothesline.ErrUnserializableItem) {
		t.Errorf("expected strings not to be serializable, got %v", err)
	}
	m := immutable.NewMap[clothesline.Set[string], int](clothesline.SetHasher[string]{Values: StringHasher()})
	m = m.Set(s, 1)
	if v, ok := m.Get(d.NewSet(s.Slice()...)); !ok || v != 1 {
		t.Errorf("expected to find %s in map", s)
	}
}

func TestIntegerCodec(t *testing.T) {
	c := integerCodec{}
	for _, o := range []any{int64(7), 7, 7.0, json.Number("7")} {
		if x, err := c.Decode(o); err != nil || x != 7 {
			t.Errorf("expected %v (%T) to decode as 7, got %d (%v)", o, o, x, err)
		}
	}
	for _, o := range []any{7.5, "7", nil, math.Pow(2, 60)} {
		if _, err := c.Decode(o); err == nil {
			t.Errorf("expected %v (%T) not to decode as integer", o, o)
		}
	}
	d := Integers()
	s := d.NewSet(clothesline.Must(d.Closed(-3, 3)), d.HighSlice(10, false))
	rec, err := s.Record()
	if err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(rec)
	var decoded clothesline.SetRecord
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	r, err := d.SetFromRecord(decoded)
	if err != nil || !r.Equal(s) {
		t.Errorf("expected %s after round trip, got %s (%v)", s, r, err)
	}
	x, _ := clothesline.Extension(d.NewSet(clothesline.Must(d.Closed(-3, 3))), IntegerMetric{})
	if v, _ := x.Get(); v != 6 {
		t.Errorf("expected extension 6 of [-3, 3], is %s", x)
	}
	m := immutable.NewMap[clothesline.Set[int64], string](clothesline.SetHasher[int64]{Values: IntegerHasher()})
	m = m.Set(s, "s")
	if v, ok := m.Get(r); !ok || v != "s" {
		t.Errorf("expected decoded set to be found in map")
	}
}

func TestRealCodec(t *testing.T) {
	c := realCodec{}
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := c.Encode(x); err == nil {
			t.Errorf("expected %v not to be encodable", x)
		}
	}
	if _, err := Reals().PointSet(math.Inf(1)).Record(); !errors.Is(err, clothesline.ErrUnserializableItem) {
		t.Errorf("expected set with IEEE infinity to be unserializable, got %v", err)
	}
	for _, o := range []any{2.5, float32(2.5), json.Number("2.5")} {
		if x, err := c.Decode(o); err != nil || x != 2.5 {
			t.Errorf("expected %v (%T) to decode as 2.5, got %v (%v)", o, o, x, err)
		}
	}
	if _, err := c.Decode("2.5"); err == nil {
		t.Errorf("expected string not to decode as real")
	}
}
