/*
Package domains provides ready-made domains for interval sets over common
value types: real numbers, integers, points in time and strings.

Every domain is a single clothesline.Domain record, shared by all intervals
and sets created from it. Domains with an additive structure come with a
metric to compute lengths:

	d := domains.Reals()
	s := d.HighSliceSet(0, true)
	l, _ := clothesline.Extension(s, domains.RealMetric{})   // +inf

Strings have a total order but no distance, and they are not serializable.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package domains

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/npillmayer/clothesline"
)

var (
	reals = &clothesline.Domain[float64]{
		Name:    "Real",
		Version: 1,
		Compare: cmp.Compare[float64],
		Codec:   realCodec{},
	}
	integers = &clothesline.Domain[int64]{
		Name:    "Integer",
		Version: 1,
		Compare: cmp.Compare[int64],
		Codec:   integerCodec{},
	}
	timestamps = &clothesline.Domain[time.Time]{
		Name:    "Datetime",
		Version: 1,
		Compare: time.Time.Compare,
		Codec:   timeCodec{},
		Format:  func(t time.Time) string { return t.Format(time.RFC3339) },
	}
	texts = &clothesline.Domain[string]{
		Name:    "String",
		Compare: strings.Compare,
	}
)

// Reals returns the domain of float64 values.
func Reals() *clothesline.Domain[float64] {
	return reals
}

// Integers returns the domain of int64 values.
func Integers() *clothesline.Domain[int64] {
	return integers
}

// Timestamps returns the domain of points in time.
func Timestamps() *clothesline.Domain[time.Time] {
	return timestamps
}

// Strings returns the domain of strings, ordered lexicographically by bytes.
// Strings have no metric and no codec.
func Strings() *clothesline.Domain[string] {
	return texts
}

// --- Metrics ---------------------------------------------------------------

// RealMetric measures real intervals.
type RealMetric struct{}

// Zero returns 0.
func (RealMetric) Zero() float64 { return 0 }

// Add returns a + b.
func (RealMetric) Add(a, b float64) float64 { return a + b }

// Subtract returns a - b.
func (RealMetric) Subtract(a, b float64) float64 { return a - b }

// IntegerMetric measures integer intervals by the difference of their bounds.
type IntegerMetric struct{}

// Zero returns 0.
func (IntegerMetric) Zero() int64 { return 0 }

// Add returns a + b.
func (IntegerMetric) Add(a, b int64) int64 { return a + b }

// Subtract returns a - b.
func (IntegerMetric) Subtract(a, b int64) int64 { return a - b }

// DurationMetric measures intervals of time.
type DurationMetric struct{}

// Zero returns a duration of 0.
func (DurationMetric) Zero() time.Duration { return 0 }

// Add returns a + b.
func (DurationMetric) Add(a, b time.Duration) time.Duration { return a + b }

// Subtract returns the duration a - b.
func (DurationMetric) Subtract(a, b time.Time) time.Duration { return a.Sub(b) }

// --- Hashers ---------------------------------------------------------------

// IntegerHasher returns a hasher for integer values, to be used with
// clothesline.SetHasher.
func IntegerHasher() immutable.Hasher[int64] {
	return immutable.NewHasher(int64(0))
}

// StringHasher returns a hasher for string values, to be used with
// clothesline.SetHasher.
func StringHasher() immutable.Hasher[string] {
	return immutable.NewHasher("")
}

// --- Codecs ----------------------------------------------------------------

type realCodec struct{}

func (realCodec) Encode(x float64) (any, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("real value %v has no JSON representation", x)
	}
	return x, nil
}

func (realCodec) Decode(o any) (float64, error) {
	switch x := o.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	}
	return 0, fmt.Errorf("cannot decode %T as real value", o)
}

type integerCodec struct{}

func (integerCodec) Encode(x int64) (any, error) {
	return x, nil
}

func (integerCodec) Decode(o any) (int64, error) {
	switch x := o.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return 0, fmt.Errorf("real value %v is not an integer", x)
		}
		return int64(x), nil
	case json.Number:
		return x.Int64()
	}
	return 0, fmt.Errorf("cannot decode %T as integer value", o)
}

type timeCodec struct{}

func (timeCodec) Encode(t time.Time) (any, error) {
	return t.Format(time.RFC3339Nano), nil
}

func (timeCodec) Decode(o any) (time.Time, error) {
	s, ok := o.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("cannot decode %T as point in time", o)
	}
	return time.Parse(time.RFC3339Nano, s)
}
