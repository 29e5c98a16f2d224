/*
Package clothesline implements an algebra of interval sets over a totally
ordered domain, extended by the two symbolic endpoints -∞ and +∞.

Intervals

An interval spans between two pegs. A peg is a boundary value together with
a flag telling whether the value itself belongs to the interval. Intervals may
be open, closed or half-open, and they may extend to infinity on either side:

	[10, 13)   (13, 14]   [15, +inf)   (-inf, 0]   [2, 2]

Intervals are created through a Domain, which carries everything the package
needs to know about the value type: a comparison function and, optionally, a
codec for serialization and a formatting function for diagnostics.

Interval Sets

A Set is a finite union of intervals, held in canonical form: sorted,
pairwise disjoint and non-mergeable. Sets are immutable. The set operations
Union, Difference, Intersect, Xor and Complement all return new sets.

	d := clothesline.NewOrdered[float64]("Real", 1)
	a := clothesline.Must(d.ClosedSet(0, 2))
	b := clothesline.Must(d.ClosedSet(1, 3))
	fmt.Println(a.Xor(b))   // [0, 1) ∪ (2, 3]

All set operations are driven by a single sweep-line algorithm, which combines
N lists of intervals under an arbitrary boolean predicate. Clients may call it
directly with Domain.Combine, e.g. to compute "in at least two of three sets".

Metrics

If a domain supports addition and subtraction, clients may supply a Metric
and compute the extension (total length) of intervals and sets. Lengths may
become infinite; indeterminate forms like ∞-∞ are reported as errors.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package clothesline

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
