// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package strel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/consensys/go-strel/pkg/util"
	"github.com/consensys/go-strel/pkg/util/collection/iter"
)

// TimeInterval is a discrete interval bounding a temporal operator.  An absent
// start bound reads as zero, whilst an absent end bound means the interval is
// unbounded above.  Time intervals are immutable, comparable values: two
// intervals with identical bounds are equal under ==.
type TimeInterval struct {
	// Start bound (inclusive), with empty meaning zero.
	Start util.Option[uint]
	// End bound (inclusive), with empty meaning unbounded.
	End util.Option[uint]
}

// NewTimeInterval constructs a validated time interval from two optional
// bounds.  Point intervals [a,a] and reversed intervals [a,b] with a > b are
// rejected; negative bounds are unrepresentable and rejected by the parser
// before this constructor is ever reached.
func NewTimeInterval(start util.Option[uint], end util.Option[uint]) (TimeInterval, error) {
	if start.HasValue() && end.HasValue() {
		t1, t2 := start.Unwrap(), end.Unwrap()
		//
		switch {
		case t1 == t2:
			return TimeInterval{}, valueErrorf("time interval cannot be point value [%d,%d]", t1, t2)
		case t1 > t2:
			return TimeInterval{}, valueErrorf("time interval [%d,%d] cannot have start > end", t1, t2)
		}
	}
	//
	return TimeInterval{start, end}, nil
}

// IsUnbounded checks whether this interval has no (finite) end bound.
func (p TimeInterval) IsUnbounded() bool {
	return p.End.IsEmpty()
}

// IsUntimed checks whether this interval covers all instants, i.e. is
// equivalent to [0, inf).
func (p TimeInterval) IsUntimed() bool {
	return p.Start.UnwrapOr(0) == 0 && p.End.IsEmpty()
}

// Instants returns a lazy enumeration of the discrete instants covered by this
// interval.  When the interval is unbounded this enumeration never terminates;
// callers should then take a bounded prefix via iter.Take rather than drain
// it.  Each call yields a fresh enumerator, hence enumeration is restartable.
func (p TimeInterval) Instants() iter.Enumerator[uint] {
	return &instantEnumerator{p.Start.UnwrapOr(0), p.End}
}

func (p TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s]", formatTimeBound(p.Start), formatTimeBound(p.End))
}

// instantEnumerator enumerates the instants of a time interval, counting
// forever when the end bound is absent.
type instantEnumerator struct {
	next uint
	end  util.Option[uint]
}

// HasNext checks whether or not there are any instants remaining to visit.
func (p *instantEnumerator) HasNext() bool {
	return p.end.IsEmpty() || p.next <= p.end.Unwrap()
}

// Next returns the next instant, and advances the enumerator.
func (p *instantEnumerator) Next() uint {
	next := p.next
	p.next++
	//
	return next
}

// DistanceInterval is a real-valued interval bounding a spatial operator.  A
// missing start bound defaults to zero and a missing end bound to positive
// infinity; unlike time intervals, the defaulted bounds are retained in the
// value (and its rendering) rather than collapsed.
type DistanceInterval struct {
	// Start bound (inclusive).
	Start float64
	// End bound (inclusive), possibly infinite.
	End float64
}

// NewDistanceInterval constructs a validated distance interval from two
// optional bounds, defaulting an absent start to 0.0 and an absent end to
// +inf.  Negative bounds are rejected, as are degenerate intervals where
// start >= end.
func NewDistanceInterval(start util.Option[float64], end util.Option[float64]) (DistanceInterval, error) {
	var (
		d1 = start.UnwrapOr(0.0)
		d2 = end.UnwrapOr(math.Inf(1))
	)
	//
	switch {
	case d1 < 0 || d2 < 0:
		return DistanceInterval{}, valueErrorf("distance cannot be less than 0")
	case d1 >= d2:
		return DistanceInterval{}, valueErrorf(
			"distance interval cannot have start >= end (%s >= %s)", formatDistance(d1), formatDistance(d2))
	}
	//
	return DistanceInterval{d1, d2}, nil
}

func (p DistanceInterval) String() string {
	start := ""
	// A zero start renders empty, matching the time interval convention.
	if p.Start != 0 {
		start = formatDistance(p.Start)
	}
	//
	return fmt.Sprintf("[%s, %s]", start, formatDistance(p.End))
}

// Render an optional time bound, where both an absent bound and a zero bound
// render empty.
func formatTimeBound(bound util.Option[uint]) string {
	if bound.IsEmpty() || bound.Unwrap() == 0 {
		return ""
	}
	//
	return strconv.FormatUint(uint64(bound.Unwrap()), 10)
}

// Render a distance bound, using "inf" for an infinite bound.
func formatDistance(bound float64) string {
	if math.IsInf(bound, 1) {
		return "inf"
	}
	//
	return strconv.FormatFloat(bound, 'g', -1, 64)
}
