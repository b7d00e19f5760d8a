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
	"github.com/consensys/go-strel/pkg/util"
)

// ExpandIntervals rewrites a formula into its canonical interval-free form:
// one containing no Globally operator and no bounded Eventually or Until
// operator, using only unbounded temporal operators, disjunction, negation and
// single-step Next shifts.  Bounded operators are compiled away by unrolling
// their windows; hence, the output can be exponentially larger than the input
// when bounded operators are nested.  That blow-up is inherent to the
// translation, not a defect.  Spatial operators and their distance intervals
// are left untouched, though their children are still rewritten.  This is
// equivalent to invoking the ExpandIntervals method on the formula itself.
func ExpandIntervals(e Expr) Expr {
	return e.ExpandIntervals()
}

// ExpandIntervals returns the constant unchanged.
func (e Constant) ExpandIntervals() Expr {
	return e
}

// ExpandIntervals returns the identifier unchanged.
func (e Identifier) ExpandIntervals() Expr {
	return e
}

// ExpandIntervals rewrites the negated formula and collapses one layer of
// negation when the rewritten child is itself a negation.  Observe this is a
// targeted simplification which cancels negations introduced by the Globally
// duality rule below; it is not general double-negation elimination (a literal
// !!p rewrites to !p, not p).
func (e NotOp) ExpandIntervals() Expr {
	arg := e.Arg.ExpandIntervals()
	//
	if _, ok := arg.(NotOp); ok {
		return arg
	}
	//
	return NotOp{arg}
}

// ExpandIntervals rewrites both conjuncts.
func (e AndOp) ExpandIntervals() Expr {
	return AndOp{e.Lhs.ExpandIntervals(), e.Rhs.ExpandIntervals()}
}

// ExpandIntervals rewrites both disjuncts.
func (e OrOp) ExpandIntervals() Expr {
	return OrOp{e.Lhs.ExpandIntervals(), e.Rhs.ExpandIntervals()}
}

// ExpandIntervals rewrites the child, leaving the distance interval untouched.
func (e EverywhereOp) ExpandIntervals() Expr {
	return EverywhereOp{e.Interval, e.Arg.ExpandIntervals()}
}

// ExpandIntervals rewrites the child, leaving the distance interval untouched.
func (e SomewhereOp) ExpandIntervals() Expr {
	return SomewhereOp{e.Interval, e.Arg.ExpandIntervals()}
}

// ExpandIntervals rewrites the child, leaving the distance interval untouched.
func (e EscapeOp) ExpandIntervals() Expr {
	return EscapeOp{e.Interval, e.Arg.ExpandIntervals()}
}

// ExpandIntervals rewrites both children, leaving the distance interval
// untouched.
func (e ReachOp) ExpandIntervals() Expr {
	return ReachOp{e.Lhs.ExpandIntervals(), e.Interval, e.Rhs.ExpandIntervals()}
}

// ExpandIntervals unrolls a multi-step shift X[t] into t nested single-step
// shifts over the rewritten child.
func (e NextOp) ExpandIntervals() Expr {
	arg := e.Arg.ExpandIntervals()
	//
	if e.Steps.IsEmpty() {
		return NextOp{util.None[uint](), arg}
	}
	//
	expr := arg
	for i := uint(0); i < e.Steps.Unwrap(); i++ {
		expr = Next(expr)
	}
	//
	return expr
}

// ExpandIntervals rewrites globally through its dual, G[a,b] p == !F[a,b] !p,
// and then expands the resulting eventually.  Globally never unrolls directly.
func (e GloballyOp) ExpandIntervals() Expr {
	return NotOp{EventuallyOp{e.Interval, NotOp{e.Arg}}}.ExpandIntervals()
}

// ExpandIntervals eliminates a bounded eventually.  An upper-bounded window
// starting at zero unrolls into the disjunction a | X a | X X a | ... | X^t2 a
// (left-associated); a window starting at t1 > 0 first shifts by t1 nested
// single-step nexts and then recurses on the remaining window.
func (e EventuallyOp) ExpandIntervals() Expr {
	// Both the canonical absent marker and a literal untimed interval denote
	// unbounded eventually.
	if e.Interval.IsEmpty() || e.Interval.Unwrap().IsUntimed() {
		return EventuallyOp{util.None[TimeInterval](), e.Arg.ExpandIntervals()}
	}
	//
	var (
		interval = e.Interval.Unwrap()
		t1       = interval.Start.UnwrapOr(0)
	)
	//
	switch {
	case t1 == 0:
		// F[0,t2]: the end bound must be present, else the interval was
		// untimed and handled above.
		var (
			t2   = interval.End.Unwrap()
			arg  = e.Arg.ExpandIntervals()
			expr = arg
			next = arg
		)
		//
		for i := uint(0); i < t2; i++ {
			next = Next(next)
			expr = OrOp{expr, next}
		}
		//
		return expr
	case interval.End.IsEmpty():
		// F[t1,inf): shift by t1, then unbounded eventually.
		return NextOp{stepCount(t1), EventuallyOp{util.None[TimeInterval](), e.Arg}}.ExpandIntervals()
	default:
		// F[t1,t2]: shift by t1, then recurse over the remaining window.  The
		// window [0, t2-t1] is non-degenerate since t1 < t2 by the interval
		// invariant.
		window := TimeInterval{util.Some(uint(0)), util.Some(interval.End.Unwrap() - t1)}
		return NextOp{stepCount(t1), EventuallyOp{util.Some(window), e.Arg}}.ExpandIntervals()
	}
}

// ExpandIntervals eliminates a bounded until.  An until bounded below only
// rewrites through globally, L U[t1,inf) R == G[0,t1] (L U R); an until
// bounded above splits into an eventually over the window conjoined with an
// until bounded below only.
func (e UntilOp) ExpandIntervals() Expr {
	var (
		lhs = e.Lhs.ExpandIntervals()
		rhs = e.Rhs.ExpandIntervals()
	)
	//
	if e.Interval.IsEmpty() || e.Interval.Unwrap().IsUntimed() {
		return UntilOp{lhs, util.None[TimeInterval](), rhs}
	}
	//
	interval := e.Interval.Unwrap()
	//
	if interval.End.IsEmpty() {
		// L U[t1,inf) R: here t1 >= 1, since [0,inf) was handled above.  The
		// window [0,t1] is therefore never a point interval.
		var (
			window = TimeInterval{util.Some(uint(0)), interval.Start}
			until  = UntilOp{lhs, util.None[TimeInterval](), rhs}
		)
		//
		return GloballyOp{util.Some(window), until}.ExpandIntervals()
	}
	// L U[t1,t2] R: the left operand must eventually hold within the window,
	// and an until bounded from t1 must hold.
	var (
		z1 = EventuallyOp{e.Interval, e.Lhs}.ExpandIntervals()
		z2 = NewUntilOp(lhs, util.Some(TimeInterval{interval.Start, util.None[uint]()}), rhs).ExpandIntervals()
	)
	//
	return AndOp{z1, z2}
}

// Canonicalise a shift count, collapsing a single step to the canonical
// marker.  The count is always positive where this is used.
func stepCount(t uint) util.Option[uint] {
	if t == 1 {
		return util.None[uint]()
	}
	//
	return util.Some(t)
}
