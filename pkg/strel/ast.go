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
	"strings"
	"unicode"

	"github.com/consensys/go-strel/pkg/util"
)

// Expr represents an arbitrary formula of Spatio-Temporal Reach and Escape
// Logic (STREL).  Formulae are closed, immutable trees: every variant is a
// comparable value struct whose children are themselves Expr values.  Hence,
// == gives structural equality and any Expr can be used directly as a map
// key, independent of how it was originally built.
type Expr interface {
	// ExpandIntervals rewrites this formula into a semantically equivalent
	// canonical form containing no Globally operator, and no Eventually or
	// Until operator carrying a bounded interval.  The result is a fresh tree;
	// the receiver is never modified.
	ExpandIntervals() Expr
	// String returns the canonical rendering of this formula.  This is
	// intended for display and debugging, and is not guaranteed to re-parse
	// into an identical tree.
	String() string
}

// True is the constant true formula.
var True = Constant{true}

// False is the constant false formula.
var False = Constant{false}

// Not returns the logical negation of a formula, folding away an immediately
// nested negation, i.e. Not(NotOp{p}) yields p directly.  This single-level
// fold is a convenience of the builder only: it is not general double-negation
// elimination, and callers wanting a literal double negation should construct
// the NotOp variant directly.
func Not(arg Expr) Expr {
	if n, ok := arg.(NotOp); ok {
		return n.Arg
	}
	//
	return NotOp{arg}
}

// And returns the conjunction of two formulae.  No simplification is applied.
func And(lhs Expr, rhs Expr) AndOp {
	return AndOp{lhs, rhs}
}

// Or returns the disjunction of two formulae.  No simplification is applied.
func Or(lhs Expr, rhs Expr) OrOp {
	return OrOp{lhs, rhs}
}

// ============================================================================
// Constant
// ============================================================================

// Constant is a literal truth value.
type Constant struct {
	Value bool
}

func (e Constant) String() string {
	if e.Value {
		return "true"
	}
	//
	return "false"
}

// ============================================================================
// Identifier
// ============================================================================

// Identifier is a reference to an atomic proposition.  Its name must be
// non-empty and contain at least one non-whitespace character.
type Identifier struct {
	Name string
}

// NewIdentifier constructs a validated identifier.
func NewIdentifier(name string) (Identifier, error) {
	if len(name) == 0 {
		return Identifier{}, valueErrorf("identifier cannot be empty")
	} else if strings.TrimSpace(name) == "" {
		return Identifier{}, valueErrorf("identifier cannot be only whitespace")
	}
	//
	return Identifier{name}, nil
}

func (e Identifier) String() string {
	if isAlphaNumeric(e.Name) {
		return e.Name
	}
	// Anything else renders quoted.
	return fmt.Sprintf("%q", e.Name)
}

// ============================================================================
// Not
// ============================================================================

// NotOp is the negation of a formula.
type NotOp struct {
	Arg Expr
}

func (e NotOp) String() string {
	return fmt.Sprintf("! %s", e.Arg)
}

// ============================================================================
// And / Or
// ============================================================================

// AndOp is the conjunction of two formulae.
type AndOp struct {
	Lhs Expr
	Rhs Expr
}

func (e AndOp) String() string {
	return fmt.Sprintf("(%s & %s)", e.Lhs, e.Rhs)
}

// OrOp is the disjunction of two formulae.
type OrOp struct {
	Lhs Expr
	Rhs Expr
}

func (e OrOp) String() string {
	return fmt.Sprintf("(%s | %s)", e.Lhs, e.Rhs)
}

// ============================================================================
// Spatial operators
// ============================================================================

// EverywhereOp requires its argument to hold at every location within the
// given distance interval.
type EverywhereOp struct {
	Interval DistanceInterval
	Arg      Expr
}

func (e EverywhereOp) String() string {
	return fmt.Sprintf("(everywhere%s %s)", e.Interval, e.Arg)
}

// SomewhereOp requires its argument to hold at some location within the given
// distance interval.
type SomewhereOp struct {
	Interval DistanceInterval
	Arg      Expr
}

func (e SomewhereOp) String() string {
	return fmt.Sprintf("(somewhere%s %s)", e.Interval, e.Arg)
}

// EscapeOp requires the existence of a route along which its argument holds,
// ending at a location whose distance from the start lies within the given
// interval.
type EscapeOp struct {
	Interval DistanceInterval
	Arg      Expr
}

func (e EscapeOp) String() string {
	return fmt.Sprintf("(escape%s %s)", e.Interval, e.Arg)
}

// ReachOp requires the existence of a route along which the left formula
// holds, ending within the given distance interval at a location where the
// right formula holds.
type ReachOp struct {
	Lhs      Expr
	Interval DistanceInterval
	Rhs      Expr
}

func (e ReachOp) String() string {
	return fmt.Sprintf("(%s reach%s %s)", e.Lhs, e.Interval, e.Rhs)
}

// ============================================================================
// Next
// ============================================================================

// NextOp shifts its argument a given number of discrete steps into the future.
// An absent step count is the canonical marker for a single step; a step count
// of one is collapsed to that marker at construction.
type NextOp struct {
	Steps util.Option[uint]
	Arg   Expr
}

// Next constructs a single-step next operator.
func Next(arg Expr) NextOp {
	return NextOp{util.None[uint](), arg}
}

// NewNextOp constructs a validated next operator over a given number of steps.
// A step count of zero is rejected, whilst a step count of one is stored as
// the canonical single-step marker.
func NewNextOp(steps uint, arg Expr) (NextOp, error) {
	switch steps {
	case 0:
		return NextOp{}, valueErrorf("next operator cannot have non-positive steps")
	case 1:
		return Next(arg), nil
	}
	//
	return NextOp{util.Some(steps), arg}, nil
}

func (e NextOp) String() string {
	if e.Steps.IsEmpty() {
		return fmt.Sprintf("(X %s)", e.Arg)
	}
	//
	return fmt.Sprintf("(X[%d] %s)", e.Steps.Unwrap(), e.Arg)
}

// ============================================================================
// Globally / Eventually / Until
// ============================================================================

// GloballyOp requires its argument to hold at every instant within the given
// time interval, or at every future instant when the interval is absent.
type GloballyOp struct {
	Interval util.Option[TimeInterval]
	Arg      Expr
}

// NewGloballyOp constructs a globally operator, collapsing an untimed interval
// to the canonical absent marker.
func NewGloballyOp(interval util.Option[TimeInterval], arg Expr) GloballyOp {
	return GloballyOp{collapseUntimed(interval), arg}
}

func (e GloballyOp) String() string {
	return fmt.Sprintf("(G%s %s)", formatTemporal(e.Interval), e.Arg)
}

// EventuallyOp requires its argument to hold at some instant within the given
// time interval, or at some future instant when the interval is absent.
type EventuallyOp struct {
	Interval util.Option[TimeInterval]
	Arg      Expr
}

// NewEventuallyOp constructs an eventually operator, collapsing an untimed
// interval to the canonical absent marker.
func NewEventuallyOp(interval util.Option[TimeInterval], arg Expr) EventuallyOp {
	return EventuallyOp{collapseUntimed(interval), arg}
}

func (e EventuallyOp) String() string {
	return fmt.Sprintf("(F%s %s)", formatTemporal(e.Interval), e.Arg)
}

// UntilOp requires its right formula to hold at some instant within the given
// time interval, with its left formula holding at every instant before that.
type UntilOp struct {
	Lhs      Expr
	Interval util.Option[TimeInterval]
	Rhs      Expr
}

// NewUntilOp constructs an until operator, collapsing an untimed interval to
// the canonical absent marker.
func NewUntilOp(lhs Expr, interval util.Option[TimeInterval], rhs Expr) UntilOp {
	return UntilOp{lhs, collapseUntimed(interval), rhs}
}

func (e UntilOp) String() string {
	return fmt.Sprintf("(%s U%s %s)", e.Lhs, formatTemporal(e.Interval), e.Rhs)
}

// ============================================================================
// Helpers
// ============================================================================

// Size returns the number of nodes in a formula, which is useful for observing
// the blow-up caused by interval expansion.
func Size(e Expr) uint {
	switch e := e.(type) {
	case Constant, Identifier:
		return 1
	case NotOp:
		return 1 + Size(e.Arg)
	case AndOp:
		return 1 + Size(e.Lhs) + Size(e.Rhs)
	case OrOp:
		return 1 + Size(e.Lhs) + Size(e.Rhs)
	case EverywhereOp:
		return 1 + Size(e.Arg)
	case SomewhereOp:
		return 1 + Size(e.Arg)
	case EscapeOp:
		return 1 + Size(e.Arg)
	case ReachOp:
		return 1 + Size(e.Lhs) + Size(e.Rhs)
	case NextOp:
		return 1 + Size(e.Arg)
	case GloballyOp:
		return 1 + Size(e.Arg)
	case EventuallyOp:
		return 1 + Size(e.Arg)
	case UntilOp:
		return 1 + Size(e.Lhs) + Size(e.Rhs)
	}
	//
	panic("unknown formula encountered")
}

// Collapse an interval equivalent to [0, inf) into the canonical absent
// marker for an unbounded temporal operator.
func collapseUntimed(interval util.Option[TimeInterval]) util.Option[TimeInterval] {
	if interval.HasValue() && interval.Unwrap().IsUntimed() {
		return util.None[TimeInterval]()
	}
	//
	return interval
}

// Render an optional temporal interval, with the absent marker rendering
// empty.
func formatTemporal(interval util.Option[TimeInterval]) string {
	if interval.IsEmpty() {
		return ""
	}
	//
	return interval.Unwrap().String()
}

// Check whether a name consists solely of letters and digits, in which case it
// renders unquoted.
func isAlphaNumeric(name string) bool {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	//
	return len(name) > 0
}
