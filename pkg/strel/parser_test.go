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
	"testing"

	"github.com/consensys/go-strel/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Valid formulae
// ============================================================================

func Test_Parser_01(t *testing.T) {
	checkParse(t, True, "true")
	checkParse(t, False, "false")
	checkParse(t, Identifier{"p"}, "p")
	checkParse(t, Identifier{"p1"}, "p1")
}

func Test_Parser_02(t *testing.T) {
	// Quoted identifiers admit otherwise unlexable names
	checkParse(t, Identifier{"a b"}, "\"a b\"")
	checkParse(t, Identifier{"a_b"}, "\"a_b\"")
}

func Test_Parser_03(t *testing.T) {
	var (
		a = Identifier{"a"}
		b = Identifier{"b"}
		c = Identifier{"c"}
	)
	// Conjunction binds tighter than disjunction
	checkParse(t, OrOp{a, AndOp{b, c}}, "a | b & c")
	checkParse(t, OrOp{AndOp{a, b}, c}, "a & b | c")
	// Brackets override precedence
	checkParse(t, AndOp{a, OrOp{b, c}}, "a & (b | c)")
}

func Test_Parser_04(t *testing.T) {
	var (
		a = Identifier{"a"}
		b = Identifier{"b"}
	)
	//
	checkParse(t, NotOp{a}, "! a")
	// The parser never folds double negation
	checkParse(t, NotOp{NotOp{a}}, "! ! a")
	// Negation binds tighter than conjunction
	checkParse(t, AndOp{NotOp{a}, b}, "! a & b")
}

func Test_Parser_05(t *testing.T) {
	var p = Identifier{"p"}
	//
	checkParse(t, Next(p), "X p")
	checkParse(t, Next(p), "X[1] p")
	checkParse(t, NextOp{util.Some(uint(3)), p}, "X[3] p")
	// Next chains through unary parsing
	checkParse(t, Next(Next(p)), "X X p")
}

func Test_Parser_06(t *testing.T) {
	var (
		p      = Identifier{"p"}
		window = util.Some(TimeInterval{util.Some(uint(1)), util.Some(uint(5))})
	)
	//
	checkParse(t, GloballyOp{util.None[TimeInterval](), p}, "G p")
	checkParse(t, GloballyOp{window, p}, "G[1, 5] p")
	checkParse(t, EventuallyOp{util.None[TimeInterval](), p}, "F p")
	checkParse(t, EventuallyOp{window, p}, "F[1,5] p")
	// An untimed interval collapses to the absent marker
	checkParse(t, GloballyOp{util.None[TimeInterval](), p}, "G[0, ] p")
	checkParse(t, GloballyOp{util.None[TimeInterval](), p}, "G[, ] p")
}

func Test_Parser_07(t *testing.T) {
	var (
		a      = Identifier{"a"}
		b      = Identifier{"b"}
		c      = Identifier{"c"}
		window = util.Some(TimeInterval{util.Some(uint(1)), util.Some(uint(5))})
	)
	//
	checkParse(t, UntilOp{a, util.None[TimeInterval](), b}, "a U b")
	checkParse(t, UntilOp{a, window, b}, "a U[1, 5] b")
	// Until associates to the right
	checkParse(t, UntilOp{a, util.None[TimeInterval](), UntilOp{b, util.None[TimeInterval](), c}}, "a U b U c")
	// Until binds tighter than conjunction
	checkParse(t, AndOp{a, UntilOp{b, util.None[TimeInterval](), c}}, "a & b U c")
}

func Test_Parser_08(t *testing.T) {
	var (
		p            = Identifier{"p"}
		q            = Identifier{"q"}
		interval, _  = NewDistanceInterval(util.Some(0.5), util.Some(2.0))
		unbounded, _ = NewDistanceInterval(util.None[float64](), util.None[float64]())
	)
	//
	checkParse(t, EverywhereOp{interval, p}, "everywhere[0.5, 2.0] p")
	checkParse(t, SomewhereOp{interval, p}, "somewhere[0.5, 2.0] p")
	checkParse(t, EscapeOp{interval, p}, "escape[0.5, 2.0] p")
	checkParse(t, ReachOp{p, interval, q}, "p reach[0.5, 2.0] q")
	// Omitted interval and omitted bounds take the defaults
	checkParse(t, SomewhereOp{unbounded, p}, "somewhere p")
	checkParse(t, SomewhereOp{unbounded, p}, "somewhere[, ] p")
}

func Test_Parser_09(t *testing.T) {
	var (
		a = Identifier{"a"}
		b = Identifier{"b"}
	)
	// Whitespace is insignificant
	checkParse(t, AndOp{a, b}, "a&b")
	checkParse(t, AndOp{a, b}, "  a \t &\n b  ")
}

// ============================================================================
// Invalid formulae
// ============================================================================

func Test_Parser_10(t *testing.T) {
	// Lexical errors
	checkParseFails(t, "a @ b")
	checkParseFails(t, "a # b")
}

func Test_Parser_11(t *testing.T) {
	// Grammatical errors
	checkParseFails(t, "")
	checkParseFails(t, "a b")
	checkParseFails(t, "a &")
	checkParseFails(t, "& a")
	checkParseFails(t, "(a | b")
	checkParseFails(t, "U p")
	checkParseFails(t, "reach p")
	checkParseFails(t, "G[1 2] p")
	checkParseFails(t, "G[1, 2 p")
}

func Test_Parser_12(t *testing.T) {
	// Validation errors surface as syntax errors
	checkParseFails(t, "F[2, 2] p")
	checkParseFails(t, "F[5, 2] p")
	checkParseFails(t, "X[0] p")
	checkParseFails(t, "somewhere[2.0, 2.0] p")
	checkParseFails(t, "somewhere[3.0, 1.0] p")
	checkParseFails(t, "\"\"")
	checkParseFails(t, "\"  \"")
	// Integer bounds admit no fractional part
	checkParseFails(t, "F[1.5, 2] p")
	// Negative bounds have no surface syntax at all
	checkParseFails(t, "F[-1, 2] p")
	checkParseFails(t, "somewhere[-1.0, 2.0] p")
}

// ============================================================================
// Standalone intervals
// ============================================================================

func Test_Parser_13(t *testing.T) {
	checkParseInterval(t, TimeInterval{util.Some(uint(2)), util.Some(uint(10))}, "[2, 10]")
	checkParseInterval(t, TimeInterval{util.Some(uint(1)), util.None[uint]()}, "[1,]")
	checkParseInterval(t, TimeInterval{util.None[uint](), util.Some(uint(5))}, "[, 5]")
}

func Test_Parser_14(t *testing.T) {
	_, errs := ParseTimeInterval("p")
	assert.NotEmpty(t, errs)
	//
	_, errs = ParseTimeInterval("[5, 2]")
	assert.NotEmpty(t, errs)
	//
	_, errs = ParseTimeInterval("[2, 10] p")
	assert.NotEmpty(t, errs)
}

// ============================================================================
// Helpers
// ============================================================================

func checkParse(t *testing.T, expected Expr, input string) {
	actual, errs := Parse(input)
	require.Empty(t, errs, "unexpected errors parsing %q", input)
	assert.Equal(t, expected, actual, "parsing %q", input)
}

func checkParseFails(t *testing.T, input string) {
	_, errs := Parse(input)
	assert.NotEmpty(t, errs, "expected errors parsing %q", input)
}

func checkParseInterval(t *testing.T, expected TimeInterval, input string) {
	actual, errs := ParseTimeInterval(input)
	require.Empty(t, errs, "unexpected errors parsing %q", input)
	assert.Equal(t, expected, actual, "parsing %q", input)
}
