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
	"github.com/consensys/go-strel/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// LBRACKET signals "left square bracket", which opens an interval
const LBRACKET uint = 4

// RBRACKET signals "right square bracket", which closes an interval
const RBRACKET uint = 5

// COMMA signals the separator between interval bounds
const COMMA uint = 6

// NOT signals logical negation
const NOT uint = 7

// AND signals logical conjunction
const AND uint = 8

// OR signals logical disjunction
const OR uint = 9

// NUMBER signals a numeric literal.  Observe that this deliberately
// over-approximates: the scanner accepts any run of digits and dots, with
// malformed literals (e.g. "1.2.3", or a decimal where an integer is
// required) rejected during parsing rather than lexing.
const NUMBER uint = 10

// STRING signals a quoted identifier
const STRING uint = 11

// IDENTIFIER signals a bare word: either an atomic proposition, or one of the
// operator keywords (true, false, X, G, F, U, everywhere, somewhere, escape,
// reach), which the parser distinguishes by spelling.
const IDENTIFIER uint = 12

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\n'),
	lex.Unit('\r')))

// Rule for describing numbers.  Dots are folded in so that decimal distance
// bounds lex as a single token.
var number lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Within('0', '9'),
	lex.Unit('.')))

// Rule for describing quoted identifiers.  The first alternative covers the
// empty string "" (which lexes fine, and is then rejected by identifier
// validation); Until cannot match an empty body.
var quoted lex.Scanner[rune] = lex.Or(
	lex.Unit('"', '"'),
	lex.Sequence(lex.Unit('"'), lex.Until('"'), lex.Unit('"')))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('!'), NOT),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(quoted, STRING),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}
