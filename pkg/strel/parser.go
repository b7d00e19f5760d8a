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
	"slices"
	"strconv"

	"github.com/consensys/go-strel/pkg/util"
	"github.com/consensys/go-strel/pkg/util/source"
	"github.com/consensys/go-strel/pkg/util/source/lex"
)

// Parse a given input string into a STREL formula.  Interval and identifier
// validation happens through the same constructors as direct construction;
// both grammar violations and validation failures are reported as syntax
// errors carrying the offending span of the input.
func Parse(input string) (Expr, []source.SyntaxError) {
	parser, errs := newParser(input)
	//
	if len(errs) != 0 {
		return nil, errs
	}
	// Parse formula
	expr, errs := parser.parseFormula()
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unknown token")
	}
	//
	return expr, errs
}

// MustParse is as Parse, but panics on any error.  This is useful for tests
// and static formulae.
func MustParse(input string) Expr {
	expr, errs := Parse(input)
	//
	if len(errs) != 0 {
		panic(errs[0].Error())
	}
	//
	return expr
}

// ParseTimeInterval parses a standalone time interval, such as "[2,10]" or
// "[1,]".
func ParseTimeInterval(input string) (TimeInterval, []source.SyntaxError) {
	var empty TimeInterval
	//
	parser, errs := newParser(input)
	//
	if len(errs) != 0 {
		return empty, errs
	} else if !parser.follows(LBRACKET) {
		return empty, parser.syntaxErrors(parser.lookahead(), "expected '['")
	}
	// Parse interval
	interval, errs := parser.parseOptionalTimeInterval()
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return empty, parser.syntaxErrors(parser.lookahead(), "unknown token")
	} else if len(errs) != 0 {
		return empty, errs
	}
	//
	return interval.Unwrap(), nil
}

// Parser reduces a token stream into a formula via recursive descent, with
// precedence (loosest first): disjunction, conjunction, the binary operators
// until and reach, prefix unary operators, atoms.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Construct a parser over a given input string, tokenising it in full.
func newParser(input string) (*Parser, []source.SyntaxError) {
	var (
		srcfile = source.NewSourceFile("formula", []byte(input))
		lexer   = lex.NewLexer[rune](srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	return &Parser{srcfile, tokens, 0}, nil
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseFormula() (Expr, []source.SyntaxError) {
	return p.parseDisjunction()
}

func (p *Parser) parseDisjunction() (Expr, []source.SyntaxError) {
	term, errs := p.parseConjunction()
	//
	for len(errs) == 0 && p.follows(OR) {
		var rhs Expr
		// Consume connective
		p.expect(OR)
		//
		rhs, errs = p.parseConjunction()
		//
		if len(errs) == 0 {
			term = OrOp{term, rhs}
		}
	}
	//
	return term, errs
}

func (p *Parser) parseConjunction() (Expr, []source.SyntaxError) {
	term, errs := p.parseBinary()
	//
	for len(errs) == 0 && p.follows(AND) {
		var rhs Expr
		// Consume connective
		p.expect(AND)
		//
		rhs, errs = p.parseBinary()
		//
		if len(errs) == 0 {
			term = AndOp{term, rhs}
		}
	}
	//
	return term, errs
}

// Parse the binary infix operators until and reach, both of which associate to
// the right.
func (p *Parser) parseBinary() (Expr, []source.SyntaxError) {
	lhs, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return lhs, errs
	}
	//
	switch {
	case p.followsKeyword("U"):
		p.expect(IDENTIFIER)
		// Parse (optional) interval
		interval, errs := p.parseOptionalTimeInterval()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		// Parse rhs
		rhs, errs := p.parseBinary()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return NewUntilOp(lhs, interval, rhs), nil
	case p.followsKeyword("reach"):
		p.expect(IDENTIFIER)
		// Parse (optional) interval
		interval, errs := p.parseOptionalDistanceInterval()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		// Parse rhs
		rhs, errs := p.parseBinary()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return ReachOp{lhs, interval, rhs}, nil
	}
	//
	return lhs, nil
}

func (p *Parser) parseUnary() (Expr, []source.SyntaxError) {
	token := p.lookahead()
	//
	if token.Kind == IDENTIFIER {
		switch p.string(token) {
		case "true":
			p.expect(IDENTIFIER)
			return True, nil
		case "false":
			p.expect(IDENTIFIER)
			return False, nil
		case "X":
			return p.parseNext()
		case "G":
			return p.parseGlobally()
		case "F":
			return p.parseEventually()
		case "everywhere", "somewhere", "escape":
			return p.parseSpatialUnary()
		case "U", "reach":
			// Infix operator where an operand was expected.
			return nil, p.syntaxErrors(token, "unknown expression")
		default:
			p.expect(IDENTIFIER)
			// Bare identifiers are never empty or blank, hence this cannot
			// fail validation.
			return Identifier{p.string(token)}, nil
		}
	}
	//
	switch token.Kind {
	case NOT:
		p.expect(NOT)
		// The parser always builds literal negations; folding of double
		// negation is a convenience of the Not builder only.
		arg, errs := p.parseUnary()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return NotOp{arg}, nil
	case STRING:
		return p.parseQuotedIdentifier()
	case LBRACE:
		return p.parseBracketedFormula()
	}
	//
	return nil, p.syntaxErrors(token, "unknown expression")
}

func (p *Parser) parseNext() (Expr, []source.SyntaxError) {
	p.expect(IDENTIFIER)
	// Check for step count
	if !p.follows(LBRACKET) {
		arg, errs := p.parseUnary()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return Next(arg), nil
	}
	//
	p.expect(LBRACKET)
	//
	if !p.follows(NUMBER) {
		return nil, p.syntaxErrors(p.lookahead(), "expected step count")
	}
	//
	token := p.expect(NUMBER)
	//
	steps, errs := p.parseIntegerBound(token)
	//
	if len(errs) == 0 && !p.match(RBRACKET) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ']'")
	} else if len(errs) != 0 {
		return nil, errs
	}
	//
	arg, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	// Validate the step count (e.g. X[0] is rejected)
	next, err := NewNextOp(steps, arg)
	//
	if err != nil {
		return nil, p.syntaxErrors(token, err.Error())
	}
	//
	return next, nil
}

func (p *Parser) parseGlobally() (Expr, []source.SyntaxError) {
	p.expect(IDENTIFIER)
	//
	interval, errs := p.parseOptionalTimeInterval()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	arg, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return NewGloballyOp(interval, arg), nil
}

func (p *Parser) parseEventually() (Expr, []source.SyntaxError) {
	p.expect(IDENTIFIER)
	//
	interval, errs := p.parseOptionalTimeInterval()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	arg, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return NewEventuallyOp(interval, arg), nil
}

func (p *Parser) parseSpatialUnary() (Expr, []source.SyntaxError) {
	name := p.expect(IDENTIFIER)
	//
	interval, errs := p.parseOptionalDistanceInterval()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	arg, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	switch p.string(name) {
	case "everywhere":
		return EverywhereOp{interval, arg}, nil
	case "somewhere":
		return SomewhereOp{interval, arg}, nil
	case "escape":
		return EscapeOp{interval, arg}, nil
	}
	//
	panic("unreachable")
}

func (p *Parser) parseQuotedIdentifier() (Expr, []source.SyntaxError) {
	token := p.expect(STRING)
	// Strip the enclosing quotation marks
	text := p.string(token)
	text = text[1 : len(text)-1]
	// Validate (e.g. "" and "  " are rejected)
	id, err := NewIdentifier(text)
	//
	if err != nil {
		return nil, p.syntaxErrors(token, err.Error())
	}
	//
	return id, nil
}

func (p *Parser) parseBracketedFormula() (Expr, []source.SyntaxError) {
	p.expect(LBRACE)
	//
	term, errs := p.parseFormula()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return term, errs
}

// Parse an optional time interval "[a,b]" where either bound may be omitted.
// Absence of an opening bracket means the operator is unbounded.
func (p *Parser) parseOptionalTimeInterval() (util.Option[TimeInterval], []source.SyntaxError) {
	var (
		none       = util.None[TimeInterval]()
		start, end = util.None[uint](), util.None[uint]()
	)
	//
	if !p.follows(LBRACKET) {
		return none, nil
	}
	//
	lbracket := p.expect(LBRACKET)
	// Parse (optional) start bound
	if p.follows(NUMBER) {
		bound, errs := p.parseIntegerBound(p.expect(NUMBER))
		//
		if len(errs) != 0 {
			return none, errs
		}
		//
		start = util.Some(bound)
	}
	//
	if !p.match(COMMA) {
		return none, p.syntaxErrors(p.lookahead(), "expected ','")
	}
	// Parse (optional) end bound
	if p.follows(NUMBER) {
		bound, errs := p.parseIntegerBound(p.expect(NUMBER))
		//
		if len(errs) != 0 {
			return none, errs
		}
		//
		end = util.Some(bound)
	}
	//
	if !p.follows(RBRACKET) {
		return none, p.syntaxErrors(p.lookahead(), "expected ']'")
	}
	//
	rbracket := p.expect(RBRACKET)
	// Validate bounds (e.g. point and reversed intervals are rejected)
	interval, err := NewTimeInterval(start, end)
	//
	if err != nil {
		span := lbracket.Span.Join(rbracket.Span)
		return none, []source.SyntaxError{*p.srcfile.SyntaxError(span, err.Error())}
	}
	//
	return util.Some(interval), nil
}

// Parse an optional distance interval "[a,b]" where either bound may be
// omitted.  Absence of an opening bracket means both bounds take their
// defaults (zero and infinity).
func (p *Parser) parseOptionalDistanceInterval() (DistanceInterval, []source.SyntaxError) {
	var (
		empty      DistanceInterval
		start, end = util.None[float64](), util.None[float64]()
	)
	//
	if !p.follows(LBRACKET) {
		// NewDistanceInterval cannot fail on defaulted bounds.
		interval, _ := NewDistanceInterval(start, end)
		return interval, nil
	}
	//
	lbracket := p.expect(LBRACKET)
	// Parse (optional) start bound
	if p.follows(NUMBER) {
		bound, errs := p.parseNumericBound(p.expect(NUMBER))
		//
		if len(errs) != 0 {
			return empty, errs
		}
		//
		start = util.Some(bound)
	}
	//
	if !p.match(COMMA) {
		return empty, p.syntaxErrors(p.lookahead(), "expected ','")
	}
	// Parse (optional) end bound
	if p.follows(NUMBER) {
		bound, errs := p.parseNumericBound(p.expect(NUMBER))
		//
		if len(errs) != 0 {
			return empty, errs
		}
		//
		end = util.Some(bound)
	}
	//
	if !p.follows(RBRACKET) {
		return empty, p.syntaxErrors(p.lookahead(), "expected ']'")
	}
	//
	rbracket := p.expect(RBRACKET)
	// Validate bounds (e.g. degenerate intervals are rejected)
	interval, err := NewDistanceInterval(start, end)
	//
	if err != nil {
		span := lbracket.Span.Join(rbracket.Span)
		return empty, []source.SyntaxError{*p.srcfile.SyntaxError(span, err.Error())}
	}
	//
	return interval, nil
}

// Parse a numeric token as a non-negative integer bound.
func (p *Parser) parseIntegerBound(token lex.Token) (uint, []source.SyntaxError) {
	bound, err := strconv.ParseUint(p.string(token), 10, 64)
	//
	if err != nil {
		return 0, p.syntaxErrors(token, "malformed integer bound")
	}
	//
	return uint(bound), nil
}

// Parse a numeric token as a non-negative real bound.
func (p *Parser) parseNumericBound(token lex.Token) (float64, []source.SyntaxError) {
	bound, err := strconv.ParseFloat(p.string(token), 64)
	//
	if err != nil {
		return 0, p.syntaxErrors(token, "malformed numeric bound")
	}
	//
	return bound, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// FollowsKeyword checks whether a given operator keyword is next.
func (p *Parser) followsKeyword(keyword string) bool {
	token := p.lookahead()
	return token.Kind == IDENTIFIER && p.string(token) == keyword
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
