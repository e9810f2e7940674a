// SPDX-License-Identifier: MIT
// Package: framefixtures/grammar
//
// parser.go — recursive-descent parser for fixture DSL strings.
//
//	expr  := unit ('|' unit)*
//	unit  := NAME '(' [arg (',' arg)* [',']] ')' | '(' expr ')'
//	arg   := NAME | INT | FLOAT | STRING | '(' ')' | '(' arg ')'
//	       | '(' NAME ',' [NAME (',' NAME)* [',']] ')'
//
// A parenthesized single argument without a comma is that argument; a
// trailing comma makes a one-element tuple. Tuple elements must be names.

package grammar

import (
	"slices"
	"strconv"
	"strings"
)

// Parse parses and validates dsl.
func Parse(dsl string) (*Components, error) {
	tokens, err := NewLexer(dsl).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{ts: tokenStream{tokens: tokens}, out: newComponents()}
	if p.ts.peek().Type == TokenEOF {
		return nil, syntaxErrorf("no tokens found")
	}
	if err := p.parseExpr(); err != nil {
		return nil, err
	}
	if tok := p.ts.peek(); tok.Type != TokenEOF {
		return nil, syntaxErrorf("unexpected %s at offset %d", tok, tok.Offset)
	}
	if err := validate(p.out); err != nil {
		return nil, err
	}
	return p.out, nil
}

type parser struct {
	ts  tokenStream
	out *Components
}

func (p *parser) parseExpr() error {
	for {
		if err := p.parseUnit(); err != nil {
			return err
		}
		if !p.ts.match(TokenPipe) {
			return nil
		}
	}
}

func (p *parser) parseUnit() error {
	if p.ts.match(TokenLParen) {
		if err := p.parseExpr(); err != nil {
			return err
		}
		_, err := p.ts.expect(TokenRParen)
		return err
	}
	name, err := p.ts.expect(TokenName)
	if err != nil {
		return err
	}
	if _, err := p.ts.expect(TokenLParen); err != nil {
		return err
	}
	var args []Arg
	for p.ts.peek().Type != TokenRParen {
		arg, err := p.parseArg()
		if err != nil {
			return err
		}
		args = append(args, arg)
		if !p.ts.match(TokenComma) {
			break
		}
	}
	if _, err := p.ts.expect(TokenRParen); err != nil {
		return err
	}

	c, ok := lookupComponent(name.Value)
	if !ok {
		return syntaxErrorf("invalid token: %s", name.Value)
	}
	if p.out.Has(c.letter) {
		return syntaxErrorf("duplicate component %s at offset %d", c.letter, name.Offset)
	}
	p.out.add(c.letter, args)
	return nil
}

func (p *parser) parseArg() (Arg, error) {
	tok := p.ts.advance()
	switch tok.Type {
	case TokenName:
		return Arg{Kind: ArgName, Name: tok.Value}, nil
	case TokenString:
		return Arg{Kind: ArgString, Name: tok.Value}, nil
	case TokenInt:
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return Arg{}, syntaxErrorf("integer %s out of range at offset %d", tok.Value, tok.Offset)
		}
		return Arg{Kind: ArgInt, Int: n}, nil
	case TokenFloat:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return Arg{}, syntaxErrorf("invalid float %s at offset %d", tok.Value, tok.Offset)
		}
		return Arg{Kind: ArgFloat, Float: f}, nil
	case TokenLParen:
		return p.parseGroup(tok)
	}
	return Arg{}, syntaxErrorf("no handling for %s at offset %d", tok, tok.Offset)
}

// parseGroup parses the rest of a parenthesized argument after '('.
func (p *parser) parseGroup(open Token) (Arg, error) {
	if p.ts.match(TokenRParen) {
		return Arg{Kind: ArgTuple}, nil
	}
	first, err := p.parseArg()
	if err != nil {
		return Arg{}, err
	}
	if p.ts.match(TokenRParen) {
		return first, nil
	}
	elems := []Arg{first}
	for p.ts.match(TokenComma) {
		if p.ts.peek().Type == TokenRParen {
			break
		}
		e, err := p.parseArg()
		if err != nil {
			return Arg{}, err
		}
		elems = append(elems, e)
	}
	if _, err := p.ts.expect(TokenRParen); err != nil {
		return Arg{}, err
	}
	names := make([]string, len(elems))
	for i, e := range elems {
		if e.Kind != ArgName {
			return Arg{}, syntaxErrorf("tuple at offset %d: element %s is not a name", open.Offset, e)
		}
		names[i] = e.Name
	}
	return Arg{Kind: ArgTuple, Names: names}, nil
}

// validate enforces presence and argument counts.
func validate(c *Components) error {
	if !c.Has(Shape) {
		return syntaxErrorf("missing required label: %s", Shape)
	}
	for _, l := range c.order {
		comp, _ := lookupComponent(l.String())
		n := len(c.args[l])
		if comp.counts != nil && !slices.Contains(comp.counts, n) {
			return syntaxErrorf("component %s has invalid number of arguments: %d not in %s", l, n, formatCounts(comp.counts))
		}
	}
	for i, a := range c.args[Shape] {
		if a.Kind != ArgInt || a.Int < 0 {
			return syntaxErrorf("component %s argument %d must be a non-negative integer, got %s", Shape, i, a)
		}
	}
	return nil
}

func formatCounts(counts []int) string {
	strs := make([]string, len(counts))
	for i, n := range counts {
		strs[i] = strconv.Itoa(n)
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
