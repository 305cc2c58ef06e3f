package parser

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

type Parser interface {
	Parse() ([]token.Token, error)
}

type parser struct {
	tokens []token.Token
	output []token.Token
	ops    []token.Token
}

func NewParser(tokens []token.Token) Parser {
	return &parser{tokens: tokens}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, output: %#v, ops: %#v}", p.tokens, p.output, p.ops)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, output: %d, ops: %d}", len(p.tokens), len(p.output), len(p.ops))
}

// Parse implements Parser. It reorders the infix token sequence into postfix
// with the shunting-yard algorithm.
func (p *parser) Parse() ([]token.Token, error) {
	for _, t := range p.tokens {
		switch t.Type {
		case token.NUMBER:
			p.emit(t)
		case token.OPERATOR:
			p.operator(t)
		case token.LEFT_PAREN:
			p.push(t)
		case token.RIGHT_PAREN:
			p.closeParen(t)
		}
	}

	return p.drain()
}

// operator pops every stacked operator that binds at least as tightly as op,
// honouring right-associativity, then stacks op.
func (p *parser) operator(op token.Token) {
	for p.hasOps() {
		top := p.top()
		if top.Type != token.OPERATOR {
			break
		}

		p1, p2 := precedence(op.Op), precedence(top.Op)
		if p1 < p2 || (p1 == p2 && !rightAssociative(op.Op)) {
			p.emit(p.pop())
			continue
		}
		break
	}

	p.push(op)
}

// closeParen pops operators to the output until the matching left parenthesis
// is discarded. An unmatched right parenthesis is stacked instead so the
// final sweep reports it.
func (p *parser) closeParen(rparen token.Token) {
	for p.hasOps() {
		t := p.pop()
		if t.Type == token.LEFT_PAREN {
			return
		}
		p.emit(t)
	}

	p.push(rparen)
}

// drain flushes the remaining operators. Any parenthesis left on the stack
// had no match.
func (p *parser) drain() ([]token.Token, error) {
	for p.hasOps() {
		t := p.pop()
		if t.Type == token.LEFT_PAREN || t.Type == token.RIGHT_PAREN {
			return nil, calcerrors.NewParseError(&t, calcerrors.ErrParseMismatchedParentheses)
		}
		p.emit(t)
	}

	return p.output, nil
}

func (p *parser) emit(t token.Token) {
	p.output = append(p.output, t)
}

func (p *parser) push(t token.Token) {
	p.ops = append(p.ops, t)
}

func (p *parser) pop() token.Token {
	t := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	return t
}

func (p *parser) top() token.Token {
	return p.ops[len(p.ops)-1]
}

func (p *parser) hasOps() bool {
	return len(p.ops) > 0
}

func precedence(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/', '%':
		return 2
	case '^':
		return 3
	}
	return 0
}

func rightAssociative(op rune) bool {
	return op == '^'
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
