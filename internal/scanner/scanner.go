package scanner

import (
	"strconv"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

type Scanner interface {
	Scan() ([]token.Token, error)
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
	err            error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	if s.err != nil {
		return nil, s.err
	}

	return normalizeUnaryMinus(s.tokens), nil
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.NewLeftParen(s.col()))
	case ')':
		s.addToken(token.NewRightParen(s.col()))
	case '+', '-', '*', '/', '^', '%':
		s.addToken(token.NewOperator(c, s.col()))
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	default:
		if s.isDigit(c) || c == '.' {
			s.number()
		} else {
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

// col is the 1-based column of the lexeme being scanned.
func (s *scanner) col() int {
	return s.start + 1
}

func (s *scanner) addToken(t token.Token) {
	s.tokens = append(s.tokens, t)
}

// number consumes the maximal run of digits and dots, so "1.2.3" fails as
// one bad literal instead of splitting into several tokens.
func (s *scanner) number() {
	for s.isDigit(s.peek()) || s.peek() == '.' {
		s.advance()
	}

	svalue := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		s.reportInvalidNumber(svalue)
		return
	}
	s.addToken(token.NewNumber(value, svalue, s.col()))
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.err = calcerrors.NewScanError(s.col(), calcerrors.ErrScanInvalidCharacter, strconv.QuoteRune(c))
}

func (s *scanner) reportInvalidNumber(literal string) {
	s.err = calcerrors.NewScanError(s.col(), calcerrors.ErrScanInvalidNumber, literal)
}

// normalizeUnaryMinus rewrites each unary minus as a binary subtraction from
// zero. A minus is unary when it opens the expression or directly follows an
// operator or a left parenthesis. Only '-' gets this treatment.
func normalizeUnaryMinus(tokens []token.Token) []token.Token {
	fixed := make([]token.Token, 0, len(tokens))

	for i, t := range tokens {
		if t.Type == token.OPERATOR && t.Op == '-' && isUnaryPosition(tokens, i) {
			fixed = append(fixed, token.NewNumber(0, "0", t.Pos), t)
			continue
		}
		fixed = append(fixed, t)
	}

	return fixed
}

func isUnaryPosition(tokens []token.Token, i int) bool {
	if i == 0 {
		return true
	}
	prev := tokens[i-1]
	return prev.Type == token.OPERATOR || prev.Type == token.LEFT_PAREN
}

var _ Scanner = (*scanner)(nil)
