package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Token represents a lexical token.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  float64
	Op     rune
	Pos    int
}

// NewNumber returns a number token. pos is the 1-based column of the first rune.
func NewNumber(value float64, lexeme string, pos int) Token {
	return Token{
		Type:   NUMBER,
		Lexeme: lexeme,
		Value:  value,
		Pos:    pos,
	}
}

// NewOperator returns an operator token for op.
func NewOperator(op rune, pos int) Token {
	return Token{
		Type:   OPERATOR,
		Lexeme: string(op),
		Op:     op,
		Pos:    pos,
	}
}

// NewLeftParen returns a left parenthesis token.
func NewLeftParen(pos int) Token {
	return Token{Type: LEFT_PAREN, Lexeme: "(", Pos: pos}
}

// NewRightParen returns a right parenthesis token.
func NewRightParen(pos int) Token {
	return Token{Type: RIGHT_PAREN, Lexeme: ")", Pos: pos}
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.Type == NUMBER && t.Lexeme == "" {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Lexeme
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	if t.Type == NUMBER {
		return fmt.Sprintf("{Type: %s, Lexeme: %q, Value: %v, Pos: %d}", t.Type, t.Lexeme, t.Value, t.Pos)
	}
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Pos: %d}", t.Type, t.Lexeme, t.Pos)
}

// Join renders a token sequence as a single string, e.g. "2 3 +".
func Join(tokens []Token, sep string) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
