package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gocalc/internal/token"
)

var ErrParseMismatchedParentheses = errors.New("mismatched parentheses")

func NewParseError(tok *token.Token, cause error) error {
	return &ParseError{tok: tok, cause: cause}
}

type ParseError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParseError) Error() string {
	if p.tok == nil {
		return fmt.Sprintf("parse error at end: %v", p.cause)
	}
	return fmt.Sprintf("[col %d] parse error at '%s': %v", p.tok.Pos, p.tok.Lexeme, p.cause)
}

func (p *ParseError) Unwrap() error {
	return p.cause
}

var _ error = (*ParseError)(nil)
var _ unwrapInterface = (*ParseError)(nil)
