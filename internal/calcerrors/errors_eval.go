package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	ErrEvalInsufficientOperands = errors.New("not enough operands")
	ErrEvalDivisionByZero       = errors.New("division by zero")
	ErrEvalUnknownOperator      = errors.New("unknown operator")
	ErrEvalInvalidPostfixToken  = errors.New("invalid token in postfix expression")
	ErrEvalMalformedExpression  = errors.New("malformed expression")
)

func NewEvalError(tok *token.Token, cause error) error {
	return &EvalError{tok: tok, cause: cause}
}

type EvalError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (e *EvalError) Error() string {
	if e.tok == nil {
		return fmt.Sprintf("eval error at end: %v", e.cause)
	}
	return fmt.Sprintf("[col %d] eval error at '%s': %v", e.tok.Pos, e.tok.Lexeme, e.cause)
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

var _ error = (*EvalError)(nil)
var _ unwrapInterface = (*EvalError)(nil)
