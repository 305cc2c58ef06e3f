package interpreter

import (
	"math"
	"strconv"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

// displayEpsilon bounds how far a value may sit from its truncation and
// still print as an integer.
const displayEpsilon = 1e-12

type Interpreter interface {
	// Interpret evaluates an expression source and renders the result for
	// display.
	Interpret(text string) (string, error)
	// Evaluate evaluates an expression source to its numeric value.
	Evaluate(text string) (float64, error)
	// EvaluatePostfix reduces a postfix token sequence to a single value.
	EvaluatePostfix(rpn []token.Token) (float64, error)
}

type interpreter struct{}

// NewInterpreter returns a new Interpreter. It keeps no state between calls
// and is safe for concurrent use: every evaluation gets its own value stack.
func NewInterpreter() Interpreter {
	return &interpreter{}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(text string) (string, error) {
	value, err := i.Evaluate(text)
	if err != nil {
		return "", err
	}

	return FormatResult(value), nil
}

// Evaluate implements Interpreter. The stages run in order and the first
// failure wins.
func (i *interpreter) Evaluate(text string) (float64, error) {
	tokens, err := scanner.NewScanner(text).Scan()
	if err != nil {
		return 0, err
	}

	rpn, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return 0, err
	}

	return i.EvaluatePostfix(rpn)
}

// EvaluatePostfix implements Interpreter.
func (i *interpreter) EvaluatePostfix(rpn []token.Token) (float64, error) {
	var stack []float64

	for idx := range rpn {
		t := &rpn[idx]
		switch t.Type {
		case token.NUMBER:
			stack = append(stack, t.Value)
		case token.OPERATOR:
			var err error
			if stack, err = apply(t, stack); err != nil {
				return 0, err
			}
		default:
			return 0, calcerrors.NewEvalError(t, calcerrors.ErrEvalInvalidPostfixToken)
		}
	}

	if len(stack) != 1 {
		return 0, calcerrors.NewEvalError(nil, calcerrors.ErrEvalMalformedExpression)
	}

	return stack[0], nil
}

// apply reduces the stack with op. Percent is unary and divides its single
// operand by one hundred; every other operator is binary. Division fails
// only on an exactly zero divisor, and exponentiation lets NaN and infinity
// flow through as ordinary values.
func apply(op *token.Token, stack []float64) ([]float64, error) {
	if op.Op == '%' {
		if len(stack) < 1 {
			return nil, calcerrors.NewEvalError(op, calcerrors.ErrEvalInsufficientOperands)
		}
		stack[len(stack)-1] /= 100
		return stack, nil
	}

	if len(stack) < 2 {
		return nil, calcerrors.NewEvalError(op, calcerrors.ErrEvalInsufficientOperands)
	}

	b, a := stack[len(stack)-1], stack[len(stack)-2]
	stack = stack[:len(stack)-2]

	var value float64
	switch op.Op {
	case '+':
		value = a + b
	case '-':
		value = a - b
	case '*':
		value = a * b
	case '/':
		if b == 0 {
			return nil, calcerrors.NewEvalError(op, calcerrors.ErrEvalDivisionByZero)
		}
		value = a / b
	case '^':
		value = math.Pow(a, b)
	default:
		return nil, calcerrors.NewEvalError(op, calcerrors.ErrEvalUnknownOperator)
	}

	return append(stack, value), nil
}

// FormatResult renders a value the way the prompt prints it: an integer
// literal when the value sits within 1e-12 of its truncation, otherwise the
// shortest decimal representation that round-trips.
func FormatResult(value float64) string {
	trunc := math.Trunc(value)
	if math.Abs(value-trunc) < displayEpsilon {
		// negative zero prints as plain zero
		if trunc == 0 {
			return "0"
		}
		return strconv.FormatFloat(trunc, 'f', -1, 64)
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

var _ Interpreter = (*interpreter)(nil)
