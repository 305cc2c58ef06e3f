package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/interpreter"
)

func TestInterpret(t *testing.T) {
	testcases := []struct {
		name string
		in   string // Input
		eval string // Expected display output
		err  string // Expected error
	}{
		{name: `simple expression`, in: `1 + 2`, eval: `3`},
		{name: `grouped`, in: `(1 + 2)`, eval: `3`},
		{name: `nested`, in: `(1 + (2 + 3))`, eval: `6`},
		{name: `precedence asterix`, in: `1 + 2 * 3`, eval: `7`},
		{name: `precedence slash`, in: `1 + 9 / 3`, eval: `4`},
		{name: `precedence asterix slash`, in: `1 + 2 * 6 / 4`, eval: `4`},
		{name: `grouping nested precedence`, in: `((1 + 2) * 3) / 2`, eval: `4.5`},
		{name: `headline`, in: `2 + 3 * (4 - 1) ^ 2`, eval: `29`},
		{name: `unary minus`, in: `-5 + 3`, eval: `-2`},
		{name: `unary minus product`, in: `-5 * 3`, eval: `-15`},
		{name: `parenthesized negative`, in: `2 * (-3)`, eval: `-6`},
		{name: `power right assoc`, in: `2 ^ 3 ^ 2`, eval: `512`},
		{name: `square root via power`, in: `2 ^ 0.5`, eval: `1.4142135623730951`},
		{name: `nan passes through`, in: `(0 - 2) ^ 0.5`, eval: `NaN`},
		{name: `percent`, in: `50% + 1`, eval: `1.5`},
		{name: `percent chain`, in: `100%%`, eval: `0.01`},
		{name: `division`, in: `10 / 4`, eval: `2.5`},
		{name: `division repeating`, in: `1 / 3`, eval: `0.3333333333333333`},
		{name: `division of zero`, in: `0 / 5`, eval: `0`},
		{name: `float drift`, in: `0.1 + 0.2`, eval: `0.30000000000000004`},
		{name: `tiny result truncates`, in: `0.0000000000000001 + 0`, eval: `0`},
		{name: `division by zero`, in: `10 / 0`, err: `[col 4] eval error at '/': division by zero`},
		{name: `division by zero decimal`, in: `5 / 0.0`, err: `division by zero`},
		{name: `double plus`, in: `1 + + 2`, err: `[col 3] eval error at '+': not enough operands`},
		{name: `percent alone`, in: `%`, err: `[col 1] eval error at '%': not enough operands`},
		{name: `unclosed paren`, in: `(1 + 2`, err: `[col 1] parse error at '(': mismatched parentheses`},
		{name: `orphan right paren`, in: `1 + 2)`, err: `[col 6] parse error at ')': mismatched parentheses`},
		{name: `invalid character`, in: `1 + a`, err: `[col 5] syntax error: invalid character 'a'`},
		{name: `invalid number`, in: `1.2.3`, err: `[col 1] syntax error: invalid number 1.2.3`},
		{name: `empty parens`, in: `()`, err: `eval error at end: malformed expression`},
		{name: `two values`, in: `2 3`, err: `eval error at end: malformed expression`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := evaluate(tc.in)
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.eval, out)
			}
		})
	}
}

func TestInterpretKeepsNoStateBetweenCalls(t *testing.T) {
	eval := interpreter.NewInterpreter()

	_, err := eval.Interpret(`10 / 0`)
	assert.ErrorIs(t, err, calcerrors.ErrEvalDivisionByZero)

	out, err := eval.Interpret(`2 + 2`)
	assert.NoError(t, err)
	assert.Equal(t, `4`, out)

	out, err = eval.Interpret(`2 + 2`)
	assert.NoError(t, err)
	assert.Equal(t, `4`, out)
}

func evaluate(text string) (string, error) {
	eval := interpreter.NewInterpreter()
	return eval.Interpret(text)
}
