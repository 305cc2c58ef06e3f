package token

import "fmt"

// TokenType discriminates the four token variants.
type TokenType int

const (
	NUMBER TokenType = iota
	OPERATOR
	LEFT_PAREN
	RIGHT_PAREN
)

var tokenTypeNames = map[TokenType]string{
	NUMBER:      "NUMBER",
	OPERATOR:    "OPERATOR",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var _ fmt.Stringer = (*TokenType)(nil)
