package ops

import (
	"calcyard/pkg/token"
)

// UnarySign returns the unary-prefix behavior for a sign symbol. The
// converter swaps it in when a '+' or '-' resolves as a prefix instead of a
// binary operator; unknown sign text reports !ok.
func UnarySign(text string) (token.Evaluable, bool) {
	switch text {
	case "+":
		return Pos, true
	case "-":
		return Neg, true
	default:
		return nil, false
	}
}
