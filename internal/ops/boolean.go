package ops

import (
	"calcyard/pkg/token"
)

// Boolean operators require Bool operands on both sides; anything else is an
// error naming the failing side.

func requireBool(op token.Token, operand token.Token, side string) (token.Token, bool) {
	if operand.Kind != token.Bool {
		return token.Errorf("%s operand of %q is not a boolean: %q", side, op.Text, operand.Text), false
	}
	return token.Token{}, true
}

// And is the '&&' (and "and") behavior.
var And = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	if errTok, ok := requireBool(op, args[0], "left"); !ok {
		return errTok
	}
	if errTok, ok := requireBool(op, args[1], "right"); !ok {
		return errTok
	}
	return token.NewBool(args[0].Bool() && args[1].Bool())
})

// Or is the '||' (and "or") behavior.
var Or = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	if errTok, ok := requireBool(op, args[0], "left"); !ok {
		return errTok
	}
	if errTok, ok := requireBool(op, args[1], "right"); !ok {
		return errTok
	}
	return token.NewBool(args[0].Bool() || args[1].Bool())
})
