package ops

import (
	"calcyard/pkg/token"
)

// Comparisons use the float view; NaN compares false to everything, so only
// NotEqual is true against NaN. Equal/NotEqual additionally carry a boolean
// overload: two Bool operands compare by truth value, not by coercion.

// Less is the '<' behavior.
var Less = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewBool(args[0].Number() < args[1].Number())
})

// Greater is the '>' behavior.
var Greater = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewBool(args[0].Number() > args[1].Number())
})

// LessEq is the '<=' behavior.
var LessEq = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewBool(args[0].Number() <= args[1].Number())
})

// GreaterEq is the '>=' behavior.
var GreaterEq = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewBool(args[0].Number() >= args[1].Number())
})

// Equal is the '==' behavior.
var Equal = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	if args[0].Kind == token.Bool && args[1].Kind == token.Bool {
		return token.NewBool(args[0].Bool() == args[1].Bool())
	}
	return token.NewBool(args[0].Number() == args[1].Number())
})

// NotEqual is the '!=' behavior.
var NotEqual = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	if args[0].Kind == token.Bool && args[1].Kind == token.Bool {
		return token.NewBool(args[0].Bool() != args[1].Bool())
	}
	return token.NewBool(args[0].Number() != args[1].Number())
})
