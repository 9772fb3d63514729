package ops

import (
	"calcyard/pkg/token"
)

// Arithmetic operates on the float view of both operands. NaN operands
// propagate NaN results instead of erroring.

// Add is the binary '+' behavior.
var Add = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewNumber(args[0].Number() + args[1].Number())
})

// Sub is the binary '-' behavior.
var Sub = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewNumber(args[0].Number() - args[1].Number())
})

// Mul is the binary '*' behavior.
var Mul = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewNumber(args[0].Number() * args[1].Number())
})

// Div is the binary '/' behavior. Division by zero follows float semantics.
var Div = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewNumber(args[0].Number() / args[1].Number())
})

// Pos is the unary '+' behavior: the operand passes through unchanged.
var Pos = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return args[0]
})

// Neg is the unary '-' behavior: negates the numeric view.
var Neg = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
	return token.NewNumber(-args[0].Number())
})
