// Package rpn evaluates postfix token sequences with an operand stack,
// folding each behavior-bearing token into a single result token.
package rpn

import (
	"calcyard/pkg/token"
)

// Evaluate folds a postfix sequence into one result token. An Invalid token
// anywhere in the input, or produced by a behavior, ends evaluation
// immediately and becomes the result. A stack that does not hold exactly one
// value at the end is an invalid expression.
func Evaluate(postfix []token.Token) token.Token {
	if len(postfix) == 0 {
		return token.Errorf("invalid expression")
	}

	var stack []token.Token

	for _, tok := range postfix {
		switch tok.Kind {
		case token.Invalid:
			return tok

		case token.UnaryPrefix, token.UnaryPostfix:
			if len(stack) < 1 {
				return token.Errorf("invalid expression")
			}
			arg := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			res := apply(tok, []token.Token{arg})
			if res.IsError() {
				return res
			}
			stack = append(stack, res)

		case token.BinaryLeft, token.BinaryRight, token.BoolOp:
			if len(stack) < 2 {
				return token.Errorf("invalid expression")
			}
			// First popped is the right operand.
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			res := apply(tok, []token.Token{left, right})
			if res.IsError() {
				return res
			}
			stack = append(stack, res)

		case token.Func:
			args, rest, ok := popCallArgs(stack)
			if !ok {
				return token.Errorf("invalid expression")
			}
			stack = rest
			if tok.Arity != token.Variadic && len(args) != tok.Arity {
				return token.Errorf("function %q expects %d arguments, got %d", tok.Text, tok.Arity, len(args))
			}
			res := apply(tok, args)
			if res.IsError() {
				return res
			}
			stack = append(stack, res)

		case token.Keyword:
			res := apply(tok, nil)
			if res.IsError() {
				return res
			}
			stack = append(stack, res)

		default:
			// Literals and the synthetic call marker.
			stack = append(stack, tok)
		}
	}

	if len(stack) != 1 {
		return token.Errorf("invalid expression")
	}
	return stack[0]
}

// popCallArgs pops operands down to the synthetic open-bracket marker and
// returns them in left-to-right order together with the remaining stack.
func popCallArgs(stack []token.Token) (args, rest []token.Token, ok bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Kind == token.LParen {
			collected := stack[i+1:]
			args = make([]token.Token, 0, len(collected))
			args = append(args, collected...)
			return args, stack[:i], true
		}
	}
	return nil, nil, false
}

// apply runs a token's behavior. A behavior-bearing token without one means
// the registry and the behavior library disagree; that internal
// inconsistency surfaces as an error rather than a panic.
func apply(op token.Token, args []token.Token) token.Token {
	if op.Eval == nil {
		return token.Errorf("unknown operator or function %q", op.Text)
	}
	return op.Eval.Apply(op, args)
}
