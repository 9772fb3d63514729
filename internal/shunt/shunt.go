// Package shunt converts infix token sequences to postfix (reverse Polish)
// order with the shunting-yard algorithm, resolving precedence,
// associativity, unary/binary sign ambiguity, and function argument
// grouping. Any fatal condition discards the output built so far and yields
// a single Invalid token.
package shunt

import (
	"calcyard/internal/ops"
	"calcyard/pkg/token"
)

// ToPostfix rewrites the infix sequence into postfix order. The result is
// either the full postfix sequence or a single-element Invalid sequence.
func ToPostfix(infix []token.Token) []token.Token {
	var out []token.Token
	var stack []token.Token

	for i := 0; i < len(infix); i++ {
		tok := infix[i]

		switch tok.Kind {
		case token.Invalid:
			// Upstream failure propagates verbatim.
			return []token.Token{tok}

		case token.Number, token.Bool, token.String, token.Null, token.Keyword, token.UnaryPostfix:
			out = append(out, tok)

		case token.Func:
			if i+1 >= len(infix) || infix[i+1].Kind != token.LParen {
				return fail("function %q missing open bracket", tok.Text)
			}
			stack = append(stack, tok)
			// Synthetic marker: tells the evaluator where this call's
			// arguments begin. The real bracket that follows is matched on
			// the stack, not against this marker.
			out = append(out, token.Token{Kind: token.LParen, Text: "(", Prec: token.PrecBracket, Pos: tok.Pos})

		case token.UnaryPrefix, token.LParen:
			stack = append(stack, tok)

		case token.BinaryLeft:
			out, stack = popWhile(out, stack, func(top token.Token) bool { return top.Prec >= tok.Prec })
			stack = append(stack, tok)

		case token.BoolOp, token.BinaryRight:
			// Strictly-greater keeps equal-precedence operators stacked.
			out, stack = popWhile(out, stack, func(top token.Token) bool { return top.Prec > tok.Prec })
			stack = append(stack, tok)

		case token.Sign:
			if i > 0 && signIsBinary(infix[i-1].Kind) {
				out, stack = popWhile(out, stack, func(top token.Token) bool { return top.Prec >= tok.Prec })
				tok.Kind = token.BinaryLeft
				stack = append(stack, tok)
				break
			}
			eval, ok := ops.UnarySign(tok.Text)
			if !ok {
				return fail("unsupported sign operator %q", tok.Text)
			}
			tok.Kind = token.UnaryPrefix
			tok.Prec = token.PrecUnary
			tok.Eval = eval
			stack = append(stack, tok)

		case token.ArgSep:
			for {
				if len(stack) == 0 {
					return fail("misplaced argument separator at index %d", tok.Pos)
				}
				top := stack[len(stack)-1]
				if top.Kind == token.LParen || top.Kind == token.ArgSep {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case token.RParen:
			args := 1 // a bracket pair holds at least one argument
			for {
				if len(stack) == 0 {
					return fail("mismatched brackets")
				}
				top := stack[len(stack)-1]
				if top.Kind == token.LParen {
					break
				}
				stack = stack[:len(stack)-1]
				if top.Kind == token.ArgSep {
					args++
					continue
				}
				out = append(out, top)
			}
			stack = stack[:len(stack)-1] // discard the open bracket

			if len(stack) > 0 && stack[len(stack)-1].Kind == token.Func {
				f := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if f.Arity != token.Variadic && args != f.Arity {
					return fail("function %q expects %d arguments, got %d", f.Text, f.Arity, args)
				}
				out = append(out, f)
			}

		default:
			return fail("unsupported symbol type %s for %q", tok.Kind, tok.Text)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.LParen {
			return fail("mismatched brackets")
		}
		out = append(out, top)
	}

	return out
}

// signIsBinary reports whether a '+'/'-' following a token of this kind is a
// binary operator; everything else makes it a unary prefix.
func signIsBinary(prev token.Kind) bool {
	switch prev {
	case token.RParen, token.Number, token.Keyword, token.UnaryPostfix:
		return true
	default:
		return false
	}
}

func popWhile(out, stack []token.Token, cond func(token.Token) bool) ([]token.Token, []token.Token) {
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == token.LParen || !cond(top) {
			break
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, stack
}

func fail(format string, args ...any) []token.Token {
	return []token.Token{token.Errorf(format, args...)}
}
