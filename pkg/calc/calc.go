// Package calc is the public surface of the expression pipeline. An
// Evaluator owns one registry (built-ins plus caller extensions) and runs
// tokenizer, shunting-yard conversion, and postfix evaluation per call.
//
// Every call allocates its own infix and postfix buffers, so one Evaluator
// may serve concurrent callers without external locking. The only caveat is
// registration: RegisterExtension must not race with in-flight evaluations.
//
// The ternary '?' and ':' tokens are recognized by the lexer but carry no
// evaluation behavior; expressions using them fail conversion. They are a
// declared extension point, not a supported operator.
package calc

import (
	"math"

	"golang.org/x/text/unicode/norm"

	"calcyard/internal/lexer"
	"calcyard/internal/registry"
	"calcyard/internal/rpn"
	"calcyard/internal/shunt"
	"calcyard/pkg/token"
)

// Evaluator evaluates expression text against a fixed registry state.
type Evaluator struct {
	reg *registry.Registry
}

// New returns an evaluator with the built-in operators, function library,
// and constants, and no extensions.
func New() *Evaluator {
	return &Evaluator{reg: registry.New()}
}

// RegisterExtension appends a definition to the extension list. Extensions
// are consulted before built-ins, so registering an existing symbol
// overrides it. Must not be called concurrently with Evaluate.
func (e *Evaluator) RegisterExtension(tok token.Token) {
	e.reg.Register(tok)
}

// RegisterConstant registers name as a Keyword extension yielding value.
func (e *Evaluator) RegisterConstant(name string, value float64) {
	e.RegisterExtension(token.Token{
		Kind: token.Keyword,
		Text: name,
		Eval: token.EvalFunc(func(token.Token, []token.Token) token.Token {
			return token.NewNumber(value)
		}),
	})
}

// run executes the three-stage pipeline with call-local buffers.
func (e *Evaluator) run(expr string) token.Token {
	expr = norm.NFC.String(expr)
	infix := lexer.Tokenize(expr, e.reg)
	postfix := shunt.ToPostfix(infix)
	return rpn.Evaluate(postfix)
}

// Evaluate returns the result's textual form: numbers as decimal text,
// booleans as "true"/"false", or the error description.
func (e *Evaluator) Evaluate(expr string) string {
	return e.run(expr).Text
}

// TryEvaluate evaluates expr; ok is false only for an error result.
func (e *Evaluator) TryEvaluate(expr string) (ok bool, result string) {
	res := e.run(expr)
	return !res.IsError(), res.Text
}

// TryEvaluateNumeric evaluates expr; ok is true only for a numeric result.
// On failure the value is NaN.
func (e *Evaluator) TryEvaluateNumeric(expr string) (ok bool, value float64) {
	res := e.run(expr)
	if res.IsError() || res.Kind != token.Number {
		return false, math.NaN()
	}
	return true, res.Number()
}

// Tokens returns the infix token sequence for expr, for tooling and
// diagnostics output.
func (e *Evaluator) Tokens(expr string) []token.Token {
	return lexer.Tokenize(norm.NFC.String(expr), e.reg)
}

// Postfix returns the converted postfix sequence for expr.
func (e *Evaluator) Postfix(expr string) []token.Token {
	return shunt.ToPostfix(e.Tokens(expr))
}
