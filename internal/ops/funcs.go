package ops

import (
	"math"

	"calcyard/pkg/token"
)

// The numeric function library maps directly onto the math package over the
// float view of each argument. Arity is validated by the converter and the
// evaluator before a behavior runs, so routines index args freely.

func unary(f func(float64) float64) token.Evaluable {
	return token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
		return token.NewNumber(f(args[0].Number()))
	})
}

func binary(f func(float64, float64) float64) token.Evaluable {
	return token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
		return token.NewNumber(f(args[0].Number(), args[1].Number()))
	})
}

var (
	// Floor is the floor(x) behavior.
	Floor = unary(math.Floor)
	// Ceil is the ceil(x) behavior.
	Ceil = unary(math.Ceil)
	// Round is the round(x) behavior.
	Round = unary(math.Round)
	// Sqrt is the sqrt(x) behavior.
	Sqrt = unary(math.Sqrt)
	// Abs is the abs(x) behavior.
	Abs = unary(math.Abs)
	// Sin is the sin(x) behavior.
	Sin = unary(math.Sin)
	// Cos is the cos(x) behavior.
	Cos = unary(math.Cos)
	// Tan is the tan(x) behavior.
	Tan = unary(math.Tan)
	// Atan is the atan(x) behavior.
	Atan = unary(math.Atan)
	// Pow is the pow(x, y) behavior.
	Pow = binary(math.Pow)
	// Atan2 is the atan2(y, x) behavior.
	Atan2 = binary(math.Atan2)

	// Pi is the behavior of the 'pi' keyword constant.
	Pi = token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
		return token.NewNumber(math.Pi)
	})
)

// byName routes function symbols to their behaviors; the registry consults it
// when building the built-in table.
var byName = map[string]token.Evaluable{
	"floor": Floor,
	"ceil":  Ceil,
	"round": Round,
	"sqrt":  Sqrt,
	"abs":   Abs,
	"sin":   Sin,
	"cos":   Cos,
	"tan":   Tan,
	"atan":  Atan,
	"pow":   Pow,
	"atan2": Atan2,
}

// FuncByName returns the library behavior for a function symbol. A miss means
// the registry and the library disagree, which callers surface as an internal
// inconsistency error.
func FuncByName(name string) (token.Evaluable, bool) {
	e, ok := byName[name]
	return e, ok
}
