package registry

import (
	"calcyard/internal/ops"
	"calcyard/pkg/token"
)

func fn(name string, arity int) token.Token {
	eval, ok := ops.FuncByName(name)
	if !ok {
		// The table below and the ops library must stay in sync.
		panic("registry: no behavior for built-in function " + name)
	}
	return token.Token{Kind: token.Func, Text: name, Prec: token.PrecBracket, Arity: arity, Eval: eval}
}

// builtins is the process-wide definition table, matched in slice order.
// Multi-character symbols precede the single-character symbols they share a
// prefix with ('<=' before '<'), and 'atan2' precedes 'atan'; lookup has no
// longest-match rule, only registration order.
var builtins = []token.Token{
	// boolean operators
	{Kind: token.BoolOp, Text: "&&", Prec: token.PrecBool, Eval: ops.And},
	{Kind: token.BoolOp, Text: "||", Prec: token.PrecBool, Eval: ops.Or},
	{Kind: token.BoolOp, Text: "and", Prec: token.PrecBool, Eval: ops.And},
	{Kind: token.BoolOp, Text: "or", Prec: token.PrecBool, Eval: ops.Or},

	// comparisons
	{Kind: token.BinaryLeft, Text: "<=", Prec: token.PrecCompare, Eval: ops.LessEq},
	{Kind: token.BinaryLeft, Text: ">=", Prec: token.PrecCompare, Eval: ops.GreaterEq},
	{Kind: token.BinaryLeft, Text: "==", Prec: token.PrecCompare, Eval: ops.Equal},
	{Kind: token.BinaryLeft, Text: "!=", Prec: token.PrecCompare, Eval: ops.NotEqual},
	{Kind: token.BinaryLeft, Text: "<", Prec: token.PrecCompare, Eval: ops.Less},
	{Kind: token.BinaryLeft, Text: ">", Prec: token.PrecCompare, Eval: ops.Greater},

	// arithmetic; '+'/'-' stay Sign until the converter resolves them
	{Kind: token.Sign, Text: "+", Prec: token.PrecAdditive, Eval: ops.Add},
	{Kind: token.Sign, Text: "-", Prec: token.PrecAdditive, Eval: ops.Sub},
	{Kind: token.BinaryLeft, Text: "*", Prec: token.PrecMultiplicative, Eval: ops.Mul},
	{Kind: token.BinaryLeft, Text: "/", Prec: token.PrecMultiplicative, Eval: ops.Div},

	// ternary tokens are declared but carry no behavior; the converter
	// rejects them (see the calc package docs)
	{Kind: token.Ternary, Text: "?", Prec: token.PrecSeparator},
	{Kind: token.TernarySep, Text: ":", Prec: token.PrecSeparator},

	// structure
	{Kind: token.LParen, Text: "(", Prec: token.PrecBracket},
	{Kind: token.RParen, Text: ")", Prec: token.PrecBracket},
	{Kind: token.ArgSep, Text: ",", Prec: token.PrecSeparator},
	{Kind: token.StringDelim, Text: `"`},
	{Kind: token.StringDelim, Text: "'"},

	// function library
	fn("atan2", 2),
	fn("atan", 1),
	fn("floor", 1),
	fn("ceil", 1),
	fn("round", 1),
	fn("sqrt", 1),
	fn("abs", 1),
	fn("pow", 2),
	fn("sin", 1),
	fn("cos", 1),
	fn("tan", 1),

	// constants and literals
	{Kind: token.Keyword, Text: "pi", Eval: ops.Pi},
	{Kind: token.Bool, Text: "true"},
	{Kind: token.Bool, Text: "false"},
	{Kind: token.Null, Text: "null"},
}
