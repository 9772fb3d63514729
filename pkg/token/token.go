package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precedence levels. Higher binds tighter; real operators live between
// PrecBool and PrecUnary, with PrecBracket and PrecSeparator as sentinels
// outside that range.
const (
	// PrecBracket is carried by brackets and function names.
	PrecBracket = 100
	// PrecSeparator is carried by argument and ternary separators.
	PrecSeparator = -10
	// PrecBool is the lowest real operator precedence ('&&', '||').
	PrecBool = 0
	// PrecCompare is the comparison precedence ('<', '==', ...).
	PrecCompare = 1
	// PrecAdditive is the binary '+'/'-' precedence.
	PrecAdditive = 2
	// PrecMultiplicative is the '*'/'/' precedence.
	PrecMultiplicative = 3
	// PrecUnary is the precedence of reclassified unary prefix signs.
	PrecUnary = 4
)

// Variadic is the arity sentinel for functions accepting any argument count.
const Variadic = -1

// Evaluable is the behavior attached to operator, function, and keyword
// tokens. Apply folds op and its ordered arguments into a result token.
// Implementations must be pure: no retained state, no mutation of args.
// Extension tokens supply their own Evaluable.
type Evaluable interface {
	Apply(op Token, args []Token) Token
}

// EvalFunc adapts a plain function to the Evaluable interface.
type EvalFunc func(op Token, args []Token) Token

// Apply implements Evaluable.
func (f EvalFunc) Apply(op Token, args []Token) Token { return f(op, args) }

// Token is the single value flowing through all pipeline stages. A Token is
// immutable after construction; stages copy it by value.
type Token struct {
	Kind Kind
	// Text is the lexeme as it appeared in the source ("+", "45.2", "sin"),
	// or the message for Invalid tokens.
	Text string
	// Prec is the operator precedence; see the Prec* sentinels.
	Prec int
	// Arity is the expected argument count for Func tokens; Variadic
	// disables the count check.
	Arity int
	// Pos is the byte offset at which the lexer emitted the token. Registry
	// definitions carry zero; the lexer fills it in on emit.
	Pos int
	// Eval is the evaluation behavior; nil for literals, brackets and
	// separators.
	Eval Evaluable
}

// Number returns the token text parsed as a float. Unparsable text yields
// NaN, which arithmetic behaviors propagate instead of erroring.
func (t Token) Number() float64 {
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Bool reports whether the token text equals the canonical "true".
func (t Token) Bool() bool {
	return strings.EqualFold(t.Text, "true")
}

// IsError reports whether the token is an Invalid (error) token.
func (t Token) IsError() bool { return t.Kind == Invalid }

// IsLiteral reports whether the token is appended to postfix output as-is.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Bool, Null, Keyword:
		return true
	default:
		return false
	}
}

// NewNumber constructs a Number token rendering v as decimal text.
func NewNumber(v float64) Token {
	return Token{Kind: Number, Text: strconv.FormatFloat(v, 'f', -1, 64)}
}

// NewBool constructs a Bool token with canonical "true"/"false" text.
func NewBool(v bool) Token {
	if v {
		return Token{Kind: Bool, Text: "true"}
	}
	return Token{Kind: Bool, Text: "false"}
}

// NewString constructs a String token holding the given text.
func NewString(text string) Token {
	return Token{Kind: String, Text: text}
}

// Errorf constructs an Invalid token whose text is the formatted message.
// Stages propagate an Invalid token verbatim as their final result.
func Errorf(format string, args ...any) Token {
	return Token{Kind: Invalid, Text: fmt.Sprintf(format, args...)}
}
