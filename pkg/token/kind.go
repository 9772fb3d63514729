package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; Text carries the message.
	Invalid Kind = iota

	// Number represents a numeric literal token.
	Number
	// String represents a string literal token.
	String
	// Bool represents a boolean literal token.
	Bool
	// Null represents the null literal token.
	Null
	// Keyword represents a zero-argument named constant such as 'pi'.
	Keyword

	// Sign represents '+' or '-' before unary/binary disambiguation.
	Sign
	// UnaryPrefix represents a prefix operator applied to one operand.
	UnaryPrefix
	// UnaryPostfix represents a postfix operator applied to one operand.
	UnaryPostfix
	// BinaryLeft represents a left-associative binary operator.
	BinaryLeft
	// BinaryRight represents a right-associative binary operator.
	BinaryRight
	// BoolOp represents a boolean binary operator ('&&', '||').
	BoolOp
	// Ternary represents the conditional operator '?'.
	Ternary

	// StringDelim represents a string delimiter; the lexer rewrites it
	// into a String token spanning to the matching delimiter.
	StringDelim
	// Func represents a function name; must be followed by '('.
	Func
	// ArgSep represents the argument separator ','.
	ArgSep
	// TernarySep represents the ternary branch separator ':'.
	TernarySep
	// LParen represents the open bracket '('.
	LParen
	// RParen represents the close bracket ')'.
	RParen
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	Number:       "Number",
	String:       "String",
	Bool:         "Bool",
	Null:         "Null",
	Keyword:      "Keyword",
	Sign:         "Sign",
	UnaryPrefix:  "UnaryPrefix",
	UnaryPostfix: "UnaryPostfix",
	BinaryLeft:   "BinaryLeft",
	BinaryRight:  "BinaryRight",
	BoolOp:       "BoolOp",
	Ternary:      "Ternary",
	StringDelim:  "StringDelim",
	Func:         "Func",
	ArgSep:       "ArgSep",
	TernarySep:   "TernarySep",
	LParen:       "LParen",
	RParen:       "RParen",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
