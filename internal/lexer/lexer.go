// Package lexer scans raw expression text into the ordered infix token
// sequence consumed by the shunting-yard converter. Scanning is fatal on the
// first unrecognized character: the whole output is replaced by a single
// Invalid token carrying the character and its index.
package lexer

import (
	"strings"

	"calcyard/internal/registry"
	"calcyard/pkg/token"
)

// Lexer walks one expression left to right. A Lexer is single-use; Tokenize
// allocates one per call so concurrent evaluations never share state.
type Lexer struct {
	expr   string
	cursor Cursor
	reg    *registry.Registry
}

// New creates a lexer for the given expression and registry.
func New(expr string, reg *registry.Registry) *Lexer {
	return &Lexer{expr: expr, cursor: NewCursor(expr), reg: reg}
}

// Tokenize scans expr into its infix token sequence using reg for symbol
// lookup. On an unrecognized character it discards everything scanned so far
// and returns a single-element Invalid sequence.
func Tokenize(expr string, reg *registry.Registry) []token.Token {
	return New(expr, reg).Scan()
}

// Scan runs the lexer to completion.
func (lx *Lexer) Scan() []token.Token {
	var out []token.Token

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()

		switch {
		case ch == ' ':
			lx.cursor.Bump()

		case isDec(ch) || ch == '.':
			out = append(out, lx.scanNumber())

		default:
			pos := int(lx.cursor.Off)
			def, ok := lx.reg.Lookup(lx.expr, pos, true)
			if !ok {
				// Fatal: no partial token sequence survives.
				return []token.Token{token.Errorf("unrecognized character %q at index %d", string(ch), pos)}
			}

			switch def.Kind {
			case token.ArgSep, token.RParen:
				// An omitted argument ("f(,x)" or "f()") becomes an
				// explicit null rather than an absent operand.
				if prev, found := lastToken(out); found && (prev.Kind == token.LParen || prev.Kind == token.ArgSep) {
					out = append(out, token.Token{Kind: token.Null, Text: "null", Pos: pos})
				}
				out = append(out, lx.emit(def, pos))

			case token.StringDelim:
				out = append(out, lx.scanString(def, pos))

			default:
				out = append(out, lx.emit(def, pos))
			}
		}
	}

	return out
}

// emit stamps the position onto a registry definition and advances the
// cursor past the matched symbol.
func (lx *Lexer) emit(def token.Token, pos int) token.Token {
	lx.cursor.Advance(len(def.Text))
	def.Pos = pos
	return def
}

// scanNumber greedily consumes digits and decimal points into one Number
// token. Malformed shapes like "1.2.3" keep their text and parse to NaN on
// demand instead of failing the scan.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	pos := int(lx.cursor.Off)
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Number, Text: lx.cursor.TextFrom(start), Pos: pos}
}

// scanString turns a StringDelim match into a String token spanning to the
// next occurrence of the same delimiter. There is no escape handling; an
// unterminated literal runs to the end of the expression.
func (lx *Lexer) scanString(def token.Token, pos int) token.Token {
	delim := def.Text[0]
	lx.cursor.Bump() // opening delimiter

	start := lx.cursor.Mark()
	rest := lx.expr[lx.cursor.Off:]
	if idx := strings.IndexByte(rest, delim); idx >= 0 {
		lx.cursor.Advance(idx)
		text := lx.cursor.TextFrom(start)
		lx.cursor.Bump() // closing delimiter
		return token.Token{Kind: token.String, Text: text, Pos: pos}
	}

	lx.cursor.Advance(len(rest))
	return token.Token{Kind: token.String, Text: lx.cursor.TextFrom(start), Pos: pos}
}

func lastToken(toks []token.Token) (token.Token, bool) {
	if len(toks) == 0 {
		return token.Token{}, false
	}
	return toks[len(toks)-1], true
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
