// Package registry defines the operator/function lookup tables: a
// process-wide read-only built-in table plus a caller-owned extension list
// consulted first, so extensions can override built-ins by symbol.
package registry

import (
	"strings"

	"calcyard/pkg/token"
)

// Registry pairs the shared built-in table with one caller's extensions.
// The extension list is mutated only by Register; callers must not register
// concurrently with in-flight evaluations.
type Registry struct {
	ext []token.Token
}

// New returns a registry with no extensions.
func New() *Registry {
	return &Registry{}
}

// Register appends a definition to the extension list. Extensions match in
// registration order and before built-ins, so registering a built-in symbol
// overrides it.
func (r *Registry) Register(tok token.Token) {
	r.ext = append(r.ext, tok)
}

// Extensions returns the registered extension definitions in order.
func (r *Registry) Extensions() []token.Token {
	return r.ext
}

// Lookup scans extensions then built-ins for the first definition whose
// symbol matches expr at pos, case-insensitively, for the symbol's length.
// Func definitions match only when allowFuncs is set, which distinguishes a
// function invocation from a bare identifier at the caller's scan position.
//
// Matching is first-registered-wins with no longest-match guarantee: a
// shorter symbol registered earlier shadows a longer one sharing its prefix.
// The built-in table is ordered so its own prefixed symbols do not collide.
func (r *Registry) Lookup(expr string, pos int, allowFuncs bool) (token.Token, bool) {
	if tok, ok := match(r.ext, expr, pos, allowFuncs); ok {
		return tok, true
	}
	return match(builtins, expr, pos, allowFuncs)
}

func match(defs []token.Token, expr string, pos int, allowFuncs bool) (token.Token, bool) {
	for _, def := range defs {
		n := len(def.Text)
		if n == 0 || pos+n > len(expr) {
			continue
		}
		if !strings.EqualFold(expr[pos:pos+n], def.Text) {
			continue
		}
		if def.Kind == token.Func && !allowFuncs {
			continue
		}
		return def, true
	}
	return token.Token{}, false
}
