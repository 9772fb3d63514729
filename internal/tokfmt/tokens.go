// Package tokfmt renders token sequences for the CLI: an aligned
// human-readable listing, JSON, and a compact msgpack form for tooling that
// consumes token streams programmatically.
package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"calcyard/pkg/token"
)

// Schema version for the msgpack form - increment when TokenOutput changes.
const msgpackSchemaVersion uint16 = 1

// TokenOutput is the serialized view of one token.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text"`
	Pos   int    `json:"pos" msgpack:"pos"`
	Prec  int    `json:"prec,omitempty" msgpack:"prec"`
	Arity int    `json:"arity,omitempty" msgpack:"arity"`
}

// Stream is the top-level msgpack payload.
type Stream struct {
	Schema uint16        `msgpack:"schema"`
	Tokens []TokenOutput `msgpack:"tokens"`
}

func outputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Pos:   tok.Pos,
			Prec:  tok.Prec,
			Arity: tok.Arity,
		})
	}
	return out
}

// Pretty writes tokens as an aligned, human-readable listing. Long lexemes
// (unterminated string literals, error messages) are clamped by display
// width so the columns survive.
func Pretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		text := runewidth.Truncate(tok.Text, 40, "...")
		if _, err := fmt.Fprintf(w, "%3d: %-13s %-12q at %d\n", i+1, tok.Kind.String(), text, tok.Pos); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes tokens as an indented JSON array.
func JSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outputs(tokens))
}

// Msgpack writes tokens as a schema-versioned msgpack payload.
func Msgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(Stream{Schema: msgpackSchemaVersion, Tokens: outputs(tokens)})
}

// ReadMsgpack decodes a payload written by Msgpack, rejecting unknown
// schema versions.
func ReadMsgpack(r io.Reader) ([]TokenOutput, error) {
	var s Stream
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	if s.Schema != msgpackSchemaVersion {
		return nil, fmt.Errorf("unsupported token stream schema %d", s.Schema)
	}
	return s.Tokens, nil
}
