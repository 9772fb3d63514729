package lexer_test

import (
	"strings"
	"testing"

	"calcyard/internal/lexer"
	"calcyard/internal/registry"
	"calcyard/pkg/token"
)

func tokenize(input string) []token.Token {
	return lexer.Tokenize(input, registry.New())
}

// expectKinds checks the kind sequence produced for an input.
func expectKinds(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	tokens := tokenize(input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v", len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

// expectSingleToken checks that the input produces exactly one token.
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	tokens := tokenize(input)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokensToString(tokens))
	}
	if tokens[0].Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tokens[0].Kind)
	}
	if tokens[0].Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tokens[0].Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Kind.String()+"("+tok.Text+")")
	}
	return strings.Join(parts, " ")
}

func TestNumbers(t *testing.T) {
	expectSingleToken(t, "45.2", token.Number, "45.2")
	expectSingleToken(t, "0", token.Number, "0")
	expectSingleToken(t, ".5", token.Number, ".5")
	// Malformed shapes keep their text; the numeric view is NaN on demand.
	expectSingleToken(t, "1.2.3", token.Number, "1.2.3")
}

func TestSpacesAreSkipped(t *testing.T) {
	tokens := expectKinds(t, "  1  +  2  ", []token.Kind{token.Number, token.Sign, token.Number})
	if tokens[1].Pos != 5 {
		t.Errorf("'+' position = %d, want 5", tokens[1].Pos)
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	expectKinds(t, "(1+2)*3", []token.Kind{
		token.LParen, token.Number, token.Sign, token.Number, token.RParen,
		token.BinaryLeft, token.Number,
	})
	expectKinds(t, "1<=2&&3!=4", []token.Kind{
		token.Number, token.BinaryLeft, token.Number, token.BoolOp,
		token.Number, token.BinaryLeft, token.Number,
	})
}

func TestFunctionCall(t *testing.T) {
	tokens := expectKinds(t, "pow(2,3)", []token.Kind{
		token.Func, token.LParen, token.Number, token.ArgSep, token.Number, token.RParen,
	})
	if tokens[0].Arity != 2 {
		t.Errorf("pow arity = %d, want 2", tokens[0].Arity)
	}
}

func TestCaseInsensitiveSymbols(t *testing.T) {
	// Emitted tokens carry the canonical registry text.
	expectSingleToken(t, "PI", token.Keyword, "pi")
	expectKinds(t, "TRUE AND FALSE", []token.Kind{token.Bool, token.BoolOp, token.Bool})
}

func TestImplicitNullArguments(t *testing.T) {
	expectKinds(t, "pow(,3)", []token.Kind{
		token.Func, token.LParen, token.Null, token.ArgSep, token.Number, token.RParen,
	})
	expectKinds(t, "abs()", []token.Kind{
		token.Func, token.LParen, token.Null, token.RParen,
	})
	expectKinds(t, "pow(2,)", []token.Kind{
		token.Func, token.LParen, token.Number, token.ArgSep, token.Null, token.RParen,
	})
}

func TestStringLiterals(t *testing.T) {
	expectSingleToken(t, `"hello world"`, token.String, "hello world")
	expectSingleToken(t, "'single'", token.String, "single")
	// No escape handling: the literal ends at the next same delimiter.
	expectKinds(t, `"a" == "b"`, []token.Kind{token.String, token.BinaryLeft, token.String})
}

func TestUnterminatedStringRunsToEnd(t *testing.T) {
	expectSingleToken(t, `"open ended`, token.String, "open ended")
}

func TestUnrecognizedCharacterIsFatal(t *testing.T) {
	tokens := tokenize("3 @ 4")
	if len(tokens) != 1 || !tokens[0].IsError() {
		t.Fatalf("expected a single error token, got %v", tokensToString(tokens))
	}
	if !strings.Contains(tokens[0].Text, "index 2") {
		t.Errorf("error should reference the index of '@': %q", tokens[0].Text)
	}
	if !strings.Contains(tokens[0].Text, "@") {
		t.Errorf("error should name the character: %q", tokens[0].Text)
	}
}

func TestEmptyInput(t *testing.T) {
	if tokens := tokenize(""); len(tokens) != 0 {
		t.Errorf("empty input should produce no tokens, got %v", tokensToString(tokens))
	}
	if tokens := tokenize("   "); len(tokens) != 0 {
		t.Errorf("blank input should produce no tokens, got %v", tokensToString(tokens))
	}
}

func TestPositions(t *testing.T) {
	tokens := expectKinds(t, "pow(2,31)", []token.Kind{
		token.Func, token.LParen, token.Number, token.ArgSep, token.Number, token.RParen,
	})
	wantPos := []int{0, 3, 4, 5, 6, 8}
	for i, tok := range tokens {
		if tok.Pos != wantPos[i] {
			t.Errorf("token %d (%s) pos = %d, want %d", i, tok.Text, tok.Pos, wantPos[i])
		}
	}
}
