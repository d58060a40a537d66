package token_test

import (
	"testing"

	"github.com/krotik/vertexdb/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeArrows(t *testing.T) {
	tokens, err := token.Tokenize("a <- b -> c")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{token.Identifier, token.LeftArrow, token.Identifier, token.RightArrow, token.Identifier, token.EOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if tokens[0].Text != "a" || tokens[2].Text != "b" || tokens[4].Text != "c" {
		t.Fatalf("unexpected identifier text: %+v", tokens)
	}
}

func TestTokenizeSelectWhere(t *testing.T) {
	tokens, err := token.Tokenize("SELECT * FROM label1 WHERE a = 123 AND b != '456'")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{
		token.Keyword, token.Star, token.Keyword, token.Identifier, token.Keyword,
		token.Identifier, token.Eq, token.Number, token.Keyword, token.Identifier,
		token.Neq, token.String, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), tokens)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeEscapedQuote(t *testing.T) {
	tokens, err := token.Tokenize(`'test\'_\'string'`)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[0].Kind != token.String || tokens[0].Text != "test'_'string" {
		t.Fatalf("got %+v", tokens)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	if _, err := token.Tokenize("'abc"); err == nil {
		t.Fatalf("expected error for unterminated string")
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	if _, err := token.Tokenize("@"); err == nil {
		t.Fatalf("expected error for unexpected character")
	}
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	tokens, err := token.Tokenize("a == b <= c >= d != e")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{
		token.Identifier, token.DoubleEq, token.Identifier, token.Lte, token.Identifier,
		token.Gte, token.Identifier, token.Neq, token.Identifier, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
