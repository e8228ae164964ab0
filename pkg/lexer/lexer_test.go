package lexer_test

import (
	"testing"

	"lox/pkg/lexer"
	"lox/pkg/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanSingleAndDoubleCharacterTokens(t *testing.T) {
	tokens, errs := lexer.Scan("!= == <= >= < > = ! ( ) { } , . - + ; * : ?")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Less, token.Greater, token.Equal, token.Bang,
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Colon, token.Question, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLineCommentsAreIgnoredButSlashIsNot(t *testing.T) {
	tokens, errs := lexer.Scan("1 / 2 // this is a comment\n3")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := kinds(tokens)
	want := []token.Kind{token.Number, token.Slash, token.Number, token.Number, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
	if tokens[3].Line != 2 {
		t.Fatalf("expected the token after the comment to be on line 2, got %d", tokens[3].Line)
	}
}

func TestKeywordsAreDistinguishedFromIdentifiers(t *testing.T) {
	tokens, errs := lexer.Scan("var print while foo")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Kind{token.Var, token.Print, token.While, token.Identifier, token.EOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNumberLiteralsDecodeToFloat64(t *testing.T) {
	tokens, errs := lexer.Scan("123 4.56")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Literal.(float64) != 123 {
		t.Fatalf("got %v, want 123", tokens[0].Literal)
	}
	if tokens[1].Literal.(float64) != 4.56 {
		t.Fatalf("got %v, want 4.56", tokens[1].Literal)
	}
}

func TestStringLiteralStripsQuotesAndTracksLines(t *testing.T) {
	tokens, errs := lexer.Scan("\"hello\nworld\"")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Kind != token.String {
		t.Fatalf("expected STRING, got %s", tokens[0].Kind)
	}
	if tokens[0].Literal.(string) != "hello\nworld" {
		t.Fatalf("got %q, want %q", tokens[0].Literal, "hello\nworld")
	}
	if tokens[1].Line != 2 {
		t.Fatalf("expected the EOF token to be on line 2 after the embedded newline, got %d", tokens[1].Line)
	}
}

func TestUnterminatedStringIsReportedAndScanningStops(t *testing.T) {
	tokens, errs := lexer.Scan(`"never closed`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Message != "Unterminated string." {
		t.Fatalf("got %q", errs[0].Message)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("expected only the trailing EOF token, got %v", tokens)
	}
}

func TestUnexpectedCharacterIsReportedButScanningContinues(t *testing.T) {
	tokens, errs := lexer.Scan("1 @ 2")
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Message != "Unexpected character." {
		t.Fatalf("got %q", errs[0].Message)
	}
	got := kinds(tokens)
	want := []token.Kind{token.Number, token.Number, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}
