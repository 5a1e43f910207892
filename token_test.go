package whale

import (
	"errors"
	"testing"
)

// toks tokenizes source and fails the test on error.
func toks(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return tokens
}

// wantTypes checks the token type sequence.
func wantTypes(t *testing.T, tokens []Token, want ...TokenType) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tokenType := range want {
		if tokens[i].Type != tokenType {
			t.Fatalf("token %d: want type %d, got %d (%s)", i, tokenType, tokens[i].Type, tokens[i])
		}
	}
}

func lexErrKind(t *testing.T, src string, kind ErrorKind) {
	t.Helper()
	_, err := Tokenize(src)
	var engineErr *Error
	if !errors.As(err, &engineErr) || engineErr.Kind != kind {
		t.Fatalf("tokenize %q: want error kind %d, got %v", src, kind, err)
	}
}

func TestTokenizeOperators(t *testing.T) {
	wantTypes(t, toks(t, "1 + 2 * 3"), INT, PLUS, INT, STAR, INT)
	wantTypes(t, toks(t, "a = 1"), IDENTIFIER, ASSIGN, INT)
	wantTypes(t, toks(t, "a == 1"), IDENTIFIER, EQ, INT)
	wantTypes(t, toks(t, "!a != b"), NOT, IDENTIFIER, NEQ, IDENTIFIER)
	wantTypes(t, toks(t, "a >= b <= c"), IDENTIFIER, GEQ, IDENTIFIER, LEQ, IDENTIFIER)
	wantTypes(t, toks(t, "a && b || c"), IDENTIFIER, AND, IDENTIFIER, OR, IDENTIFIER)
	wantTypes(t, toks(t, "a += 1"), IDENTIFIER, PLUS_ASSIGN, INT)
	wantTypes(t, toks(t, "a &&= b"), IDENTIFIER, AND_ASSIGN, IDENTIFIER)
	wantTypes(t, toks(t, "a ||= b"), IDENTIFIER, OR_ASSIGN, IDENTIFIER)
	wantTypes(t, toks(t, "(1, 2); 3"), LBRACE, INT, COMMA, INT, RBRACE, SEMICOLON, INT)
}

func TestTokenizeWithoutWhitespace(t *testing.T) {
	wantTypes(t, toks(t, "1+2"), INT, PLUS, INT)
	wantTypes(t, toks(t, "a=b"), IDENTIFIER, ASSIGN, IDENTIFIER)
	wantTypes(t, toks(t, "a==b"), IDENTIFIER, EQ, IDENTIFIER)
}

func TestSingleAmpersandAndBarAreRejected(t *testing.T) {
	lexErrKind(t, "a & b", UnmatchedPartialToken)
	lexErrKind(t, "a | b", UnmatchedPartialToken)
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := toks(t, "42")
	wantTypes(t, tokens, INT)
	if tokens[0].Literal.(int64) != 42 {
		t.Fatalf("want 42, got %v", tokens[0].Literal)
	}

	tokens = toks(t, "0xFF")
	wantTypes(t, tokens, INT)
	if tokens[0].Literal.(int64) != 255 {
		t.Fatalf("want 255, got %v", tokens[0].Literal)
	}

	tokens = toks(t, "2.5")
	wantTypes(t, tokens, FLOAT)
	if tokens[0].Literal.(float64) != 2.5 {
		t.Fatalf("want 2.5, got %v", tokens[0].Literal)
	}
}

func TestTokenizeScientificNotation(t *testing.T) {
	tokens := toks(t, "1e+2")
	wantTypes(t, tokens, FLOAT)
	if tokens[0].Literal.(float64) != 100 {
		t.Fatalf("want 100, got %v", tokens[0].Literal)
	}

	tokens = toks(t, "1.5e-1")
	wantTypes(t, tokens, FLOAT)
	if tokens[0].Literal.(float64) != 0.15 {
		t.Fatalf("want 0.15, got %v", tokens[0].Literal)
	}

	// A failed joining falls back to an identifier and an operator.
	wantTypes(t, toks(t, "abc+def"), IDENTIFIER, PLUS, IDENTIFIER)
	// Whitespace blocks the joining.
	wantTypes(t, toks(t, "1e + 2"), IDENTIFIER, PLUS, INT)
}

func TestTokenizeBooleans(t *testing.T) {
	tokens := toks(t, "true false truthy")
	wantTypes(t, tokens, BOOLEAN, BOOLEAN, IDENTIFIER)
	if tokens[0].Literal.(bool) != true || tokens[1].Literal.(bool) != false {
		t.Fatalf("unexpected boolean payloads: %v", tokens)
	}
}

func TestTokenizeStrings(t *testing.T) {
	tokens := toks(t, `"hello world"`)
	wantTypes(t, tokens, STRING)
	if tokens[0].Literal.(string) != "hello world" {
		t.Fatalf("want %q, got %v", "hello world", tokens[0].Literal)
	}

	tokens = toks(t, `"a \"quoted\" \\ string"`)
	if tokens[0].Literal.(string) != `a "quoted" \ string` {
		t.Fatalf("unexpected unescaped payload %q", tokens[0].Literal)
	}

	// Operators inside a string stay text.
	tokens = toks(t, `"1 + 2"`)
	wantTypes(t, tokens, STRING)
}

func TestTokenizeStringErrors(t *testing.T) {
	lexErrKind(t, `"broken \n escape"`, IllegalEscapeSequence)
	lexErrKind(t, `"never closed`, UnterminatedString)
}

func TestTokenizeDottedAndColonIdentifiers(t *testing.T) {
	tokens := toks(t, "a.b.c")
	wantTypes(t, tokens, IDENTIFIER)
	if tokens[0].Literal.(string) != "a.b.c" {
		t.Fatalf("want a.b.c, got %v", tokens[0].Literal)
	}

	tokens = toks(t, "list:count()")
	wantTypes(t, tokens, IDENTIFIER, LBRACE, RBRACE)
	if tokens[0].Literal.(string) != "list:count" {
		t.Fatalf("want list:count, got %v", tokens[0].Literal)
	}
}
