package lexer

import (
	"testing"

	"github.com/funvibe/parfun/internal/diagnostics"
	"github.com/funvibe/parfun/internal/pipeline"
	"github.com/funvibe/parfun/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `Total = fun counter:incr(T, "visits", _)
Sub2 = fun math:sub/2
[1, 2.5, ok] % trailing comment
X == 3`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT_UPPER, "Total"},
		{token.ASSIGN, "="},
		{token.FUN, "fun"},
		{token.IDENT_LOWER, "counter"},
		{token.COLON, ":"},
		{token.IDENT_LOWER, "incr"},
		{token.LPAREN, "("},
		{token.IDENT_UPPER, "T"},
		{token.COMMA, ","},
		{token.STRING, `"visits"`},
		{token.COMMA, ","},
		{token.UNDERSCORE, "_"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT_UPPER, "Sub2"},
		{token.ASSIGN, "="},
		{token.FUN, "fun"},
		{token.IDENT_LOWER, "math"},
		{token.COLON, ":"},
		{token.IDENT_LOWER, "sub"},
		{token.SLASH, "/"},
		{token.INT, "2"},
		{token.NEWLINE, "\n"},
		{token.LBRACKET, "["},
		{token.INT, "1"},
		{token.COMMA, ","},
		{token.FLOAT, "2.5"},
		{token.COMMA, ","},
		{token.IDENT_LOWER, "ok"},
		{token.RBRACKET, "]"},
		{token.NEWLINE, "\n"},
		{token.IDENT_UPPER, "X"},
		{token.EQ, "=="},
		{token.INT, "3"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("42 3.14")

	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal.(int64) != 42 {
		t.Fatalf("expected INT 42, got %s %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal.(float64) != 3.14 {
		t.Fatalf("expected FLOAT 3.14, got %s %v", tok.Type, tok.Literal)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\"c"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if got := tok.Literal.(string); got != "a\nb\"c" {
		t.Fatalf("literal = %q", got)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
}

func TestUnterminatedStringDiagnosticCode(t *testing.T) {
	ctx := &pipeline.PipelineContext{SourceCode: `X = "oops`}
	ctx = (&LexerProcessor{}).Process(ctx)
	if len(ctx.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", ctx.Errors)
	}
	if ctx.Errors[0].Code != diagnostics.ErrL002 {
		t.Errorf("code = %s, want %s", ctx.Errors[0].Code, diagnostics.ErrL002)
	}
}

func TestUnderscorePrefixedVariables(t *testing.T) {
	// _Acc is an ignored variable, not a placeholder and not an atom.
	for _, input := range []string{"_Acc", "_x", "_1"} {
		l := New(input)
		tok := l.NextToken()
		if tok.Type != token.IDENT_UPPER {
			t.Fatalf("%q: expected IDENT_UPPER, got %s", input, tok.Type)
		}
		if tok.Lexeme != input {
			t.Fatalf("%q: lexeme = %q", input, tok.Lexeme)
		}
	}
}

func TestPositions(t *testing.T) {
	l := New("a\n  b")

	tok := l.NextToken()
	if tok.Line != 1 || tok.Column != 1 {
		t.Fatalf("a at %d:%d, want 1:1", tok.Line, tok.Column)
	}
	l.NextToken() // newline
	tok = l.NextToken()
	if tok.Line != 2 || tok.Column != 3 {
		t.Fatalf("b at %d:%d, want 2:3", tok.Line, tok.Column)
	}
}
