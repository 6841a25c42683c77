package cdecl

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"foo", []TokenKind{TokenIdent, TokenEOF}},
		{"_foo42", []TokenKind{TokenIdent, TokenEOF}},
		{"int", []TokenKind{TokenIdent, TokenEOF}},
		{"const", []TokenKind{TokenConst, TokenEOF}},
		{"volatile", []TokenKind{TokenVolatile, TokenEOF}},
		{"struct union enum", []TokenKind{TokenStruct, TokenUnion, TokenEnum, TokenEOF}},
		{"signed unsigned static", []TokenKind{TokenSigned, TokenUnsigned, TokenStatic, TokenEOF}},
		{"42", []TokenKind{TokenNumber, TokenEOF}},
		{"( ) [ ] , *", []TokenKind{TokenLParen, TokenRParen, TokenLSquare, TokenRSquare, TokenComma, TokenStar, TokenEOF}},
		{"...", []TokenKind{TokenEllipsis, TokenEOF}},
		{"int foo(void)", []TokenKind{TokenIdent, TokenIdent, TokenLParen, TokenIdent, TokenRParen, TokenEOF}},
		{"const char *", []TokenKind{TokenConst, TokenIdent, TokenStar, TokenEOF}},
		{"x[10]", []TokenKind{TokenIdent, TokenLSquare, TokenNumber, TokenRSquare, TokenEOF}},
		{"\t int \n foo ", []TokenKind{TokenIdent, TokenIdent, TokenEOF}},
		{";", []TokenKind{TokenError}},
		{"..", []TokenKind{TokenError}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input))
			var got []TokenKind
			for {
				tok := lexer.NextToken()
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF || tok.Kind == TokenError {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerLiterals(t *testing.T) {
	lexer := NewLexer([]byte("const char *fmt"))
	var literals []string
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			break
		}
		literals = append(literals, tok.Literal)
	}
	want := []string{"const", "char", "*", "fmt"}
	if len(literals) != len(want) {
		t.Fatalf("got %v, want %v", literals, want)
	}
	for i := range want {
		if literals[i] != want[i] {
			t.Errorf("literal %d: got %q, want %q", i, literals[i], want[i])
		}
	}
}
