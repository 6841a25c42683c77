// Package cdecl parses a pragmatic subset of C declaration syntax,
// extracts declared names, and re-renders declarations with the name
// replaced by an arbitrary expression, for use in compile-time
// existence checks.
package cdecl

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenIdent
	TokenNumber

	// Keywords
	TokenConst
	TokenEnum
	TokenSigned
	TokenStatic
	TokenStruct
	TokenUnion
	TokenUnsigned
	TokenVolatile

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLSquare
	TokenRSquare
	TokenComma
	TokenEllipsis
	TokenStar
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenError:    "Error",
	TokenIdent:    "Identifier",
	TokenNumber:   "Number",
	TokenConst:    "const",
	TokenEnum:     "enum",
	TokenSigned:   "signed",
	TokenStatic:   "static",
	TokenStruct:   "struct",
	TokenUnion:    "union",
	TokenUnsigned: "unsigned",
	TokenVolatile: "volatile",
	TokenLParen:   "(",
	TokenRParen:   ")",
	TokenLSquare:  "[",
	TokenRSquare:  "]",
	TokenComma:    ",",
	TokenEllipsis: "...",
	TokenStar:     "*",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsQualifier reports whether the token is a type qualifier (const/volatile).
func (k TokenKind) IsQualifier() bool {
	return k == TokenConst || k == TokenVolatile
}

// IsSpecifier reports whether the token is a type specifier keyword.
func (k TokenKind) IsSpecifier() bool {
	switch k {
	case TokenStruct, TokenUnion, TokenEnum, TokenSigned, TokenUnsigned:
		return true
	}
	return false
}

type Token struct {
	Kind    TokenKind
	Offset  int
	Literal string
}

var keywords = map[string]TokenKind{
	"const":    TokenConst,
	"enum":     TokenEnum,
	"signed":   TokenSigned,
	"static":   TokenStatic,
	"struct":   TokenStruct,
	"union":    TokenUnion,
	"unsigned": TokenUnsigned,
	"volatile": TokenVolatile,
}

// LookupKeyword maps an identifier to its keyword kind, or TokenIdent.
// Base type names such as "int" or "char" are ordinary identifiers here;
// the grammar only reserves qualifiers and aggregate specifiers.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
