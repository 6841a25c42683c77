package cdecl

type Lexer struct {
	input []byte
	pos   int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Offset: start}
	}

	ch := l.peek()

	if isIdentStart(ch) {
		return l.scanIdentOrKeyword(start)
	}
	if isDigit(ch) {
		return l.scanNumber(start)
	}

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenLParen, Offset: start, Literal: "("}
	case ')':
		l.advance()
		return Token{Kind: TokenRParen, Offset: start, Literal: ")"}
	case '[':
		l.advance()
		return Token{Kind: TokenLSquare, Offset: start, Literal: "["}
	case ']':
		l.advance()
		return Token{Kind: TokenRSquare, Offset: start, Literal: "]"}
	case ',':
		l.advance()
		return Token{Kind: TokenComma, Offset: start, Literal: ","}
	case '*':
		l.advance()
		return Token{Kind: TokenStar, Offset: start, Literal: "*"}
	case '.':
		if l.peekN(1) == '.' && l.peekN(2) == '.' {
			l.advance()
			l.advance()
			l.advance()
			return Token{Kind: TokenEllipsis, Offset: start, Literal: "..."}
		}
	}

	l.advance()
	return Token{Kind: TokenError, Offset: start, Literal: string(l.input[start:l.pos])}
}

func (l *Lexer) scanIdentOrKeyword(start int) Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	literal := string(l.input[start:l.pos])
	return Token{Kind: LookupKeyword(literal), Offset: start, Literal: literal}
}

func (l *Lexer) scanNumber(start int) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	return Token{Kind: TokenNumber, Offset: start, Literal: string(l.input[start:l.pos])}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
