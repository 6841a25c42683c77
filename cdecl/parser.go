package cdecl

import "fmt"

// Parser parses a restricted subset of C declaration syntax into a
// concrete syntax tree. The grammar covers qualifiers, struct/union/enum
// tags, pointer chains, nested declarators, parameter lists with unnamed
// parameters and varargs, and pragmatic array bounds (an identifier or a
// run of numbers). It is deliberately not a full C grammar; it accepts
// library declarations the way they appear in headers.
//
// Productions, with left recursion handled as postfix loops:
//
//	declaration          = IDENT | actual_declaration .
//	actual_declaration   = ( type declarator | IDENT )
//	                       { "(" [ parameter_list ] ")" | "[" constant_expression "]" } .
//	type                 = [ qualifier ] { specifier } IDENT [ qualifier ] [ pointer ] .
//	pointer              = "*" { qualifier } [ pointer ] .
//	declarator           = ( pointer declarator | "(" declarator ")" | IDENT )
//	                       { "(" [ parameter_list ] ")" } .
//	parameter_list       = parameter { "," ( "..." | parameter ) } .
//	parameter            = type parameter_declarator
//	                       { "(" [ parameter_list ] ")" | "[" [ "static" ] constant_expression "]" } .
//	parameter_declarator = pointer parameter_declarator
//	                     | "(" parameter_declarator ")"
//	                     | [ IDENT ] { "(" [ parameter_list ] ")" } .
//	constant_expression  = IDENT | NUMBER { NUMBER } .
type Parser struct {
	tokens []Token
	pos    int
}

// Parse parses a declaration. The result is either a lone
// KindDeclarationName node (bare identifier input) or a structured tree
// containing exactly one name site. Malformed input fails with *SyntaxError.
func Parse(text string) (*Node, error) {
	p := &Parser{}
	if err := p.tokenize(text); err != nil {
		return nil, err
	}
	node, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.errorf(tok, "unexpected %q after declaration", tok.Literal)
	}
	return node, nil
}

func (p *Parser) tokenize(text string) error {
	lexer := NewLexer([]byte(text))
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenError {
			return &SyntaxError{Offset: tok.Offset, Message: "unexpected character " + tok.Literal}
		}
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			return nil
		}
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorf(tok, "expected %q, got %q", kind.String(), tok.Literal)
	}
	p.advance()
	return tok, nil
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if tok.Kind == TokenEOF {
		msg = "unexpected end of declaration: " + msg
	}
	return &SyntaxError{Offset: tok.Offset, Message: msg}
}

func (p *Parser) parseDeclaration() (*Node, error) {
	if p.check(TokenIdent) && p.peekN(1).Kind == TokenEOF {
		return p.parseDeclarationName()
	}
	return p.parseActualDeclaration()
}

func (p *Parser) parseDeclarationName() (*Node, error) {
	tok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	return newNode(KindDeclarationName, newTerminal(tok)), nil
}

func (p *Parser) parseActualDeclaration() (*Node, error) {
	var head *Node
	var err error

	// A declaration may reduce to a bare name followed by function or
	// array postfixes, with no type at all. "(" after the name is a
	// postfix only when it cannot open a grouped declarator; "(" then
	// "*" or "(" means the name is a type, as in "int (*foo)(void)".
	if p.check(TokenIdent) &&
		(p.peekN(1).Kind == TokenLSquare ||
			p.peekN(1).Kind == TokenLParen &&
				p.peekN(2).Kind != TokenStar && p.peekN(2).Kind != TokenLParen) {
		head, err = p.parseDeclarationName()
		if err != nil {
			return nil, err
		}
	} else {
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		head = newNode(KindDeclaration, ty, decl)
	}

	for {
		switch p.peek().Kind {
		case TokenLParen:
			head, err = p.parseFunctionPostfix(KindDeclaration, head)
		case TokenLSquare:
			head, err = p.parseArrayPostfix(KindDeclaration, head, false)
		default:
			return head, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseFunctionPostfix wraps head in a new node covering "( [params] )".
func (p *Parser) parseFunctionPostfix(kind NodeKind, head *Node) (*Node, error) {
	lp, err := p.expect(TokenLParen)
	if err != nil {
		return nil, err
	}
	node := newNode(kind, head, newTerminal(lp))
	if !p.check(TokenRParen) {
		params, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		node.AddChild(params)
	}
	rp, err := p.expect(TokenRParen)
	if err != nil {
		return nil, err
	}
	node.AddChild(newTerminal(rp))
	return node, nil
}

// parseArrayPostfix wraps head in a new node covering "[ [static] expr ]".
// The static marker is only valid in parameter positions.
func (p *Parser) parseArrayPostfix(kind NodeKind, head *Node, allowStatic bool) (*Node, error) {
	ls, err := p.expect(TokenLSquare)
	if err != nil {
		return nil, err
	}
	node := newNode(kind, head, newTerminal(ls))
	if allowStatic && p.check(TokenStatic) {
		node.AddChild(newTerminal(p.advance()))
	}
	expr, err := p.parseConstantExpression()
	if err != nil {
		return nil, err
	}
	node.AddChild(expr)
	rs, err := p.expect(TokenRSquare)
	if err != nil {
		return nil, err
	}
	node.AddChild(newTerminal(rs))
	return node, nil
}

func (p *Parser) parseType() (*Node, error) {
	node := newNode(KindType)
	if p.peek().Kind.IsQualifier() {
		node.AddChild(newTerminal(p.advance()))
	}
	for p.peek().Kind.IsSpecifier() {
		node.AddChild(newTerminal(p.advance()))
	}
	if !p.check(TokenIdent) {
		return nil, p.errorf(p.peek(), "expected type name, got %q", p.peek().Literal)
	}
	node.AddChild(newTerminal(p.advance()))
	if p.peek().Kind.IsQualifier() {
		node.AddChild(newTerminal(p.advance()))
	}
	if p.check(TokenStar) {
		ptr, err := p.parsePointer()
		if err != nil {
			return nil, err
		}
		node.AddChild(ptr)
	}
	return node, nil
}

func (p *Parser) parsePointer() (*Node, error) {
	star, err := p.expect(TokenStar)
	if err != nil {
		return nil, err
	}
	node := newNode(KindPointer, newTerminal(star))
	for p.peek().Kind.IsQualifier() {
		node.AddChild(newTerminal(p.advance()))
	}
	if p.check(TokenStar) {
		inner, err := p.parsePointer()
		if err != nil {
			return nil, err
		}
		node.AddChild(inner)
	}
	return node, nil
}

func (p *Parser) parseDeclarator() (*Node, error) {
	var head *Node

	switch p.peek().Kind {
	case TokenStar:
		ptr, err := p.parsePointer()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		return newNode(KindDeclarator, ptr, inner), nil

	case TokenLParen:
		lp := p.advance()
		inner, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		rp, err := p.expect(TokenRParen)
		if err != nil {
			return nil, err
		}
		head = newNode(KindDeclarator, newTerminal(lp), inner, newTerminal(rp))

	case TokenIdent:
		name, err := p.parseDeclarationName()
		if err != nil {
			return nil, err
		}
		head = name

	default:
		return nil, p.errorf(p.peek(), "expected declarator, got %q", p.peek().Literal)
	}

	var err error
	for p.check(TokenLParen) {
		head, err = p.parseFunctionPostfix(KindDeclarator, head)
		if err != nil {
			return nil, err
		}
	}
	return head, nil
}

func (p *Parser) parseParameterList() (*Node, error) {
	node := newNode(KindParameterList)
	param, err := p.parseParameter()
	if err != nil {
		return nil, err
	}
	node.AddChild(param)
	for p.check(TokenComma) {
		node.AddChild(newTerminal(p.advance()))
		if p.check(TokenEllipsis) {
			node.AddChild(newTerminal(p.advance()))
			continue
		}
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		node.AddChild(param)
	}
	return node, nil
}

func (p *Parser) parseParameter() (*Node, error) {
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	decl, err := p.parseParameterDeclarator()
	if err != nil {
		return nil, err
	}
	head := newNode(KindParameter, ty, decl)

	for {
		switch p.peek().Kind {
		case TokenLParen:
			head, err = p.parseFunctionPostfix(KindParameter, head)
		case TokenLSquare:
			head, err = p.parseArrayPostfix(KindParameter, head, true)
		default:
			return head, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseParameterDeclarator() (*Node, error) {
	var head *Node

	switch {
	case p.check(TokenStar):
		ptr, err := p.parsePointer()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseParameterDeclarator()
		if err != nil {
			return nil, err
		}
		return newNode(KindParameterDeclarator, ptr, inner), nil

	// "(" opens a grouped declarator only when it cannot start a
	// parameter list; otherwise it is a function postfix on an empty
	// parameter name, as in "int (int)".
	case p.check(TokenLParen) &&
		(p.peekN(1).Kind == TokenStar || p.peekN(1).Kind == TokenLParen):
		lp := p.advance()
		inner, err := p.parseParameterDeclarator()
		if err != nil {
			return nil, err
		}
		rp, err := p.expect(TokenRParen)
		if err != nil {
			return nil, err
		}
		head = newNode(KindParameterDeclarator, newTerminal(lp), inner, newTerminal(rp))

	default:
		name := newNode(KindParameterName)
		if p.check(TokenIdent) {
			name.AddChild(newTerminal(p.advance()))
		}
		head = name
	}

	var err error
	for p.check(TokenLParen) {
		head, err = p.parseFunctionPostfix(KindParameterDeclarator, head)
		if err != nil {
			return nil, err
		}
	}
	return head, nil
}

func (p *Parser) parseConstantExpression() (*Node, error) {
	node := newNode(KindConstantExpression)
	switch p.peek().Kind {
	case TokenIdent:
		node.AddChild(newTerminal(p.advance()))
	case TokenNumber:
		for p.check(TokenNumber) {
			node.AddChild(newTerminal(p.advance()))
		}
	default:
		return nil, p.errorf(p.peek(), "expected constant expression, got %q", p.peek().Literal)
	}
	return node, nil
}
