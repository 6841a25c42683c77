package cdecl

type NodeKind int

const (
	KindError NodeKind = iota

	// KindDeclarationName marks the name site of a declaration. A
	// structured tree contains exactly one such node; a bare identifier
	// input parses to a lone KindDeclarationName at the root.
	KindDeclarationName

	// KindParameterName marks a (possibly empty) parameter identifier.
	// Parameter names are dropped when a tree is flattened.
	KindParameterName

	KindDeclaration
	KindType
	KindPointer
	KindDeclarator
	KindParameterList
	KindParameter
	KindParameterDeclarator
	KindConstantExpression
)

var nodeKindNames = map[NodeKind]string{
	KindError:               "Error",
	KindDeclarationName:     "DeclarationName",
	KindParameterName:       "ParameterName",
	KindDeclaration:         "Declaration",
	KindType:                "Type",
	KindPointer:             "Pointer",
	KindDeclarator:          "Declarator",
	KindParameterList:       "ParameterList",
	KindParameter:           "Parameter",
	KindParameterDeclarator: "ParameterDeclarator",
	KindConstantExpression:  "ConstantExpression",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a node in the concrete syntax tree of a declaration.
// Leaf nodes carry a non-nil Token; interior nodes carry Children.
type Node struct {
	Kind     NodeKind
	Children []*Node
	Token    *Token
}

// IsTerminal returns true if this is a leaf node (token).
func (n *Node) IsTerminal() bool {
	return n.Token != nil
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// TokenLiteral returns the token text for terminal nodes, "" otherwise.
func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

func (n *Node) String() string {
	return n.stringIndent(0)
}

func (n *Node) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix
	if n.IsTerminal() {
		result += n.Token.Kind.String()
		if n.Token.Literal != n.Token.Kind.String() {
			result += " " + n.Token.Literal
		}
	} else {
		result += n.Kind.String()
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}

func newNode(kind NodeKind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

func newTerminal(tok Token) *Node {
	return &Node{Token: &tok}
}
