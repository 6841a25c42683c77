package cdecl

// ExtractName returns the declared identifier of a parsed declaration.
// It searches depth-first, left to right, and yields the text of the
// first name site it finds. The second result is false only when the
// tree has no name site at all, which cannot happen for a tree produced
// by Parse and indicates a malformed tree.
func ExtractName(tree *Node) (string, bool) {
	if tree == nil || tree.IsTerminal() {
		return "", false
	}
	if tree.Kind == KindDeclarationName {
		if len(tree.Children) > 0 {
			return tree.Children[0].TokenLiteral(), true
		}
		return "", false
	}
	for _, child := range tree.Children {
		if name, ok := ExtractName(child); ok {
			return name, true
		}
	}
	return "", false
}

// IsBareIdentifier reports whether the parsed declaration was a lone
// identifier with no type information. Bare identifiers can only be
// checked for existence; structured declarations can additionally be
// checked for shape by compiling a probe.
func IsBareIdentifier(tree *Node) bool {
	return tree != nil && !tree.IsTerminal() && tree.Kind == KindDeclarationName
}
