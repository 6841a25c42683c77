package cdecl

import "strings"

// Flatten walks the tree in order and returns the token texts of an
// equivalent declaration with the name site replaced by replacement.
// Name-site children are ignored in favor of the replacement text, and
// parameter names are dropped entirely: a rewritten declaration
// describes a function type, not a signature with named parameters.
func Flatten(tree *Node, replacement string) []string {
	if tree == nil {
		return nil
	}
	if tree.IsTerminal() {
		return []string{tree.Token.Literal}
	}
	switch tree.Kind {
	case KindDeclarationName:
		return []string{replacement}
	case KindParameterName:
		return nil
	}
	var tokens []string
	for _, child := range tree.Children {
		tokens = append(tokens, Flatten(child, replacement)...)
	}
	return tokens
}

// joinTokens renders a token sequence with minimal C-correct spacing.
// A space is inserted before a token exactly when the previous output
// character is alphanumeric or a comma and the token begins with an
// alphanumeric character or a star.
func joinTokens(tokens []string) string {
	var out strings.Builder
	last := byte(' ')
	for _, tok := range tokens {
		if len(tok) == 0 {
			continue
		}
		if last == ',' || isAlnum(last) && (isAlnum(tok[0]) || tok[0] == '*') {
			out.WriteByte(' ')
		}
		out.WriteString(tok)
		last = tok[len(tok)-1]
	}
	return strings.TrimSpace(out.String())
}

func isAlnum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

// Rewrite re-renders a structured declaration with its name replaced by
// an arbitrary expression text. Calling it on a bare-identifier tree is
// out of contract; route those through existence checks instead.
func Rewrite(tree *Node, replacement string) string {
	return joinTokens(Flatten(tree, replacement))
}
