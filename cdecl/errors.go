package cdecl

import "fmt"

// SyntaxError reports declaration text that does not conform to the grammar.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// UnsupportedLanguageError reports a language with no registered frontend.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("no declaration parser for language %s", e.Language)
}
