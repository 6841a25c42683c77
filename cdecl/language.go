package cdecl

import "strings"

// Language identifies a source language with declaration checking support.
type Language int

const (
	LanguageC Language = iota
	LanguageCPP
)

func (l Language) String() string {
	switch l {
	case LanguageC:
		return "c"
	case LanguageCPP:
		return "cpp"
	}
	return "unknown"
}

// ParseLanguage maps a language name to a Language.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(name) {
	case "c":
		return LanguageC, nil
	case "cpp", "c++":
		return LanguageCPP, nil
	}
	return 0, &UnsupportedLanguageError{Language: name}
}

// Frontend is the per-language capability pair: parse a declaration and
// synthesize a probe program for it.
type Frontend interface {
	// Parse parses declaration text into a tree, or fails with *SyntaxError.
	Parse(text string) (*Node, error)

	// SynthesizeProbe returns the source of a translation unit that
	// type-checks decl (a declaration rewritten with the "(*_)"
	// placeholder) against the real symbol name declared in header.
	SynthesizeProbe(header, decl, name string) string
}

// cFrontend implements Frontend for C. C++ shares it: the grammar is
// incomplete for C++ (no references, templates or trailing return
// types) but handles common library declarations well enough.
type cFrontend struct{}

func (cFrontend) Parse(text string) (*Node, error) {
	return Parse(text)
}

func (cFrontend) SynthesizeProbe(header, decl, name string) string {
	return SynthesizeProbe(header, decl, name)
}

var frontends = map[Language]Frontend{
	LanguageC:   cFrontend{},
	LanguageCPP: cFrontend{},
}

// FrontendFor returns the frontend for a language, failing with
// *UnsupportedLanguageError before any parsing is attempted.
func FrontendFor(lang Language) (Frontend, error) {
	frontend, ok := frontends[lang]
	if !ok {
		return nil, &UnsupportedLanguageError{Language: lang.String()}
	}
	return frontend, nil
}
