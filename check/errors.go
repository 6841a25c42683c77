package check

import (
	"fmt"

	"github.com/Snaipe/meson-check/cdecl"
)

// RequiredError reports a required check that came back negative.
type RequiredError struct {
	Language cdecl.Language
	Kind     string
	Name     string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s %s %s required but not found", e.Language, e.Kind, e.Name)
}

// MissingNameError reports a parse tree without a name site. The
// grammar guarantees a name site for every declaration it accepts, so
// this indicates a defect in tree construction, not bad user input.
type MissingNameError struct {
	Declaration string
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("declaration %q: parse tree has no name site", e.Declaration)
}
