package toolchain

import (
	"fmt"
	"strings"
)

func headerProbe(header string) string {
	return fmt.Sprintf("#include <%s>", header)
}

// headerSymbolProbe uses the symbol as an expression unless the
// preprocessor already resolved it as a macro, so both macros and
// declared symbols count as present.
func headerSymbolProbe(header, symbol string) string {
	return strings.Join([]string{
		fmt.Sprintf("#include <%s>", header),
		"int main(void) {",
		fmt.Sprintf("#ifndef %s", symbol),
		fmt.Sprintf("    (void) %s;", symbol),
		"#endif",
		"    return 0;",
		"}",
	}, "\n")
}

// functionProbe declares the function with a deliberately bogus
// prototype and links against it. The initial define keeps any system
// header from dragging in a conflicting declaration; the link step is
// what proves the symbol exists.
func functionProbe(name string) string {
	return strings.Join([]string{
		fmt.Sprintf("#define %s probe_disable_define_of_%s", name, name),
		"#include <limits.h>",
		fmt.Sprintf("#undef %s", name),
		"#ifdef __cplusplus",
		`extern "C"`,
		"#endif",
		fmt.Sprintf("char %s (void);", name),
		fmt.Sprintf("int main(void) { return %s (); }", name),
	}, "\n")
}
