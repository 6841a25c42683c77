package cdecl

import "strings"

// ProbeReplacement is the name-site replacement used when rewriting a
// declaration for a probe program. The declared name becomes a
// dereference of a local pointer named "_", so the probe declares a
// pointer shaped exactly like the real declaration.
const ProbeReplacement = "(*_)"

// SynthesizeProbe returns the source text of a minimal translation unit
// that forces the compiler to type-check decl against the declaration
// of name in header:
//
//	#include <HEADER>
//	void __check(void) {
//	DECL = &(NAME);
//	}
//
// decl must have been rewritten with ProbeReplacement. Taking the
// address of name and assigning it to the probe's pointer makes the
// compile outcome the existence-and-shape signal: a mismatched or
// missing declaration fails to compile.
func SynthesizeProbe(header, decl, name string) string {
	return strings.Join([]string{
		"#include <" + header + ">",
		"void __check(void) {",
		decl + " = &(" + name + ");",
		"}",
	}, "\n")
}
