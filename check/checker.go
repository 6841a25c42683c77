// Package check runs compile-time existence checks for C and C++
// headers, symbols, and declarations against an external compiler, and
// records positive outcomes as configuration defines.
package check

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/Snaipe/meson-check/cdecl"
)

var log = commonlog.GetLogger("meson-check.check")

// Compiler abstracts the external compiler toolchain. Every operation
// is a synchronous black-box call: the boolean is the check signal, and
// the error is reserved for failures to consult the compiler at all
// (a rejected probe is a negative result, not an error).
type Compiler interface {
	// Compiles reports whether source compiles with the given arguments.
	Compiles(source string, args []string) (bool, error)

	// HasHeader reports whether the named header can be included.
	HasHeader(header string, args []string) (bool, error)

	// HasHeaderSymbol reports whether the header defines or declares symbol.
	HasHeaderSymbol(header, symbol string, args []string) (bool, error)

	// HasFunction reports whether the named function can be linked,
	// searching the given libraries.
	HasFunction(name string, args []string, libraries []string) (bool, error)

	// WerrorArgs returns the arguments that promote warnings to errors.
	WerrorArgs() []string
}

// Checker evaluates checks against a Compiler and accumulates positive
// results in a ConfigData store.
type Checker struct {
	compiler Compiler
	language cdecl.Language
	args     []string
	config   *ConfigData
	out      io.Writer
}

type Option func(*Checker)

// WithLanguage selects the declaration language. The default is C.
func WithLanguage(lang cdecl.Language) Option {
	return func(c *Checker) { c.language = lang }
}

// WithArgs adds compiler arguments applied to every check.
func WithArgs(args ...string) Option {
	return func(c *Checker) { c.args = append(c.args, args...) }
}

// WithConfig supplies an existing ConfigData store to record into.
func WithConfig(config *ConfigData) Option {
	return func(c *Checker) { c.config = config }
}

// WithOutput redirects the per-check result lines. The default is stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) { c.out = w }
}

func New(compiler Compiler, opts ...Option) *Checker {
	c := &Checker{
		compiler: compiler,
		language: cdecl.LanguageC,
		config:   NewConfigData(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the store of recorded results.
func (c *Checker) Config() *ConfigData {
	return c.config
}

// Options are the per-check settings.
type Options struct {
	// Args are extra compiler arguments for this check only.
	Args []string

	// Libraries are linked (as -l flags) by symbol checks.
	Libraries []string

	// Variable overrides the config variable recorded on success.
	// When empty, the variable is derived from the checked name.
	Variable string

	// Required makes a negative outcome an error.
	Required bool

	// Disabled short-circuits the check to a negative outcome without
	// consulting the compiler.
	Disabled bool
}

// Result is the outcome of a declaration check.
type Result struct {
	OK   bool
	Name string

	// Prototype is the human-readable rewritten declaration. It is
	// empty when the input was a bare identifier.
	Prototype string
}

// Symbol checks that a symbol exists and can be linked.
func (c *Checker) Symbol(name string, opts Options) (bool, error) {
	if opts.Disabled {
		return false, nil
	}
	ok, err := c.compiler.HasFunction(name, c.compileArgs(opts), opts.Libraries)
	if err != nil {
		return false, fmt.Errorf("check symbol %s: %w", name, err)
	}
	c.report("symbol", name, ok)
	c.record(ok, name, opts)
	if !ok && opts.Required {
		return false, &RequiredError{Language: c.language, Kind: "symbol", Name: name}
	}
	return ok, nil
}

// Header checks that a header can be included.
func (c *Checker) Header(name string, opts Options) (bool, error) {
	if opts.Disabled {
		return false, nil
	}
	ok, err := c.compiler.HasHeader(name, c.compileArgs(opts))
	if err != nil {
		return false, fmt.Errorf("check header %s: %w", name, err)
	}
	c.report("header", name, ok)
	c.record(ok, name, opts)
	if !ok && opts.Required {
		return false, &RequiredError{Language: c.language, Kind: "header", Name: name}
	}
	return ok, nil
}

// Declaration checks that a declaration exists in a header. A bare
// identifier is checked for existence only; a full declaration is
// checked for shape by compiling a probe program that the compiler's
// own type checker accepts or rejects.
func (c *Checker) Declaration(header, decl string, opts Options) (Result, error) {
	if opts.Disabled {
		return Result{}, nil
	}

	frontend, err := cdecl.FrontendFor(c.language)
	if err != nil {
		return Result{}, err
	}
	tree, err := frontend.Parse(decl)
	if err != nil {
		return Result{}, fmt.Errorf("parse declaration %q: %w", decl, err)
	}
	name, found := cdecl.ExtractName(tree)
	if !found {
		return Result{}, &MissingNameError{Declaration: decl}
	}

	result := Result{Name: name}
	if cdecl.IsBareIdentifier(tree) {
		ok, err := c.compiler.HasHeaderSymbol(header, name, c.compileArgs(opts))
		if err != nil {
			return Result{}, fmt.Errorf("check declaration %s: %w", name, err)
		}
		result.OK = ok
		c.report("declaration for", name, ok)
	} else {
		result.Prototype = cdecl.Rewrite(tree, name)
		source := frontend.SynthesizeProbe(header, cdecl.Rewrite(tree, cdecl.ProbeReplacement), name)
		log.Debugf("probe program for %s:\n%s", name, source)

		args := append(c.compileArgs(opts), c.compiler.WerrorArgs()...)
		ok, err := c.compiler.Compiles(source, args)
		if err != nil {
			return Result{}, fmt.Errorf("check declaration %s: %w", name, err)
		}
		result.OK = ok
		c.reportPrototype(name, result.Prototype, ok)
	}

	c.record(result.OK, name, opts)
	if !result.OK && opts.Required {
		return result, &RequiredError{Language: c.language, Kind: "declaration", Name: name}
	}
	return result, nil
}

func (c *Checker) compileArgs(opts Options) []string {
	args := make([]string, 0, len(c.args)+len(opts.Args))
	args = append(args, c.args...)
	args = append(args, opts.Args...)
	return args
}

func (c *Checker) record(ok bool, name string, opts Options) {
	if !ok {
		return
	}
	variable := opts.Variable
	if variable == "" {
		variable = HaveVariable(name)
	}
	c.config.Set(variable, 1)
}
