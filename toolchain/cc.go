// Package toolchain implements the check.Compiler interface on top of
// a cc/gcc/clang style compiler driver.
package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("meson-check.toolchain")

// CC invokes an external compiler driver on synthesized probe sources.
// Probe sources are written to a scratch directory that is removed
// after each invocation.
type CC struct {
	// Path is the compiler executable, looked up on PATH.
	Path string

	// Args are base arguments passed on every invocation.
	Args []string

	// CXX compiles probes as C++ instead of C.
	CXX bool
}

func New(path string, args ...string) *CC {
	if path == "" {
		path = "cc"
	}
	return &CC{Path: path, Args: args}
}

func (cc *CC) WerrorArgs() []string {
	return []string{"-Werror"}
}

func (cc *CC) ext() string {
	if cc.CXX {
		return ".cpp"
	}
	return ".c"
}

// Compiles reports whether source compiles to an object file. A nil
// error with a false result means the compiler rejected the source;
// errors are reserved for failing to run the compiler at all.
func (cc *CC) Compiles(source string, args []string) (bool, error) {
	return cc.run(source, args, false)
}

func (cc *CC) run(source string, args []string, link bool) (bool, error) {
	dir, err := os.MkdirTemp("", "meson-check-")
	if err != nil {
		return false, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "probe"+cc.ext())
	if err := os.WriteFile(src, []byte(source+"\n"), 0644); err != nil {
		return false, fmt.Errorf("write probe source: %w", err)
	}

	var cmdArgs []string
	if link {
		cmdArgs = append(cmdArgs, src, "-o", filepath.Join(dir, "probe"))
	} else {
		cmdArgs = append(cmdArgs, "-c", src, "-o", filepath.Join(dir, "probe.o"))
	}
	cmdArgs = append(cmdArgs, cc.Args...)
	cmdArgs = append(cmdArgs, args...)

	log.Debugf("running %s %s", cc.Path, strings.Join(cmdArgs, " "))
	cmd := exec.Command(cc.Path, cmdArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Debugf("compiler rejected probe:\n%s", stderr.String())
		return false, nil
	}
	return false, fmt.Errorf("run %s: %w", cc.Path, err)
}

// HasHeader reports whether the named header can be included.
func (cc *CC) HasHeader(header string, args []string) (bool, error) {
	return cc.run(headerProbe(header), args, false)
}

// HasHeaderSymbol reports whether the header defines or declares symbol.
func (cc *CC) HasHeaderSymbol(header, symbol string, args []string) (bool, error) {
	return cc.run(headerSymbolProbe(header, symbol), args, false)
}

// HasFunction reports whether the named function exists and can be
// linked, searching the given libraries.
func (cc *CC) HasFunction(name string, args []string, libraries []string) (bool, error) {
	linkArgs := make([]string, 0, len(args)+len(libraries))
	linkArgs = append(linkArgs, args...)
	for _, lib := range libraries {
		linkArgs = append(linkArgs, "-l"+lib)
	}
	return cc.run(functionProbe(name), linkArgs, true)
}
