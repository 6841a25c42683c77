package check

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
)

// Manifest is a TOML description of a batch of checks:
//
//	language = "c"
//	args = ["-D_GNU_SOURCE"]
//	output = "config.h"
//
//	[[header]]
//	name = "stdio.h"
//	required = true
//
//	[[symbol]]
//	name = "dlopen"
//	libraries = ["dl"]
//
//	[[declaration]]
//	header = "stdio.h"
//	decl = "int printf(const char *, ...)"
type Manifest struct {
	Language string   `toml:"language,omitempty"`
	Args     []string `toml:"args,omitempty"`
	Output   string   `toml:"output,omitempty"`

	Headers      []HeaderCheck      `toml:"header,omitempty"`
	Symbols      []SymbolCheck      `toml:"symbol,omitempty"`
	Declarations []DeclarationCheck `toml:"declaration,omitempty"`
}

type HeaderCheck struct {
	Name     string   `toml:"name"`
	Args     []string `toml:"args,omitempty"`
	Variable string   `toml:"variable,omitempty"`
	Required bool     `toml:"required,omitempty"`
}

type SymbolCheck struct {
	Name      string   `toml:"name"`
	Args      []string `toml:"args,omitempty"`
	Libraries []string `toml:"libraries,omitempty"`
	Variable  string   `toml:"variable,omitempty"`
	Required  bool     `toml:"required,omitempty"`
}

type DeclarationCheck struct {
	Header   string   `toml:"header"`
	Decl     string   `toml:"decl"`
	Args     []string `toml:"args,omitempty"`
	Variable string   `toml:"variable,omitempty"`
	Required bool     `toml:"required,omitempty"`
}

// ParseManifest decodes a manifest from TOML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// Summary counts the outcomes of a manifest run.
type Summary struct {
	Total  int
	Passed int
}

// Run executes every check in the manifest against the checker, in
// declaration order: headers, then symbols, then declarations. A
// required check that comes back negative stops the run with a
// *RequiredError; other negatives are counted and the run continues.
func (m *Manifest) Run(c *Checker) (Summary, error) {
	var summary Summary

	for _, h := range m.Headers {
		ok, err := c.Header(h.Name, Options{
			Args:     h.Args,
			Variable: h.Variable,
			Required: h.Required,
		})
		if err != nil {
			return summary, err
		}
		summary.Total++
		if ok {
			summary.Passed++
		}
	}

	for _, s := range m.Symbols {
		ok, err := c.Symbol(s.Name, Options{
			Args:      s.Args,
			Libraries: s.Libraries,
			Variable:  s.Variable,
			Required:  s.Required,
		})
		if err != nil {
			return summary, err
		}
		summary.Total++
		if ok {
			summary.Passed++
		}
	}

	for _, d := range m.Declarations {
		result, err := c.Declaration(d.Header, d.Decl, Options{
			Args:     d.Args,
			Variable: d.Variable,
			Required: d.Required,
		})
		if err != nil {
			return summary, err
		}
		summary.Total++
		if result.OK {
			summary.Passed++
		}
	}

	return summary, nil
}
