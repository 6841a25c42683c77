package toolchain

import (
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cc := New("")
	if cc.Path != "cc" {
		t.Errorf("Path = %q, want %q", cc.Path, "cc")
	}
	if cc.ext() != ".c" {
		t.Errorf("ext = %q, want .c", cc.ext())
	}
	cc.CXX = true
	if cc.ext() != ".cpp" {
		t.Errorf("ext = %q, want .cpp", cc.ext())
	}
}

func TestWerrorArgs(t *testing.T) {
	cc := New("gcc")
	args := cc.WerrorArgs()
	if len(args) != 1 || args[0] != "-Werror" {
		t.Errorf("WerrorArgs = %v, want [-Werror]", args)
	}
}

func TestHeaderProbe(t *testing.T) {
	if got := headerProbe("sys/stat.h"); got != "#include <sys/stat.h>" {
		t.Errorf("headerProbe = %q", got)
	}
}

func TestHeaderSymbolProbe(t *testing.T) {
	got := headerSymbolProbe("stdio.h", "BUFSIZ")
	for _, want := range []string{
		"#include <stdio.h>",
		"#ifndef BUFSIZ",
		"(void) BUFSIZ;",
		"int main(void)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("headerSymbolProbe missing %q:\n%s", want, got)
		}
	}
}

func TestFunctionProbe(t *testing.T) {
	got := functionProbe("dlopen")
	for _, want := range []string{
		"#define dlopen probe_disable_define_of_dlopen",
		"#undef dlopen",
		"char dlopen (void);",
		"int main(void) { return dlopen (); }",
		`extern "C"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("functionProbe missing %q:\n%s", want, got)
		}
	}
}
