package cdecl

import (
	"errors"
	"testing"
)

func TestParseBareIdentifier(t *testing.T) {
	for _, input := range []string{"foo", "_x", "printf", "CLOCK_MONOTONIC"} {
		t.Run(input, func(t *testing.T) {
			tree, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", input, err)
			}
			if !IsBareIdentifier(tree) {
				t.Errorf("IsBareIdentifier = false, want true")
			}
			name, ok := ExtractName(tree)
			if !ok {
				t.Fatalf("ExtractName: no name site")
			}
			if name != input {
				t.Errorf("ExtractName = %q, want %q", name, input)
			}
		})
	}
}

func TestParseExtractName(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"int foo", "foo"},
		{"int foo(void)", "foo"},
		{"int *foo(void)", "foo"},
		{"int (*foo)(void)", "foo"},
		{"const char *strerror(int)", "strerror"},
		{"int printf(const char *, ...)", "printf"},
		{"void (*signal(int, void (*)(int)))(int)", "signal"},
		{"unsigned int sleep(unsigned int seconds)", "sleep"},
		{"struct tm *localtime(const time_t *)", "localtime"},
		{"int stat(const char *pathname, struct stat *statbuf)", "stat"},
		{"char buf[128]", "buf"},
		{"int matrix[ROWS][COLS]", "matrix"},
		{"void *memcpy(void *, const void *, size_t)", "memcpy"},
		{"int const *p", "p"},
		{"volatile unsigned long counter", "counter"},
		{"int atexit(void (*function)(void))", "atexit"},
		{"double pow(double x, double y)", "pow"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if IsBareIdentifier(tree) {
				t.Errorf("IsBareIdentifier = true, want false")
			}
			name, ok := ExtractName(tree)
			if !ok {
				t.Fatalf("ExtractName: no name site")
			}
			if name != tt.name {
				t.Errorf("ExtractName = %q, want %q", name, tt.name)
			}
		})
	}
}

func TestParseGroupedDeclarator(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"int (*foo)(void)", "foo"},
		{"int (*cmp)(const void *, const void *)", "cmp"},
		{"int (*(*foo)(void))(int)", "foo"},
		{"int (*foo)[4]", "foo"},
		{"void (*signal(int, void (*)(int)))(int)", "signal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if IsBareIdentifier(tree) {
				t.Errorf("IsBareIdentifier = true, want false")
			}
			name, ok := ExtractName(tree)
			if !ok {
				t.Fatalf("ExtractName: no name site")
			}
			if name != tt.name {
				t.Errorf("ExtractName = %q, want %q", name, tt.name)
			}
		})
	}
}

func TestParseParenthesizedIdentifier(t *testing.T) {
	// "int (x)(void)" could group a declarator naming x or declare the
	// unnamed function type int(x)(void). A parenthesis followed by an
	// identifier reads as a parameter list, in declaration and
	// parameter position alike; only "(*" or "((" opens a group.
	tests := []struct {
		input string
		name  string
	}{
		{"int (x)(void)", "int"},
		{"int foo(int (x))", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			name, ok := ExtractName(tree)
			if !ok {
				t.Fatalf("ExtractName: no name site")
			}
			if name != tt.name {
				t.Errorf("ExtractName = %q, want %q", name, tt.name)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	inputs := []string{
		"",
		"int (",
		"int foo(",
		"int foo)",
		"unsigned",
		"int foo bar",
		"int foo(int,)",
		"int foo[]",
		"3",
		"int 3",
		"int foo(;)",
		"*",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded: %s", input, tree.String())
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("error is %T, want *SyntaxError", err)
			}
		})
	}
}

func TestParseSingleNameSite(t *testing.T) {
	inputs := []string{
		"int foo",
		"int printf(const char *, ...)",
		"void (*signal(int, void (*)(int)))(int)",
		"int foo(int a, int b)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", input, err)
			}
			if got := countNameSites(tree); got != 1 {
				t.Errorf("tree has %d name sites, want 1", got)
			}
		})
	}
}

func countNameSites(n *Node) int {
	if n == nil || n.IsTerminal() {
		return 0
	}
	count := 0
	if n.Kind == KindDeclarationName {
		count++
	}
	for _, child := range n.Children {
		count += countNameSites(child)
	}
	return count
}

func TestParseArrayBounds(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"char buf[SIZE]", "buf"},
		{"char buf[42]", "buf"},
		{"int accept(int fd, struct sockaddr *addr[static 1])", "accept"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			name, _ := ExtractName(tree)
			if name != tt.name {
				t.Errorf("ExtractName = %q, want %q", name, tt.name)
			}
		})
	}
}
