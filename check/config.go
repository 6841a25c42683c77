package check

import (
	"fmt"
	"io"
	"strings"
)

// ConfigData is an ordered store of configuration defines produced by
// checks. Only positive check outcomes are recorded.
type ConfigData struct {
	values map[string]int
	order  []string
}

func NewConfigData() *ConfigData {
	return &ConfigData{values: make(map[string]int)}
}

func (c *ConfigData) Set(name string, value int) {
	if _, ok := c.values[name]; !ok {
		c.order = append(c.order, name)
	}
	c.values[name] = value
}

func (c *ConfigData) Get(name string) (int, bool) {
	value, ok := c.values[name]
	return value, ok
}

// Names returns the recorded variable names in insertion order.
func (c *ConfigData) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// WriteHeader emits the store as a C header of #define lines.
func (c *ConfigData) WriteHeader(w io.Writer) error {
	for _, name := range c.order {
		if _, err := fmt.Fprintf(w, "#define %s %d\n", name, c.values[name]); err != nil {
			return err
		}
	}
	return nil
}

// HaveVariable derives the config variable for a checked name:
// HAVE_ plus the upper-cased name with every non-word character
// replaced by an underscore, so "sys/stat.h" becomes HAVE_SYS_STAT_H.
func HaveVariable(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.ToUpper(name))
	return "HAVE_" + mapped
}
