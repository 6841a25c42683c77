package check

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func status(ok bool) string {
	if ok {
		return green("YES")
	}
	return red("NO")
}

func (c *Checker) report(which, what string, ok bool) {
	fmt.Fprintf(c.out, "Checking that %s %s exists: %s\n", which, bold(what), status(ok))
}

func (c *Checker) reportPrototype(name, prototype string, ok bool) {
	fmt.Fprintf(c.out, "Checking that %s has prototype %s: %s\n", bold(name), bold(prototype), status(ok))
}
