package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the serve banner. Colours are dropped when out is not a
// terminal.
func PrintBanner(out io.Writer, version, addr string) {
	o := termenv.NewOutput(out, termenv.WithProfile(profileFor(out)))
	p := o.Profile

	title := o.String(" zabbix-import ").Bold().Foreground(p.Color("#f8fafc")).Background(p.Color("#d32f2f"))
	ver := o.String(version).Foreground(p.Color("#a78bfa"))
	listen := o.String(addr).Foreground(p.Color("#818cf8")).Underline()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", title, ver)
	fmt.Fprintf(out, "  listening on %s\n", listen)
	fmt.Fprintln(out)
}
