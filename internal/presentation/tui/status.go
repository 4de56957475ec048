// Package tui renders command line output.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/pkg/schema"
)

// profileFor picks a colour profile: plain ASCII unless out is a terminal.
func profileFor(out io.Writer) termenv.Profile {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether out is an interactive terminal.
func IsTerminal(out io.Writer) bool {
	return profileFor(out) != termenv.Ascii
}

// Printer writes one status line per checked file.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a Printer for out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: termenv.NewOutput(out, termenv.WithProfile(profileFor(out)))}
}

// OK reports a file that passed.
func (p *Printer) OK(name string, s zabbix.Summary) {
	mark := p.out.String("✓").Foreground(p.out.Color("#22c55e")).Bold()
	fmt.Fprintf(p.out, "%s %s (format %s: %d hosts, %d templates, %d items, %d triggers)\n",
		mark, name, s.Version, s.Hosts, s.Templates, s.Items, s.Triggers)
}

// Fail reports a file that was rejected.
func (p *Printer) Fail(name string, err error) {
	mark := p.out.String("✗").Foreground(p.out.Color("#ef4444")).Bold()
	if verr, ok := schema.AsValidationError(err); ok {
		kind := p.out.String(string(verr.Kind)).Foreground(p.out.Color("#f59e0b"))
		fmt.Fprintf(p.out, "%s %s [%s] %s\n", mark, name, kind, verr.Error())
		return
	}
	fmt.Fprintf(p.out, "%s %s %v\n", mark, name, err)
}
