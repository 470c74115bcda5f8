package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes session output. Warnings are highlighted when colour is on.
type Printer struct {
	out  io.Writer
	warn *color.Color
}

// NewPrinter returns a Printer writing to out. With useColor false warnings
// are plain text; otherwise colour follows terminal detection.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	warn := color.New(color.FgYellow, color.Bold)
	if !useColor {
		warn.DisableColor()
	}
	return &Printer{out: out, warn: warn}
}

// Println writes one line.
func (p *Printer) Println(a ...any) error {
	_, err := fmt.Fprintln(p.out, a...)
	return err
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) error {
	_, err := fmt.Fprintf(p.out, format, a...)
	return err
}

// Warn writes one highlighted line.
func (p *Printer) Warn(msg string) error {
	_, err := p.warn.Fprintln(p.out, msg)
	return err
}
