// Package display renders user-facing output. Success messages and errors
// use distinct styles so they can be told apart at a glance; the error tone
// is also the only one written to stderr.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by New.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes styled messages to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer

	success lipgloss.Style
	info    lipgloss.Style
	failure lipgloss.Style
	code    lipgloss.Style
}

// New creates a Printer. Color detection in auto mode follows out, and
// NO_COLOR disables it.
func New(out, errOut io.Writer, colorMode string) *Printer {
	r := lipgloss.NewRenderer(out)
	switch colorMode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if os.Getenv("NO_COLOR") != "" {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return &Printer{
		out:     out,
		err:     errOut,
		success: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		info:    r.NewStyle(),
		failure: r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		code:    r.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// Success prints a headline in the success tone.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.success.Render(fmt.Sprintf(format, args...)))
}

// Info prints plain informational text.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.info.Render(fmt.Sprintf(format, args...)))
}

// Confirmation prints a multi-line message, highlighting @import lines.
func (p *Printer) Confirmation(msg string) {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "@import") {
			lines[i] = p.code.Render(line)
		}
	}
	fmt.Fprint(p.out, strings.Join(lines, "\n"))
}

// Error prints err in the error tone to the error stream. The first line is
// styled; the rest (usage examples) is printed as-is.
func (p *Printer) Error(err error) {
	head, rest, found := strings.Cut(err.Error(), "\n")
	fmt.Fprint(p.err, p.failure.Render("Error: "+head))
	if found {
		fmt.Fprint(p.err, "\n"+rest)
	}
	if !strings.HasSuffix(err.Error(), "\n") {
		fmt.Fprintln(p.err)
	}
}
