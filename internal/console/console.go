package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the human-readable progress and failure lines of a run.
// Progress goes to out, failures and warnings to errOut. Colours are only
// emitted when the writer is a terminal that supports them.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool

	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	hunk    lipgloss.Style
	deleted lipgloss.Style
	added   lipgloss.Style
}

// New creates a Printer. A quiet Printer drops progress lines only.
func New(out, errOut io.Writer, quiet bool) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:     out,
		errOut:  errOut,
		quiet:   quiet,
		info:    outR.NewStyle(),
		success: outR.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")),
		warn:    errR.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		fail:    errR.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
		hunk:    outR.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		deleted: outR.NewStyle().Foreground(lipgloss.Color("#FF0000")).TabWidth(lipgloss.NoTabConversion),
		added:   outR.NewStyle().Foreground(lipgloss.Color("#00FF00")).TabWidth(lipgloss.NoTabConversion),
	}
}

// Infof prints a progress line.
func (p *Printer) Infof(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.info.Render(fmt.Sprintf(format, args...)))
}

// Successf prints the final line of a successful run.
func (p *Printer) Successf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.success.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning to the error stream, even when quiet.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.warn.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Failf prints a failure to the error stream, even when quiet.
func (p *Printer) Failf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.fail.Render("error: "+fmt.Sprintf(format, args...)))
}

// Diff prints a unified diff, colouring hunk headers and changed lines.
// The diff is printed even when quiet since it was asked for explicitly.
func (p *Printer) Diff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "@@"):
			text = p.hunk.Render(text)
		case strings.HasPrefix(text, "-"):
			text = p.deleted.Render(text)
		case strings.HasPrefix(text, "+"):
			text = p.added.Render(text)
		}
		fmt.Fprintln(p.out, text)
	}
}
