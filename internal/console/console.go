// Package console writes the colored progress output of a scaffold run.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/create-littlejs/internal/config"
	"github.com/conn-castle/create-littlejs/internal/terminal"
)

// Reporter prints progress to Out and diagnostics to Err.
type Reporter struct {
	out     io.Writer
	err     io.Writer
	verbose bool

	warnColor    *color.Color
	errorColor   *color.Color
	successColor *color.Color
	diffAdd      *color.Color
	diffDel      *color.Color
	diffHunk     *color.Color
}

var isTerminalWriter = terminal.IsTerminalWriter

// New returns a Reporter. colorMode is one of the config.Color* values; an
// empty mode behaves like config.ColorAuto.
func New(out io.Writer, errOut io.Writer, verbose bool, colorMode string) *Reporter {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	r := &Reporter{
		out:          out,
		err:          errOut,
		verbose:      verbose,
		warnColor:    color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed),
		successColor: color.New(color.FgGreen, color.Bold),
		diffAdd:      color.New(color.FgGreen),
		diffDel:      color.New(color.FgRed),
		diffHunk:     color.New(color.FgCyan),
	}
	enabled := colorEnabled(colorMode, out)
	for _, c := range r.colors() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminalWriter(out)
}

func (r *Reporter) colors() []*color.Color {
	return []*color.Color{r.warnColor, r.errorColor, r.successColor, r.diffAdd, r.diffDel, r.diffHunk}
}

// Verbose reports whether verbose output is enabled.
func (r *Reporter) Verbose() bool {
	return r.verbose
}

// Line prints msg followed by a newline.
func (r *Reporter) Line(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

// Linef prints a formatted line.
func (r *Reporter) Linef(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

// Blank prints an empty line.
func (r *Reporter) Blank() {
	_, _ = fmt.Fprintln(r.out)
}

// Warn prints msg in yellow.
func (r *Reporter) Warn(msg string) {
	_, _ = r.warnColor.Fprintln(r.out, msg)
}

// Warnf prints a formatted warning in yellow.
func (r *Reporter) Warnf(format string, args ...any) {
	r.Warn(fmt.Sprintf(format, args...))
}

// Success prints msg in bold green.
func (r *Reporter) Success(msg string) {
	_, _ = r.successColor.Fprintln(r.out, msg)
}

// Error prints header and err in red on the error writer.
func (r *Reporter) Error(header string, err error) {
	_, _ = r.errorColor.Fprintln(r.err, header)
	_, _ = r.errorColor.Fprintln(r.err, err.Error())
}

// Verbosef prints a formatted line only in verbose mode.
func (r *Reporter) Verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	r.Linef(format, args...)
}

// Diff prints a unified diff in verbose mode, coloring added and removed lines.
func (r *Reporter) Diff(diff string) {
	if !r.verbose || diff == "" {
		return
	}
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, _ = fmt.Fprint(r.out, line)
		case strings.HasPrefix(line, "@@"):
			_, _ = r.diffHunk.Fprint(r.out, line)
		case strings.HasPrefix(line, "+"):
			_, _ = r.diffAdd.Fprint(r.out, line)
		case strings.HasPrefix(line, "-"):
			_, _ = r.diffDel.Fprint(r.out, line)
		default:
			_, _ = fmt.Fprint(r.out, line)
		}
	}
	if !strings.HasSuffix(diff, "\n") {
		_, _ = fmt.Fprintln(r.out)
	}
}
