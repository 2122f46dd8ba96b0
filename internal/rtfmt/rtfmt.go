// Package rtfmt renders runtime values and errors for a human: colorized,
// Unicode-width-aware REPL echoes (SPEC_FULL.md §1.2, §5), grounded on the
// teacher's internal/diagfmt (colorized diagnostic pretty-printing) but
// aimed at runtime values/errors instead of compiler diagnostics.
package rtfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"myst/internal/rterr"
	"myst/internal/value"
)

// Options controls how Print/PrintError render. Color is typically set
// from whether stdout is a TTY (cmd/myst checks golang.org/x/term).
type Options struct {
	Color bool
}

// palette bundles the color.Color handles Print/PrintError use, built once
// per call so Options.Color toggles them without touching global state
// beyond the documented color.NoColor switch diagfmt.Pretty also flips.
type palette struct {
	kind  *color.Color
	err   *color.Color
	label *color.Color
}

func newPalette() palette {
	return palette{
		kind:  color.New(color.FgCyan),
		err:   color.New(color.FgRed, color.Bold),
		label: color.New(color.FgBlue),
	}
}

// Print writes v's inspected form to w, prefixed with its type name in a
// dimmed color the way an irb/pry-style REPL echoes `=> <value>`.
func Print(w io.Writer, v value.Value, opts Options) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	pal := newPalette()
	fmt.Fprintf(w, "%s %s\n", pal.kind.Sprintf("(%s)", v.TypeName()), value.Inspect(v)) //nolint:errcheck
}

// PrintError writes a *rterr.Error (or any other error, defensively) to w
// in the same "kind: message" shape rterr.Error.Error() produces, colorized
// and with the captured self/call-stack frames listed beneath it the way
// diagfmt.Pretty lists a diagnostic's notes beneath its headline.
func PrintError(w io.Writer, err error, opts Options) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	pal := newPalette()
	rerr, ok := err.(*rterr.Error)
	if !ok {
		fmt.Fprintf(w, "%s %v\n", pal.err.Sprint("error:"), err) //nolint:errcheck
		return
	}

	fmt.Fprintf(w, "%s %s: %s\n", pal.err.Sprint("error:"), rerr.Kind, rerr.Message) //nolint:errcheck
	for _, frame := range rerr.Frames {
		fmt.Fprintf(w, "  %s %s\n", pal.label.Sprint("at"), frame) //nolint:errcheck
	}
}

// DisplayWidth reports the terminal column width of s, honoring East Asian
// wide characters and tabs the same way diagfmt's visualWidthUpTo does for
// diagnostic underlines, used here to align the REPL's input cursor and
// multi-line value previews.
func DisplayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\t' {
			width = (width + 8) / 8 * 8
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

// Truncate shortens s to at most width display columns, appending an
// ellipsis when it does, for previewing long String/List/Map values in a
// single REPL echo line.
func Truncate(s string, width int) string {
	if DisplayWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteRune('…')
	return b.String()
}
