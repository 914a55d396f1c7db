package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"letcalc/internal/diag"
	"letcalc/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	code, gutter, caret   *color.Color
	bold                  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.FgMagenta),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее). Для каждой:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	  12 | let x = (1 + 2;
//	     |               ^
//
// затем Notes в том же формате, если включены.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeHeader(w, fs, pal, d.Primary, pal.severity(d.Severity).Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID())+": "+pal.bold.Sprint(d.Message), opts)
		writeExcerpt(w, fs, pal, d.Primary, opts)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			writeHeader(w, fs, pal, n.Span, pal.note.Sprint("note"), n.Msg, opts)
			writeExcerpt(w, fs, pal, n.Span, opts)
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, pal palette, sp source.Span, label, msg string, opts PrettyOpts) {
	if int(sp.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s\n", label, msg)
		return
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	loc := fmt.Sprintf("%s:%d:%d:", formatPath(fs, f, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s %s %s\n", pal.bold.Sprint(loc), label, msg)
}

func writeExcerpt(w io.Writer, fs *source.FileSet, pal palette, sp source.Span, opts PrettyOpts) {
	if int(sp.File) >= fs.Len() {
		return
	}
	f := fs.Get(sp.File)
	if len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}

	first := start.Line
	if opts.Context > 0 {
		if int(first) > opts.Context {
			first -= uint32(opts.Context) // #nosec G115 -- Context is small and checked above
		} else {
			first = 1
		}
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(f.GetLine(ln), tab)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf(" %*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(max(int(end.Col)-1, col), len(line))
	}
	pad := runewidth.StringWidth(expandTabs(line[:col], tab))
	width := max(runewidth.StringWidth(expandTabs(line[col:endCol], tab)), 1)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf(" %*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(marker))
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
