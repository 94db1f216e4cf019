package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"htms/internal/diag"
	"htms/internal/source"
)

// FileDiagnostics groups the diagnostics of one source file.
type FileDiagnostics struct {
	Path string
	// File is nil when the file could not be loaded; locations are then
	// not rendered.
	File        *source.File
	Base        string // directory for relative paths
	Diagnostics []diag.Diagnostic
	Success     bool
}

type palette struct {
	err, warn, info, note, code, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes each diagnostic as
//
//	path:line:col: error E003: message
//	   3 | page home "/" { Missing }
//	     |                 ^~~~~~~
//	  = note: path:1:1: first declared here
func Pretty(w io.Writer, fd FileDiagnostics, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	virtual := fd.File != nil && fd.File.Flags&source.FileVirtual != 0
	path := formatPath(fd.Path, fd.Base, opts.PathMode, virtual)

	for _, d := range fd.Diagnostics {
		sev := pal.severity(d.Severity)
		header := d.Severity.Label()
		if id := d.Code.ID(); id != "" {
			header += " " + id
		}
		if fd.File == nil || d.Primary == (source.Location{}) {
			fmt.Fprintf(w, "%s: %s: %s\n", pal.path.Sprint(path), sev.Sprint(header), d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s: %s\n", pal.path.Sprintf("%s:%s", path, d.Primary), sev.Sprint(header), d.Message)
			writeSnippet(w, fd.File, d.Primary, opts.Context, pal)
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s:%s: %s\n", pal.note.Sprint("= note:"), path, n.Loc, n.Msg)
		}
	}
}

// writeSnippet prints the primary line (plus context lines above) and a
// caret line under the covered bytes.
func writeSnippet(w io.Writer, f *source.File, loc source.Location, context int, pal palette) {
	line := loc.Line
	if line == 0 || line > f.LineCount() {
		return
	}
	first := line
	for context > 0 && first > 1 {
		first--
		context--
	}
	width := len(fmt.Sprint(line))
	for n := first; n <= line; n++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width+2, n), f.GetLine(n))
	}

	text := f.GetLine(line)
	lineStart := loc.Start - (loc.Column - 1)
	col := int(loc.Column - 1)
	if col > len(text) {
		col = len(text)
	}
	// span ends at the end of the line when it covers several lines
	end := int(loc.End - lineStart)
	if end > len(text) || loc.End < lineStart {
		end = len(text)
	}
	if end <= col {
		end = col + 1
	}

	pad := indentFor(text[:col])
	span := runewidth.StringWidth(safeSlice(text, col, end))
	if span < 1 {
		span = 1
	}
	marker := "^" + strings.Repeat("~", span-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", width+2, ""), pad, pal.caret.Sprint(marker))
}

// indentFor keeps tabs so the caret lines up with tab-indented source.
func indentFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func safeSlice(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// Summary writes "N errors, M warnings" or "ok".
func Summary(w io.Writer, errors, warnings, files int, colored bool) {
	pal := newPalette(colored)
	var parts []string
	if errors > 0 {
		parts = append(parts, pal.err.Sprint(plural(errors, "error")))
	}
	if warnings > 0 {
		parts = append(parts, pal.warn.Sprint(plural(warnings, "warning")))
	}
	if len(parts) == 0 {
		parts = append(parts, pal.caret.Sprint("ok"))
	}
	fmt.Fprintf(w, "%s (%s checked)\n", strings.Join(parts, ", "), plural(files, "file"))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
