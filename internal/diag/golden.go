package diag

import (
	"fmt"
	"strings"
)

// FormatGolden renders diagnostics one per line in a stable form suitable
// for golden comparisons:
//
//	error E003 page.htms:3:5 Undefined component: 'Card'
//
// Notes follow their diagnostic as "note" lines when includeNotes is set.
// Order is preserved; callers sort beforehand if they need to.
func FormatGolden(diags []Diagnostic, path string, includeNotes bool) string {
	var b strings.Builder
	for _, d := range diags {
		writeGoldenLine(&b, d.Severity.Label(), d.Code.ID(), path, d.Primary.Line, d.Primary.Column, d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			writeGoldenLine(&b, "note", d.Code.ID(), path, n.Loc.Line, n.Loc.Column, n.Msg)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeGoldenLine(b *strings.Builder, sev, code, path string, line, col uint32, msg string) {
	if code == "" {
		code = "-"
	}
	fmt.Fprintf(b, "%s %s %s:%d:%d %s\n", sev, code, path, line, col, sanitizeMessage(msg))
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
