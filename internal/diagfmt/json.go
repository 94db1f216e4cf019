package diagfmt

import (
	"encoding/json"
	"io"

	"htms/internal/diag"
	"htms/internal/source"
)

// NoteJSON is a secondary location.
type NoteJSON struct {
	Message  string          `json:"message"`
	Location source.Location `json:"location"`
}

// DiagnosticJSON extends the diagnostic wire shape with optional notes.
type DiagnosticJSON struct {
	Severity string          `json:"severity"`
	Message  string          `json:"message"`
	Location source.Location `json:"location"`
	Code     string          `json:"code,omitempty"`
	Notes    []NoteJSON      `json:"notes,omitempty"`
}

// FileJSON is one file's entry.
type FileJSON struct {
	Path        string           `json:"path"`
	Success     bool             `json:"success"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// ReportJSON is the root object of "htms check --format json".
type ReportJSON struct {
	Files    []FileJSON `json:"files"`
	Errors   int        `json:"errors"`
	Warnings int        `json:"warnings"`
}

// BuildReport converts grouped diagnostics to the JSON model.
func BuildReport(files []FileDiagnostics, opts JSONOpts) ReportJSON {
	report := ReportJSON{Files: make([]FileJSON, 0, len(files))}
	for _, fd := range files {
		virtual := fd.File != nil && fd.File.Flags&source.FileVirtual != 0
		entry := FileJSON{
			Path:        formatPath(fd.Path, fd.Base, opts.PathMode, virtual),
			Success:     fd.Success,
			Diagnostics: make([]DiagnosticJSON, 0, len(fd.Diagnostics)),
		}
		errs, warns := diag.Count(fd.Diagnostics)
		report.Errors += errs
		report.Warnings += warns
		for i, d := range fd.Diagnostics {
			if opts.Max > 0 && i >= opts.Max {
				break
			}
			entry.Diagnostics = append(entry.Diagnostics, diagnosticJSON(d, opts.IncludeNotes))
		}
		report.Files = append(report.Files, entry)
	}
	return report
}

func diagnosticJSON(d diag.Diagnostic, notes bool) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.Label(),
		Message:  d.Message,
		Location: d.Primary,
		Code:     d.Code.ID(),
	}
	if notes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: n.Loc})
		}
	}
	return out
}

// JSON writes the indented report.
func JSON(w io.Writer, files []FileDiagnostics, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(files, opts))
}
