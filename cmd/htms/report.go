package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"htms/internal/diagfmt"
	"htms/internal/driver"
	"htms/internal/observ"
	"htms/internal/source"
)

// fileDiagnostics groups the results for the renderers.
func fileDiagnostics(fs *source.FileSet, base string, results []driver.FileResult) []diagfmt.FileDiagnostics {
	out := make([]diagfmt.FileDiagnostics, 0, len(results))
	for _, r := range results {
		fd := diagfmt.FileDiagnostics{
			Path:        r.Path,
			Base:        base,
			Diagnostics: r.Diagnostics,
			Success:     r.Success,
		}
		if r.Loaded && fs != nil {
			fd.File = fs.Get(r.FileID)
		}
		out = append(out, fd)
	}
	return out
}

// reportDiagnostics prints diagnostics of every file, pretty to stderr or
// as one JSON report to stdout, and returns the totals.
func reportDiagnostics(stdout io.Writer, fs *source.FileSet, base string, results []driver.FileResult, g globalFlags, format string) (errs, warns int, err error) {
	files := fileDiagnostics(fs, base, results)
	for i := range results {
		e, w := results[i].Counts()
		errs += e
		warns += w
	}

	if format == "json" {
		opts := diagfmt.JSONOpts{PathMode: g.pathMode, Max: g.maxDiagnostics, IncludeNotes: true}
		return errs, warns, diagfmt.JSON(stdout, files, opts)
	}

	prettyOpts := g.prettyOpts()
	for _, fd := range files {
		if len(fd.Diagnostics) > 0 {
			diagfmt.Pretty(os.Stderr, fd, prettyOpts)
		}
	}
	if !g.quiet || errs > 0 {
		diagfmt.Summary(os.Stderr, errs, warns, len(files), prettyOpts.Color)
	}
	return errs, warns, nil
}

// baseDir is the directory paths are shown relative to.
func baseDir(path string) string {
	if path == driver.StdinPath {
		return ""
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	if abs, err := filepath.Abs(filepath.Dir(path)); err == nil {
		return abs
	}
	return filepath.Dir(path)
}

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
