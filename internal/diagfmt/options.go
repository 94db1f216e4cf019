package diagfmt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathMode selects how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths relative to the base directory when possible.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode converts a flag value.
func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return PathModeAuto, nil
	case "absolute", "abs":
		return PathModeAbsolute, nil
	case "relative", "rel":
		return PathModeRelative, nil
	case "basename", "base":
		return PathModeBasename, nil
	default:
		return PathModeAuto, fmt.Errorf("invalid path mode %q (expected auto|absolute|relative|basename)", s)
	}
}

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color     bool
	Context   int // extra source lines shown above the primary line
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures machine-readable output.
type JSONOpts struct {
	PathMode     PathMode
	Max          int // truncate per file; 0 means all
	IncludeNotes bool
}

// formatPath renders path per mode. base is the directory relative paths
// are computed against.
func formatPath(path, base string, mode PathMode, virtual bool) string {
	if virtual {
		return path
	}
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative, PathModeAuto:
		if base == "" {
			return filepath.ToSlash(path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(base, abs)
		if err != nil || (mode == PathModeAuto && strings.HasPrefix(rel, "..")) {
			return filepath.ToSlash(path)
		}
		return filepath.ToSlash(rel)
	}
	return path
}
