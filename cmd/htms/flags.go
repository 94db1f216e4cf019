package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"htms/internal/diagfmt"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	pathMode       diagfmt.PathMode
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	pf := cmd.Root().PersistentFlags()
	var (
		g   globalFlags
		err error
	)
	if g.color, err = pf.GetString("color"); err != nil {
		return g, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch g.color {
	case "auto", "on", "off":
	default:
		return g, fmt.Errorf("invalid --color value %q (expected auto|on|off)", g.color)
	}
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if g.maxDiagnostics < 0 {
		return g, fmt.Errorf("--max-diagnostics must not be negative")
	}
	pathMode, err := pf.GetString("path-mode")
	if err != nil {
		return g, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if g.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return g, err
	}
	return g, nil
}

// useColor resolves --color for output written to f.
func (g globalFlags) useColor(f *os.File) bool {
	return g.color == "on" || (g.color == "auto" && isTerminal(f))
}

func (g globalFlags) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     g.useColor(os.Stderr),
		Context:   2,
		PathMode:  g.pathMode,
		ShowNotes: true,
	}
}
