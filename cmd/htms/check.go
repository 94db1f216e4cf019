package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"htms/internal/driver"
	"htms/internal/observ"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file.htms|directory|->",
		Short: "Check htms sources for errors",
		Long: `Check scans, parses and analyzes a file or every *.htms file under a
directory. Nothing is generated. The exit status is 1 when any error is found.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	return withTracing(cmd, func(ctx context.Context) error {
		timer := observ.NewTimer()
		opts := driver.Options{
			MaxDiagnostics: g.maxDiagnostics,
			Jobs:           jobs,
			Timer:          timer,
		}
		fs, results, err := driver.CompilePath(ctx, args[0], driver.ModeCheck, opts)
		if err != nil {
			return err
		}

		errs, _, err := reportDiagnostics(cmd.OutOrStdout(), fs, baseDir(args[0]), results, g, format)
		if err != nil {
			return err
		}
		if g.timings {
			printTimings(os.Stderr, timer)
		}
		if errs > 0 {
			return errDiagnostics
		}
		return nil
	})
}
