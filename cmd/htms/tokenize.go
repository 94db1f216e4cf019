package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"htms/internal/diag"
	"htms/internal/diagfmt"
	"htms/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.htms|->",
		Short: "Tokenize an htms source file",
		Long:  `Tokenize breaks down an htms source file into its constituent tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	return withTracing(cmd, func(context.Context) error {
		result, err := driver.Tokenize(args[0], g.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}

		// Выводим диагностику в stderr, если есть
		if len(result.Diagnostics) > 0 {
			diagfmt.Pretty(os.Stderr, diagfmt.FileDiagnostics{
				Path:        result.File.Path,
				File:        result.File,
				Diagnostics: result.Diagnostics,
			}, g.prettyOpts())
		}

		switch format {
		case "json":
			err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
		default:
			err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
		}
		if err != nil {
			return err
		}
		if diag.HasErrors(result.Diagnostics) {
			return errDiagnostics
		}
		return nil
	})
}
