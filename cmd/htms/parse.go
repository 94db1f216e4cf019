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

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.htms|->",
		Short: "Parse an htms source file and output its AST",
		Long:  `Parse analyzes an htms source file and prints its abstract syntax tree`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	return withTracing(cmd, func(context.Context) error {
		result, err := driver.Parse(args[0], g.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}

		if len(result.Diagnostics) > 0 {
			diagfmt.Pretty(os.Stderr, diagfmt.FileDiagnostics{
				Path:        result.File.Path,
				File:        result.File,
				Diagnostics: result.Diagnostics,
			}, g.prettyOpts())
		}
		// партиальное дерево после синтаксической ошибки не печатаем
		if diag.HasErrors(result.Diagnostics) {
			return errDiagnostics
		}

		if format == "json" {
			return diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Program)
		}
		return diagfmt.FormatASTPretty(cmd.OutOrStdout(), result.Program)
	})
}
