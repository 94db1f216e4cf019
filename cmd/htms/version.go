package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"htms/internal/codegen"
	"htms/internal/version"
)

type versionPayload struct {
	Tool string `json:"tool"`
	version.Info
	Backends []string `json:"backends"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show htms build information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch strings.ToLower(format) {
	case "json":
		return renderVersionJSON(cmd.OutOrStdout())
	case "pretty":
		g, err := readGlobalFlags(cmd)
		if err != nil {
			return err
		}
		renderVersionPretty(cmd.OutOrStdout(), g.useColor(os.Stdout))
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func renderVersionPretty(out io.Writer, colored bool) {
	fmt.Fprintln(out, version.Banner(colored))
	fmt.Fprintf(out, "backends: %s\n", strings.Join(codegen.Backends(), ", "))
}

func renderVersionJSON(out io.Writer) error {
	payload := versionPayload{
		Tool:     "htms",
		Info:     version.Current(),
		Backends: codegen.Backends(),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
