package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"htms/internal/codegen"
	"htms/internal/driver"
	"htms/internal/observ"
	"htms/internal/project"
	"htms/internal/source"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [file.htms|directory|-]",
		Short: "Compile htms sources to HTML",
		Long: `Build compiles a file or every *.htms file under a directory and writes
the generated HTML. Settings come from htms.toml (searched upward from the
input), then from --options, then from flags. Without an argument the
directory holding htms.toml is built.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	f := cmd.Flags()
	f.String("out", "", "output directory (default: [build].out_dir or dist)")
	f.String("options", "", "JSON compile options file (comments allowed)")
	f.Bool("no-router", false, "do not emit the client-side router")
	f.Bool("split", false, "write each page to its own template file")
	f.String("title", "", "document title")
	f.String("format", "pretty", "diagnostics format (pretty|json)")
	f.Bool("cache", false, "reuse results from the disk cache")
	f.Bool("clear-cache", false, "drop the disk cache before building")
	f.String("ui", "auto", "progress UI (auto|on|off)")
	f.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

type buildFlags struct {
	out        string
	options    string
	noRouter   bool
	split      bool
	title      string
	format     string
	cache      bool
	clearCache bool
	ui         string
	jobs       int
}

func readBuildFlags(cmd *cobra.Command) (buildFlags, error) {
	f := cmd.Flags()
	var (
		b   buildFlags
		err error
	)
	if b.out, err = f.GetString("out"); err != nil {
		return b, err
	}
	if b.options, err = f.GetString("options"); err != nil {
		return b, err
	}
	if b.noRouter, err = f.GetBool("no-router"); err != nil {
		return b, err
	}
	if b.split, err = f.GetBool("split"); err != nil {
		return b, err
	}
	if b.title, err = f.GetString("title"); err != nil {
		return b, err
	}
	if b.format, err = f.GetString("format"); err != nil {
		return b, err
	}
	if b.format != "pretty" && b.format != "json" {
		return b, fmt.Errorf("unknown format: %s", b.format)
	}
	if b.cache, err = f.GetBool("cache"); err != nil {
		return b, err
	}
	if b.clearCache, err = f.GetBool("clear-cache"); err != nil {
		return b, err
	}
	if b.ui, err = f.GetString("ui"); err != nil {
		return b, err
	}
	b.ui = strings.ToLower(strings.TrimSpace(b.ui))
	switch b.ui {
	case "", "auto":
		b.ui = "auto"
	case "on", "off":
	default:
		return b, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", b.ui)
	}
	if b.jobs, err = f.GetInt("jobs"); err != nil {
		return b, err
	}
	return b, nil
}

// buildPlan is the resolved input, output and codegen configuration.
type buildPlan struct {
	input  string
	outDir string
	jobs   int
	gen    codegen.Options
}

// resolveBuildPlan layers htms.toml, the options file and flags.
func resolveBuildPlan(args []string, b buildFlags) (buildPlan, error) {
	plan := buildPlan{gen: codegen.Options{GenerateRouter: true}, jobs: b.jobs}

	searchFrom := "."
	if len(args) == 1 && args[0] != driver.StdinPath {
		searchFrom = args[0]
		if info, err := os.Stat(searchFrom); err == nil && !info.IsDir() {
			searchFrom = filepath.Dir(searchFrom)
		}
	}
	manifest, found, err := project.Load(searchFrom)
	if err != nil {
		return plan, err
	}

	switch {
	case len(args) == 1:
		plan.input = args[0]
	case found:
		plan.input = manifest.Root
	default:
		return plan, fmt.Errorf("no input given and no %s found", project.ManifestName)
	}

	plan.outDir = project.DefaultOutDir
	if found {
		plan.outDir = manifest.OutDir()
		plan.gen.GenerateRouter = manifest.Router()
		plan.gen.Title = manifest.Config.Build.Title
		plan.gen.SplitTemplates = manifest.Config.Build.Split
		if plan.jobs == 0 {
			plan.jobs = manifest.Config.Build.Jobs
		}
		if plan.gen.TemplateHTML, err = manifest.TemplateHTML(); err != nil {
			return plan, err
		}
	}

	if b.options != "" {
		opts, err := project.LoadCompileOptions(b.options)
		if err != nil {
			return plan, err
		}
		if opts.GenerateRouter != nil {
			plan.gen.GenerateRouter = *opts.GenerateRouter
		}
		if opts.Title != "" {
			plan.gen.Title = opts.Title
		}
		if opts.SourceName != "" {
			plan.gen.SourceName = opts.SourceName
		}
		if opts.TemplateHTML != "" {
			plan.gen.TemplateHTML = opts.TemplateHTML
		}
		if opts.SplitTemplates {
			plan.gen.SplitTemplates = true
		}
	}

	if b.out != "" {
		plan.outDir = b.out
	}
	if b.noRouter {
		plan.gen.GenerateRouter = false
	}
	if b.split {
		plan.gen.SplitTemplates = true
	}
	if b.title != "" {
		plan.gen.Title = b.title
	}
	return plan, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	b, err := readBuildFlags(cmd)
	if err != nil {
		return err
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	plan, err := resolveBuildPlan(args, b)
	if err != nil {
		return err
	}

	return withTracing(cmd, func(ctx context.Context) error {
		timer := observ.NewTimer()
		opts := driver.Options{
			Codegen:        plan.gen,
			MaxDiagnostics: g.maxDiagnostics,
			Jobs:           plan.jobs,
			Timer:          timer,
		}
		if b.cache || b.clearCache {
			cache, err := driver.OpenDiskCache("htms")
			if err != nil {
				return err
			}
			if b.clearCache {
				if err := cache.DropAll(); err != nil {
					return err
				}
			}
			if b.cache {
				opts.Cache = cache
			}
		}

		info, statErr := os.Stat(plan.input)
		isDir := statErr == nil && info.IsDir()
		useUI := b.progressUI(g, isDir, isTerminal(os.Stdout))
		fs, results, err := compileForBuild(ctx, plan.input, opts, useUI)
		if err != nil {
			return err
		}

		base := baseDir(plan.input)
		errs, _, err := reportDiagnostics(cmd.OutOrStdout(), fs, base, results, g, b.format)
		if err != nil {
			return err
		}
		if g.timings {
			printTimings(os.Stderr, timer)
		}
		// частичный вывод не пишем: либо всё, либо ничего
		if errs > 0 {
			return errDiagnostics
		}

		written, err := driver.WriteOutputs(plan.outDir, base, results)
		if err != nil {
			return err
		}
		if !g.quiet && b.format == "pretty" {
			for _, p := range written {
				fmt.Fprintf(os.Stderr, "wrote %s\n", p)
			}
		}
		return nil
	})
}

// progressUI reports whether the build runs behind the progress UI. Only
// directory builds with pretty output get it; "auto" asks the terminal.
func (b buildFlags) progressUI(g globalFlags, inputIsDir, tty bool) bool {
	if g.quiet || b.format != "pretty" || !inputIsDir {
		return false
	}
	switch b.ui {
	case "on":
		return true
	case "off":
		return false
	default:
		return tty
	}
}

// compileForBuild runs a directory build behind the progress UI when ui is
// set, and a plain CompilePath otherwise.
func compileForBuild(ctx context.Context, input string, opts driver.Options, ui bool) (*source.FileSet, []driver.FileResult, error) {
	if ui {
		files, err := driver.ListFiles(input)
		if err != nil {
			return nil, nil, err
		}
		if len(files) > 0 {
			return runCompileWithUI(ctx, "htms build", input, files, opts)
		}
	}
	return driver.CompilePath(ctx, input, driver.ModeBuild, opts)
}
