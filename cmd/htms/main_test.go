package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color", "off", "--quiet"}, args...))
	err := root.Execute()
	return stdout.String(), err
}

const homePage = "page home \"/\" { p {{ hello }} }\n"

func TestCheckCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.htms":        homePage,
		"bad/x.htms":     "page home \"/\" { Missing }\n",
		".hidden/h.htms": "garbage {{",
	})

	out, err := execute(t, "check", "--format", "json", dir)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("err = %v, want errDiagnostics", err)
	}
	var report struct {
		Files []struct {
			Path    string `json:"path"`
			Success bool   `json:"success"`
		} `json:"files"`
		Errors int `json:"errors"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if len(report.Files) != 2 || report.Errors == 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Files[0].Path != "bad/x.htms" || report.Files[0].Success {
		t.Fatalf("first file = %+v, want failing bad/x.htms", report.Files[0])
	}
	if !report.Files[1].Success {
		t.Fatalf("ok.htms should succeed: %+v", report.Files[1])
	}

	if _, err := execute(t, "check", filepath.Join(dir, "ok.htms")); err != nil {
		t.Fatalf("check ok.htms: %v", err)
	}
}

func TestCheckRejectsUnknownFormat(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.htms": homePage})
	_, err := execute(t, "check", "--format", "xml", dir)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildCommandWritesOutputs(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"site/home.htms":       homePage,
		"site/docs/guide.htms": "page guide \"/guide\" { h1 {{ Guide }} }\n",
	})
	out := filepath.Join(dir, "out")

	if _, err := execute(t, "build", "--ui", "off", "--no-router", "--out", out, filepath.Join(dir, "site")); err != nil {
		t.Fatalf("build: %v", err)
	}
	home, err := os.ReadFile(filepath.Join(out, "home.html"))
	if err != nil {
		t.Fatalf("read home.html: %v", err)
	}
	if !strings.Contains(string(home), "hello") || strings.Contains(string(home), "<script>") {
		t.Fatalf("unexpected home.html:\n%s", home)
	}
	if _, err := os.Stat(filepath.Join(out, "docs", "guide.html")); err != nil {
		t.Fatalf("guide.html not mirrored: %v", err)
	}
}

func TestBuildCommandWritesNothingOnErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.htms": homePage,
		"b.htms": "page other \"/o\" { Missing }\n",
	})
	out := filepath.Join(dir, "out")
	_, err := execute(t, "build", "--ui", "off", "--out", out, dir)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("err = %v, want errDiagnostics", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output dir should not exist, stat err = %v", err)
	}
}

func TestResolveBuildPlan(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"htms.toml": `[package]
name = "site"

[build]
out_dir = "public"
router = false
title = "From Manifest"
split = true
jobs = 3
`,
		"pages/home.htms": homePage,
		"opts.json": `{
  // comments are fine
  "generate_router": true,
  "title": "From Options",
}`,
	})

	plan, err := resolveBuildPlan([]string{filepath.Join(dir, "pages")}, buildFlags{})
	if err != nil {
		t.Fatalf("resolveBuildPlan: %v", err)
	}
	if plan.outDir != filepath.Join(dir, "public") {
		t.Fatalf("outDir = %q", plan.outDir)
	}
	if plan.gen.GenerateRouter || !plan.gen.SplitTemplates || plan.gen.Title != "From Manifest" || plan.jobs != 3 {
		t.Fatalf("manifest settings not applied: %+v jobs=%d", plan.gen, plan.jobs)
	}

	plan, err = resolveBuildPlan([]string{filepath.Join(dir, "pages")}, buildFlags{options: filepath.Join(dir, "opts.json")})
	if err != nil {
		t.Fatalf("resolveBuildPlan with options: %v", err)
	}
	if !plan.gen.GenerateRouter || plan.gen.Title != "From Options" {
		t.Fatalf("options not applied: %+v", plan.gen)
	}

	plan, err = resolveBuildPlan([]string{filepath.Join(dir, "pages")}, buildFlags{
		options:  filepath.Join(dir, "opts.json"),
		noRouter: true,
		title:    "From Flag",
		out:      "elsewhere",
	})
	if err != nil {
		t.Fatalf("resolveBuildPlan with flags: %v", err)
	}
	if plan.gen.GenerateRouter || plan.gen.Title != "From Flag" || plan.outDir != "elsewhere" {
		t.Fatalf("flags not applied: %+v out=%q", plan.gen, plan.outDir)
	}
}

func TestResolveBuildPlanWithoutInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if _, err := resolveBuildPlan(nil, buildFlags{}); err == nil || !strings.Contains(err.Error(), "htms.toml") {
		t.Fatalf("err = %v, want missing manifest", err)
	}
}

func TestTokenizeJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.htms": homePage})
	out, err := execute(t, "tokenize", "--format", "json", filepath.Join(dir, "a.htms"))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var toks []struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(toks) == 0 || toks[0].Kind != "Page" || toks[len(toks)-1].Kind != "Eof" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestParseTree(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.htms": homePage})
	out, err := execute(t, "parse", filepath.Join(dir, "a.htms"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(out, "Program") || !strings.Contains(out, "Page home") {
		t.Fatalf("unexpected tree:\n%s", out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if payload["tool"] != "htms" || payload["version"] == "" || payload["go_version"] == nil {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestBuildRejectsUnknownUIMode(t *testing.T) {
	dir := writeFiles(t, map[string]string{"home.htms": homePage})
	_, err := execute(t, "build", "--ui", "sometimes", "--out", filepath.Join(dir, "out"), dir)
	if err == nil || !strings.Contains(err.Error(), "invalid --ui value") {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildProgressUIGating(t *testing.T) {
	tests := []struct {
		name  string
		ui    string
		quiet bool
		json  bool
		dir   bool
		tty   bool
		want  bool
	}{
		{"auto_tty_dir", "auto", false, false, true, true, true},
		{"auto_no_tty", "auto", false, false, true, false, false},
		{"on_without_tty", "on", false, false, true, false, true},
		{"off_with_tty", "off", false, false, true, true, false},
		{"single_file", "on", false, false, false, true, false},
		{"quiet", "on", true, false, true, true, false},
		{"json_output", "on", false, true, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildFlags{ui: tt.ui, format: "pretty"}
			if tt.json {
				b.format = "json"
			}
			got := b.progressUI(globalFlags{quiet: tt.quiet}, tt.dir, tt.tty)
			if got != tt.want {
				t.Fatalf("progressUI = %v, want %v", got, tt.want)
			}
		})
	}
}
