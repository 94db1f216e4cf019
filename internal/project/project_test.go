package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "site"

[build]
out_dir = "public"
router = false
title = "Docs"
template_html = "host.html"
`)
	writeFile(t, filepath.Join(root, "host.html"), "<body></body>")
	nested := filepath.Join(root, "pages", "blog")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "site" || m.Config.Build.Title != "Docs" {
		t.Fatalf("unexpected config %+v", m.Config)
	}
	if m.Router() {
		t.Fatalf("router should be disabled")
	}
	if got, want := m.OutDir(), filepath.Join(root, "public"); got != want {
		t.Fatalf("OutDir = %q, want %q", got, want)
	}
	tmpl, err := m.TemplateHTML()
	if err != nil || tmpl != "<body></body>" {
		t.Fatalf("TemplateHTML = %q, %v", tmpl, err)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		// A stray htms.toml above the temp dir would make this flaky; report it plainly.
		t.Skip("found an htms.toml above the temp directory")
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no package", "[build]\nout_dir = \"x\"\n", "missing [package]"},
		{"empty name", "[package]\nname = \" \"\n", "missing [package].name"},
		{"unknown key", "[package]\nname = \"a\"\n[build]\noutdir = \"x\"\n", "unknown key \"build.outdir\""},
		{"bad toml", "[package\n", "failed to parse TOML"},
		{"negative jobs", "[package]\nname = \"a\"\n[build]\njobs = -1\n", "jobs must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	m := &Manifest{Root: "/srv/site"}
	if !m.Router() {
		t.Fatalf("router defaults to true")
	}
	if got := m.OutDir(); got != filepath.Join("/srv/site", DefaultOutDir) {
		t.Fatalf("OutDir = %q", got)
	}
	if tmpl, err := m.TemplateHTML(); tmpl != "" || err != nil {
		t.Fatalf("expected no template, got %q, %v", tmpl, err)
	}
}

func TestParseCompileOptions(t *testing.T) {
	opts, err := ParseCompileOptions([]byte(`{
		// comments are fine
		"generate_router": false,
		"title": "Docs",
		"split_templates": true,
	}`))
	if err != nil {
		t.Fatalf("ParseCompileOptions: %v", err)
	}
	if opts.Router() || opts.Title != "Docs" || !opts.SplitTemplates {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !(CompileOptions{}).Router() {
		t.Fatalf("router defaults to true")
	}
	if _, err := ParseCompileOptions([]byte(`{"title": 1}`)); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a, b := Digest{1}, Digest{2}
	if Combine(a, b) == Combine(b, a) {
		t.Fatalf("Combine should depend on order")
	}
	if !(Digest{}).IsZero() || a.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
	if len(a.String()) != 64 {
		t.Fatalf("hex digest should be 64 chars")
	}
}
