package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded htms.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the htms.toml layout:
//
//	[package]
//	name = "site"
//
//	[build]
//	out_dir = "dist"
//	router = true
//	title = "My Site"
//	template_html = "index.template.html"
//	split = false
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	OutDir       string `toml:"out_dir"`
	Router       *bool  `toml:"router"`
	Title        string `toml:"title"`
	TemplateHTML string `toml:"template_html"`
	Split        bool   `toml:"split"`
	Jobs         int    `toml:"jobs"`
}

// DefaultOutDir is used when [build].out_dir is absent.
const DefaultOutDir = "dist"

// Load finds and parses the manifest above startDir.
// ok is false when no htms.toml exists.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Build.Jobs < 0 {
		return nil, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// OutDir returns the absolute output directory.
func (m *Manifest) OutDir() string {
	out := m.Config.Build.OutDir
	if out == "" {
		out = DefaultOutDir
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(m.Root, filepath.FromSlash(out))
}

// Router reports whether the router is enabled; it defaults to true.
func (m *Manifest) Router() bool {
	if m.Config.Build.Router == nil {
		return true
	}
	return *m.Config.Build.Router
}

// TemplateHTML reads the host document named by [build].template_html.
// It returns "" when none is configured.
func (m *Manifest) TemplateHTML() (string, error) {
	rel := m.Config.Build.TemplateHTML
	if rel == "" {
		return "", nil
	}
	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(m.Root, filepath.FromSlash(rel))
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("%s: [build].template_html: %w", m.Path, err)
	}
	return string(data), nil
}
