package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// CompileOptions is the JSON options file accepted by "htms build --options".
// Comments and trailing commas are allowed.
//
//	{
//	  // emit router script
//	  "generate_router": true,
//	  "title": "Docs",
//	}
type CompileOptions struct {
	GenerateRouter *bool  `json:"generate_router,omitempty"`
	Title          string `json:"title,omitempty"`
	SourceName     string `json:"source_name,omitempty"`
	TemplateHTML   string `json:"template_html,omitempty"`
	SplitTemplates bool   `json:"split_templates,omitempty"`
}

// ParseCompileOptions decodes JSON-with-comments.
func ParseCompileOptions(data []byte) (CompileOptions, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return CompileOptions{}, err
	}
	var opts CompileOptions
	if err := json.Unmarshal(std, &opts); err != nil {
		return CompileOptions{}, err
	}
	return opts, nil
}

// LoadCompileOptions reads and decodes the options file at path.
func LoadCompileOptions(path string) (CompileOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CompileOptions{}, fmt.Errorf("failed to read options: %w", err)
	}
	opts, err := ParseCompileOptions(data)
	if err != nil {
		return CompileOptions{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Router reports whether the router is requested; it defaults to true.
func (o CompileOptions) Router() bool {
	return o.GenerateRouter == nil || *o.GenerateRouter
}
