package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteOutputs writes the generated files of every successful result under
// outDir. A file compiled from base/sub/x.htms lands in outDir/sub/.
// It returns the written paths in result order.
func WriteOutputs(outDir, base string, results []FileResult) ([]string, error) {
	owners := make(map[string]string)
	var written []string
	for i := range results {
		r := &results[i]
		if !r.Success || len(r.Files) == 0 {
			continue
		}
		sub := "."
		if base != "" {
			if rel, err := filepath.Rel(base, filepath.Dir(r.Path)); err == nil && !escapes(rel) {
				sub = rel
			}
		}
		for _, f := range r.Files {
			dst := filepath.Join(outDir, sub, filepath.FromSlash(f.Path))
			if prev, dup := owners[dst]; dup {
				return written, fmt.Errorf("output %s is produced by both %s and %s", dst, prev, r.Path)
			}
			owners[dst] = r.Path
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return written, fmt.Errorf("failed to create output dir: %w", err)
			}
			if err := os.WriteFile(dst, []byte(f.Content), 0o644); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", dst, err)
			}
			written = append(written, dst)
		}
	}
	return written, nil
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
