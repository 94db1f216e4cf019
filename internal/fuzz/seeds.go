package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

// builtinSeeds cover every construct even when testdata is missing.
var builtinSeeds = []string{
	"",
	"page home \"/\" { p {{ hello }} }\n",
	"component Card(title: heading) [class: \"card\"] { div { @slot } }\n",
	"section Nav { ul { @each ctx.links as link, i { li {{ ${link.label} }} } } }\n",
	"page p \"/x\" { @if a == 1 { b } @else @if a > 2 { c } @else { d } }\n",
	"page p \"/x\" { button [onClick.stop.prevent: save(item.id, 'x')] {{ Save }} }\n",
	"page p \"/x\" { span [title: ok ? \"yes\" : \"no\" ] item.title }\n",
	"/* block */ // line\npage p \"/\" {}\n",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.htms файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".htms" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
