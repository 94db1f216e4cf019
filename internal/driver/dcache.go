package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"htms/internal/codegen"
	"htms/internal/diag"
	"htms/internal/project"
	"htms/internal/source"
)

// Bump when CachePayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// CacheKey identifies one (source, options) pair.
type CacheKey = project.Digest

// DiskCache stores compile results keyed by content hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is what gets written to disk for one key.
type CachePayload struct {
	Schema      uint16
	Success     bool
	Files       []codegen.File
	Diagnostics []cachedDiagnostic
}

type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Loc      [4]uint32 // line, column, start, end
	Notes    []cachedNote
}

type cachedNote struct {
	Loc [4]uint32
	Msg string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := key.String()
	// два символа префикса, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, "results", hexKey[:2], hexKey+".mp")
}

// Put writes payload atomically: encode to a temp file, then rename.
func (c *DiskCache) Put(key CacheKey, payload *CachePayload) error {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get loads the payload for key. A missing entry or an entry written with
// another schema version is a miss, not an error.
func (c *DiskCache) Get(key CacheKey, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельный процесс не увидел полуудалённый каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.MkdirAll(c.dir, 0o755)
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// NewCacheKey hashes the source together with every option that can
// change the result.
func NewCacheKey(src []byte, opts Options) CacheKey {
	content := project.Digest(sha256.Sum256(src))

	h := sha256.New()
	var buf [binary.MaxVarintLen64]byte
	binary.LittleEndian.PutUint16(buf[:2], diskCacheSchemaVersion)
	_, _ = h.Write(buf[:2])
	writeString := func(s string) {
		n := binary.PutUvarint(buf[:], uint64(len(s)))
		_, _ = h.Write(buf[:n])
		_, _ = h.Write([]byte(s))
	}
	writeBool := func(b bool) {
		if b {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	}
	writeString(opts.backend())
	writeString(opts.Codegen.SourceName)
	writeString(opts.Codegen.Title)
	writeString(opts.Codegen.TemplateHTML)
	writeBool(opts.Codegen.GenerateRouter)
	writeBool(opts.Codegen.SplitTemplates)
	maxDiags, err := safecast.Conv[uint32](opts.MaxDiagnostics)
	if err != nil {
		maxDiags = 0
	}
	binary.LittleEndian.PutUint32(buf[:4], maxDiags)
	_, _ = h.Write(buf[:4])

	var optsDigest project.Digest
	copy(optsDigest[:], h.Sum(nil))
	return project.Combine(content, optsDigest)
}

func newCachePayload(res *Result) *CachePayload {
	p := &CachePayload{
		Schema:      diskCacheSchemaVersion,
		Success:     res.Success,
		Files:       res.Files,
		Diagnostics: make([]cachedDiagnostic, len(res.Diagnostics)),
	}
	for i, d := range res.Diagnostics {
		cd := cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Loc:      packLoc(d.Primary),
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Loc: packLoc(n.Loc), Msg: n.Msg})
		}
		p.Diagnostics[i] = cd
	}
	return p
}

func (p *CachePayload) result() Result {
	res := Result{
		Success:     p.Success,
		Files:       p.Files,
		Diagnostics: make([]diag.Diagnostic, len(p.Diagnostics)),
		Cached:      true,
	}
	if res.Files == nil {
		res.Files = []codegen.File{}
	}
	for i, cd := range p.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), unpackLoc(cd.Loc), cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(unpackLoc(n.Loc), n.Msg)
		}
		res.Diagnostics[i] = d
	}
	return res
}

func packLoc(l source.Location) [4]uint32 {
	return [4]uint32{l.Line, l.Column, l.Start, l.End}
}

func unpackLoc(v [4]uint32) source.Location {
	return source.Location{Line: v[0], Column: v[1], Start: v[2], End: v[3]}
}
