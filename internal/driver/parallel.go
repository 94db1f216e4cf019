package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"htms/internal/codegen"
	"htms/internal/diag"
	"htms/internal/observ"
	"htms/internal/source"
	"htms/internal/trace"
)

// SourceExt is the extension of HTMS source files.
const SourceExt = ".htms"

// Mode selects how far each file goes through the pipeline.
type Mode uint8

const (
	ModeCheck Mode = iota // lex, parse, analyze
	ModeBuild             // plus codegen
)

func (m Mode) String() string {
	if m == ModeBuild {
		return "build"
	}
	return "check"
}

// FileResult is the result for one file of a path compile.
type FileResult struct {
	Path   string
	FileID source.FileID
	// Loaded is false when the file could not be read; FileID is then
	// meaningless and Diagnostics holds a single IO001 error.
	Loaded bool
	Result
}

// ListFiles returns the sorted .htms files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .cache) пропускаем
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompilePath compiles a single file, stdin ("-"), or every .htms file
// under a directory. Files are independent programs; directory entries are
// compiled in parallel and returned sorted by path.
func CompilePath(ctx context.Context, path string, mode Mode, opts Options) (*source.FileSet, []FileResult, error) {
	if path != StdinPath {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			return CompileDir(ctx, path, mode, opts)
		}
	}
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, nil, err
	}
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+file.Path)
	res, err := compileMode(ctx, file.Content, mode, opts)
	span.End(outcome(&res))
	if err != nil {
		return fs, nil, err
	}
	return fs, []FileResult{{Path: file.Path, FileID: file.ID, Loaded: true, Result: res}}, nil
}

// CompileDir compiles every .htms file under dir.
func CompileDir(ctx context.Context, dir string, mode Mode, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: грузим всё до старта горутин.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusQueued})
	}

	// индекс i уникален для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				results[i] = FileResult{
					Path: path,
					Result: Result{Files: []codegen.File{}, Diagnostics: []diag.Diagnostic{
						diag.NewError(diag.IOLoadFileError, source.Location{}, "failed to load file: "+loadErr.Error()),
					}},
				}
				emit(opts.Progress, Event{File: path, Status: StatusError})
				return nil
			}

			file := fileSet.Get(fileIDs[path])
			fileOpts := opts
			fileOpts.Timer = observ.NewTimer()
			fileOpts.Observer = func(ev PhaseEvent) {
				if ev.Status == PhaseStart {
					emit(opts.Progress, Event{File: path, Stage: ev.Stage, Status: StatusWorking})
				}
				if opts.Observer != nil {
					opts.Observer(ev)
				}
			}

			fctx, span := trace.StartSpan(gctx, trace.ScopeFile, "file:"+file.Path)
			res, err := compileMode(fctx, file.Content, mode, fileOpts)
			span.End(outcome(&res))
			if err != nil {
				emit(opts.Progress, Event{File: path, Status: StatusError})
				return fmt.Errorf("%s: %w", path, err)
			}
			if opts.Timer != nil {
				opts.Timer.Merge(fileOpts.Timer)
			}

			results[i] = FileResult{Path: path, FileID: file.ID, Loaded: true, Result: res}
			emit(opts.Progress, Event{File: path, Status: fileStatus(&res), Elapsed: fileElapsed(fileOpts.Timer)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func compileMode(ctx context.Context, src []byte, mode Mode, opts Options) (Result, error) {
	if mode == ModeBuild {
		return Compile(ctx, src, opts)
	}
	return Check(ctx, src, opts)
}

func outcome(res *Result) string {
	errs, warns := res.Counts()
	switch {
	case res.Cached:
		return "cached"
	case errs > 0:
		return fmt.Sprintf("%d errors", errs)
	case warns > 0:
		return fmt.Sprintf("ok, %d warnings", warns)
	default:
		return "ok"
	}
}

func fileStatus(res *Result) Status {
	switch {
	case res.Cached:
		return StatusCached
	case diag.HasErrors(res.Diagnostics):
		return StatusError
	default:
		return StatusDone
	}
}

func fileElapsed(t *observ.Timer) time.Duration {
	return time.Duration(t.Report().TotalMS * float64(time.Millisecond))
}
