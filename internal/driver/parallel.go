package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
)

// SourceExt is the file extension the directory walker picks up.
const SourceExt = ".em"

// FileResult holds the outcome for one file of a directory tokenization.
type FileResult struct {
	Path   string
	FileID source.FileID
	Buffer *lexer.Buffer
	Bag    *diag.Bag
}

// ProgressFunc observes per-file completion during TokenizeDir. It is called
// from worker goroutines; implementations must be safe for concurrent use.
type ProgressFunc func(done, total int, path string)

// DirOptions configures TokenizeDir.
type DirOptions struct {
	MaxDiagnostics int
	Jobs           int // <= 0 means GOMAXPROCS
	Progress       ProgressFunc
}

// ListSourceFiles returns every *.em file under dir, sorted for
// deterministic output ordering.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
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

// TokenizeDir lexes every source file under dir concurrently. Each file gets
// its own Buffer and Bag, so workers never share mutable state; results come
// back in sorted path order regardless of completion order. Files that fail
// to load still yield a result, carrying an I/O diagnostic instead of
// tokens.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading mutates the FileSet, so it happens up front on one goroutine;
	// the workers only read.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

	results := make([]FileResult, len(files))
	var done atomicCounter

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = FileResult{Path: path, Bag: bag}
			} else {
				fileID := fileIDs[path]
				buf := lexer.Lex(fileSet.Get(fileID), lexer.Options{
					Reporter: diag.BagReporter{Bag: bag},
				})
				// Slot i is owned by this goroutine alone.
				results[i] = FileResult{Path: path, FileID: fileID, Buffer: buf, Bag: bag}
			}

			if opts.Progress != nil {
				opts.Progress(done.inc(), len(files), path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
