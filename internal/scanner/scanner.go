package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"credit-scan/internal/model"
)

// FileWalker traverses a source tree and feeds matching file paths to
// a channel
type FileWalker struct {
	Extensions map[string]struct{}
	Excludes   []string
}

func NewFileWalker(exts []string, excludes []string) *FileWalker {
	e := make(map[string]struct{})
	for _, ext := range exts {
		e[strings.ToLower(ext)] = struct{}{}
	}
	return &FileWalker{
		Extensions: e,
		Excludes:   excludes,
	}
}

// Walk starts the traversal and returns a channel of file paths. It
// runs in a separate goroutine and closes the channel when done.
func (fw *FileWalker) Walk(ctx context.Context, root string) (<-chan string, <-chan error) {
	paths := make(chan string, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(paths)
		defer close(errs)

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if d.IsDir() {
				for _, exclude := range fw.Excludes {
					if strings.Contains(path, exclude) {
						return filepath.SkipDir
					}
				}
				if strings.HasPrefix(d.Name(), ".") && d.Name() != "." {
					return filepath.SkipDir
				}
				return nil
			}

			for _, exclude := range fw.Excludes {
				matched, _ := filepath.Match(exclude, d.Name())
				if matched || strings.Contains(path, exclude) {
					return nil
				}
			}

			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
			if _, ok := fw.Extensions[ext]; ok {
				select {
				case paths <- path:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			return nil
		})

		if err != nil {
			errs <- err
		}
	}()

	return paths, errs
}

// LoadUnit reads a source file and wraps it as a raw-code unit. File
// scans have no declared object category, so the banned-object pass
// never applies to them.
func LoadUnit(path string) (model.Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Unit{}, err
	}
	base := filepath.Base(path)
	return model.Unit{
		PgmName: base,
		IncName: base,
		Type:    model.CategoryRawCode,
		Code:    string(content),
	}, nil
}

// ScanResult is one analyzed file
type ScanResult struct {
	File   string
	Result model.UnitResult
	Err    error
}

// Processor analyzes a single file into a unit result
type Processor func(path string) (model.UnitResult, error)

// WorkerPool runs the processor over incoming paths concurrently. The
// catalogs behind the processor are read-only, so workers share them
// without synchronization.
type WorkerPool struct {
	Concurrency int
	Processor   Processor
}

func NewWorkerPool(concurrency int, proc Processor) *WorkerPool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &WorkerPool{
		Concurrency: concurrency,
		Processor:   proc,
	}
}

func (wp *WorkerPool) Start(ctx context.Context, paths <-chan string) <-chan ScanResult {
	results := make(chan ScanResult)
	var wg sync.WaitGroup

	for i := 0; i < wp.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				select {
				case <-ctx.Done():
					return
				default:
					res, err := wp.Processor(path)
					// Errors are sent too, so the caller can report
					// unreadable files instead of dropping them.
					select {
					case results <- ScanResult{File: path, Result: res, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
