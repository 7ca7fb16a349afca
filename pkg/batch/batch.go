// Package batch walks a directory tree (or takes a single file), runs
// the escape reversal engine over every markdown file found, and writes
// the cleaned text back in place. I/O failures are per-file outcomes:
// the run continues past them and the final result carries the tally.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/descape/descape/internal/logger"
	"github.com/descape/descape/pkg/cleaner/escape"
)

// DefaultExtensions are the file extensions treated as markdown.
var DefaultExtensions = []string{".md"}

// Options configures a Runner.
type Options struct {
	// DryRun reports what would change without writing any file.
	DryRun bool

	// Extensions overrides the markdown file extensions (default .md).
	Extensions []string

	// Verbose logs the detected signals for every file at debug level.
	Verbose bool
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path    string `json:"path" yaml:"path"`
	Changed int    `json:"changed" yaml:"changed"`
	Cleaned bool   `json:"cleaned" yaml:"cleaned"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result accumulates a whole run. It is owned by the caller; the runner
// keeps no state between runs.
type Result struct {
	FilesProcessed int          `json:"files_processed" yaml:"files_processed"`
	FilesCleaned   int          `json:"files_cleaned" yaml:"files_cleaned"`
	FilesFailed    int          `json:"files_failed" yaml:"files_failed"`
	TotalChanges   int          `json:"total_changes" yaml:"total_changes"`
	InputBytes     int64        `json:"input_bytes" yaml:"input_bytes"`
	Files          []FileResult `json:"files" yaml:"files"`
}

// Success reports whether every discovered file was processed without an
// I/O error. A run that found no files is not a success.
func (r *Result) Success() bool {
	return r.FilesProcessed > 0 && r.FilesFailed == 0
}

// Runner processes markdown files with the escape reversal engine.
type Runner struct {
	opts   Options
	engine *escape.Cleaner
}

// New creates a Runner with the given options.
func New(opts Options) *Runner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	return &Runner{opts: opts, engine: escape.New()}
}

// Find discovers markdown files under path. A direct file path is
// accepted as-is when it has a markdown extension; a directory is walked
// recursively. Paths are returned sorted.
func (r *Runner) Find(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		if !r.matchesExtension(path) {
			return nil, fmt.Errorf("%s is not a markdown file", path)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && r.matchesExtension(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	sort.Strings(files)
	return files, nil
}

func (r *Runner) matchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range r.opts.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Run finds and processes every markdown file under path. Read and
// write failures are recorded on the per-file result and the run
// continues; ctx cancellation stops between files and returns the
// partial result along with the context error.
func (r *Runner) Run(ctx context.Context, path string) (*Result, error) {
	files, err := r.Find(path)
	if err != nil {
		return &Result{}, err
	}
	if len(files) == 0 {
		return &Result{}, fmt.Errorf("no markdown files found in %s", path)
	}

	result := &Result{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Files = append(result.Files, r.processFile(file, result))
	}

	return result, nil
}

// ProcessFile cleans a single file and returns its outcome.
func (r *Runner) ProcessFile(path string) FileResult {
	result := &Result{}
	return r.processFile(path, result)
}

func (r *Runner) processFile(path string, result *Result) FileResult {
	fr := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read file", "path", path, "error", err)
		fr.Error = err.Error()
		result.FilesFailed++
		return fr
	}

	result.FilesProcessed++
	result.InputBytes += int64(len(data))

	text := string(data)
	if r.opts.Verbose {
		logger.Debug("escape signals", "path", path, "signals", escape.Detect(text))
	}

	cleaned, changed := r.engine.Clean(text)
	fr.Changed = changed
	if cleaned == text {
		return fr
	}

	if r.opts.DryRun {
		result.FilesCleaned++
		result.TotalChanges += changed
		return fr
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(cleaned), mode); err != nil {
		logger.Error("failed to write file", "path", path, "error", err)
		fr.Error = err.Error()
		result.FilesFailed++
		return fr
	}

	// Counted only once the write has landed, so a failed write is a
	// failure, not a clean.
	result.FilesCleaned++
	result.TotalChanges += changed
	fr.Cleaned = true
	return fr
}
