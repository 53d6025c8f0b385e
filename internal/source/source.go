// Package source discovers SQL inputs on disk and hands them to the lint
// engine as (identifier, text) pairs. It is the only place the linting
// pipeline touches the filesystem.
package source

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlint/pkg/lint"
)

// Walker yields SQL files beneath a root path. It implements lint.Source.
// A root that is a regular file yields exactly that file; a directory is
// walked recursively for *.sql entries in sorted order.
type Walker struct {
	root   string
	logger *slog.Logger
}

// New creates a walker for the given file or directory path.
func New(root string, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{root: root, logger: logger}
}

// Files lists and reads the SQL inputs under the root. A file that cannot be
// read or is not valid UTF-8 is returned with its Err set so the caller can
// surface it without aborting the run. Only a missing or unwalkable root is
// an error.
func (w *Walker) Files(ctx context.Context) ([]lint.SourceFile, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("path %s: %w", w.root, err)
	}

	var paths []string
	if !info.IsDir() {
		paths = []string{w.root}
	} else {
		err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".sql") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", w.root, err)
		}
		sort.Strings(paths)
	}

	w.logger.Debug("discovered SQL inputs", "root", w.root, "count", len(paths))

	files := make([]lint.SourceFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, readFile(p))
	}
	return files, nil
}

func readFile(path string) lint.SourceFile {
	data, err := os.ReadFile(path)
	if err != nil {
		return lint.SourceFile{File: path, Err: err}
	}
	if !utf8.Valid(data) {
		return lint.SourceFile{File: path, Err: fmt.Errorf("not valid UTF-8")}
	}
	return lint.SourceFile{File: path, SQL: string(data)}
}
