// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/tokrc/pkg/log"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📦 NewApplyOperation creates the apply operation
func NewApplyOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("creating apply operation: %w", err)
	}
	return &applyOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 📦 applyOperation walks the source tree and rewrites tokens
type applyOperation struct {
	BaseOperation

	replaced  atomic.Int64
	diagnosed atomic.Int64
}

// Name implements Operation
func (op *applyOperation) Name() string {
	return "apply"
}

// 🏃 Execute runs the apply operation
func (op *applyOperation) Execute(ctx context.Context) error {
	files, err := op.collectFiles()
	if err != nil {
		return errors.Errorf("collecting files: %w", err)
	}

	op.Console.StartRun(ctx, op.Config.Source, op.Config.Destination, len(files))

	if op.Config.Async {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, file := range files {
			file := file
			g.Go(func() error {
				return op.processFile(gctx, file)
			})
		}
		if err := g.Wait(); err != nil {
			return errors.Errorf("processing files: %w", err)
		}
	} else {
		for _, file := range files {
			if err := op.processFile(ctx, file); err != nil {
				return errors.Errorf("processing file %s: %w", file, err)
			}
		}
	}

	op.Console.EndRun(ctx, len(files), int(op.replaced.Load()), int(op.diagnosed.Load()))
	return nil
}

// 🔍 collectFiles walks the source tree and returns the relative paths of
// every regular file that is not ignored, in walk order.
func (op *applyOperation) collectFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(op.Config.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(op.Config.Source, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if op.ignored(rel) {
			op.Logger.Debug().Str("file", rel).Msg("file ignored by pattern")
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking source tree: %w", err)
	}

	return files, nil
}

// 📄 processFile transforms or copies through a single file
func (op *applyOperation) processFile(ctx context.Context, file string) error {
	srcPath := filepath.Join(op.Config.Source, filepath.FromSlash(file))
	dstPath := filepath.Join(op.Config.Destination, filepath.FromSlash(file))

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	res := log.FileResult{Path: file}

	if op.included(file) {
		result := op.Engine.Transform(string(content), file)
		content = []byte(result.Output)
		res.Replacements = result.Replaced
		res.Diagnostics = result.Diagnosed

		op.replaced.Add(int64(result.Replaced))
		op.diagnosed.Add(int64(result.Diagnosed))
	} else {
		res.IsCopied = true
	}

	current, err := os.ReadFile(dstPath)
	switch {
	case err != nil:
		res.IsNew = true
		res.Status = "new"
	case bytes.Equal(current, content):
		res.Status = "unchanged"
	default:
		res.IsModified = true
		res.Status = "modified"
	}
	if res.IsCopied {
		res.Status = "copied"
	}

	// In-place runs leave unchanged files alone entirely.
	if srcPath != dstPath || res.Status == "modified" {
		if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
			return errors.Errorf("creating parent directories: %w", err)
		}
		if err := writeFileAtomic(dstPath, content); err != nil {
			return errors.Errorf("writing file: %w", err)
		}
	}

	op.Console.LogFileResult(ctx, res)
	return nil
}

// 🔍 ignored checks if a file matches any ignore pattern
func (op *applyOperation) ignored(path string) bool {
	return op.matchAny(op.Config.Ignore, path)
}

// 🔍 included checks if a file is selected for token replacement
func (op *applyOperation) included(path string) bool {
	return op.matchAny(op.Config.Include, path)
}

func (op *applyOperation) matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			op.Logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// 💾 writeFileAtomic writes content via a temp file and rename so a crash
// never leaves a half-written destination file.
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tokrc-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
