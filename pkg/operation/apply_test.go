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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tokrc/pkg/config"
	"github.com/walteh/tokrc/pkg/log"
	"github.com/walteh/tokrc/pkg/replace"
)

// writeTree writes a map of relative path → content under dir.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// readTree reads every regular file under dir into a map of relative path →
// content.
func readTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	require.NoError(t, err)
	return files
}

// newTestOperation builds an apply operation over cfg with a real engine and
// a diagnostic-capturing reporter.
func newTestOperation(t *testing.T, cfg *config.Config) (Operation, *captureReporter) {
	t.Helper()
	require.NoError(t, cfg.Validate())

	reporter := &captureReporter{}
	opts := cfg.EngineOptions()
	opts.Reporter = reporter

	engine, err := replace.New(context.Background(), opts)
	require.NoError(t, err)

	logger := zerolog.Nop()
	var console bytes.Buffer

	op, err := NewApplyOperation(Options{
		Config:  cfg,
		Engine:  engine,
		Logger:  &logger,
		Console: log.New(&console, zerolog.Disabled),
	})
	require.NoError(t, err)
	return op, reporter
}

type captureReporter struct {
	diags []replace.Diagnostic
}

func (r *captureReporter) Report(d replace.Diagnostic) {
	r.diags = append(r.diags, d)
}

func TestApplyOperation_TransformsSelectedFiles(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"index.html":     "<title>@package.title@</title><v>@package.version@</v>",
		"sub/page.html":  "version @package.version@",
		"assets/app.bin": "binary @package.version@ stays",
	})

	cfg := &config.Config{
		Replacements: config.Sources{{"title": "Boaty", "version": "1.0.0"}},
		Source:       src,
		Destination:  dst,
		Include:      []string{"**/*.html"},
	}

	op, reporter := newTestOperation(t, cfg)
	require.NoError(t, op.Execute(context.Background()))

	got := readTree(t, dst)
	assert.Equal(t, map[string]string{
		"index.html":     "<title>Boaty</title><v>1.0.0</v>",
		"sub/page.html":  "version 1.0.0",
		"assets/app.bin": "binary @package.version@ stays",
	}, got)
	assert.Empty(t, reporter.diags)
}

func TestApplyOperation_DiagnosesMissingKeys(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"page.html": "known @package.title@\nunknown @package.nope@\nbare @naked@",
	})

	cfg := &config.Config{
		Replacements: config.Sources{{"title": "Boaty"}},
		Source:       src,
		Destination:  dst,
	}

	op, reporter := newTestOperation(t, cfg)
	require.NoError(t, op.Execute(context.Background()))

	got := readTree(t, dst)
	assert.Equal(t, "known Boaty\nunknown \nbare ", got["page.html"])

	require.Len(t, reporter.diags, 2)
	assert.Equal(t, "has no replacement!", reporter.diags[0].Message)
	assert.Equal(t, 2, reporter.diags[0].Line)
	assert.Equal(t, "replacement must start with 'package.'", reporter.diags[1].Message)
	assert.Equal(t, 3, reporter.diags[1].Line)
	assert.Equal(t, "page.html", reporter.diags[0].Path)
}

func TestApplyOperation_IgnorePatterns(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"keep.txt":          "@package.k@",
		"vendor/skip.txt":   "@package.k@",
		"notes/private.txt": "@package.k@",
	})

	cfg := &config.Config{
		Replacements: config.Sources{{"k": "v"}},
		Source:       src,
		Destination:  dst,
		Ignore:       []string{"vendor/**", "notes/**"},
	}

	op, _ := newTestOperation(t, cfg)
	require.NoError(t, op.Execute(context.Background()))

	got := readTree(t, dst)
	assert.Equal(t, map[string]string{"keep.txt": "v"}, got)
}

func TestApplyOperation_InPlace(t *testing.T) {
	src := t.TempDir()

	writeTree(t, src, map[string]string{
		"page.html":  "v=@package.version@",
		"plain.html": "no tokens",
	})

	cfg := &config.Config{
		Replacements: config.Sources{{"version": "1.0.0"}},
		Source:       src,
	}

	op, _ := newTestOperation(t, cfg)
	require.NoError(t, op.Execute(context.Background()))

	got := readTree(t, src)
	assert.Equal(t, "v=1.0.0", got["page.html"])
	assert.Equal(t, "no tokens", got["plain.html"])
}

func TestApplyOperation_Async(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	files := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		files[name+".txt"] = "x @package.k@ y"
	}
	writeTree(t, src, files)

	cfg := &config.Config{
		Replacements: config.Sources{{"k": "v"}},
		Source:       src,
		Destination:  dst,
		Async:        true,
	}

	op, _ := newTestOperation(t, cfg)
	require.NoError(t, op.Execute(context.Background()))

	got := readTree(t, dst)
	require.Len(t, got, len(files))
	for name := range files {
		assert.Equal(t, "x v y", got[name])
	}
}

func TestNewApplyOperation_Validation(t *testing.T) {
	_, err := NewApplyOperation(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")
}
