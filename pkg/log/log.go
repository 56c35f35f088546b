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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for file path
	statusWidth = 12 // Width for status text
)

// 🎯 FileResult represents the outcome of processing one file
type FileResult struct {
	Path         string // Relative file path
	Status       string // new/modified/unchanged/copied
	IsNew        bool   // Whether the destination file did not exist
	IsModified   bool   // Whether the destination content changed
	IsCopied     bool   // Whether the file was copied through untouched
	Replacements int    // Number of tokens substituted
	Diagnostics  int    // Number of tokens reported and removed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileResult formats a file result for display
func (l *Logger) formatFileResult(res FileResult) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case res.IsNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case res.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case res.IsCopied:
		symbol = '-'
		symbolColor = color.FgYellow
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	counts := fmt.Sprintf("%d replaced", res.Replacements)
	if res.Diagnostics > 0 {
		counts += color.New(color.FgRed).Sprintf(", %d problems", res.Diagnostics)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, res.Path),
		fmt.Sprintf("%-*s", statusWidth, res.Status),
		counts)
}

// 📝 LogFileResult logs the outcome of processing one file
func (l *Logger) LogFileResult(ctx context.Context, res FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFileResult(res))

	l.zlog.Info().
		Str("file", res.Path).
		Str("status", res.Status).
		Bool("is_new", res.IsNew).
		Bool("is_modified", res.IsModified).
		Bool("is_copied", res.IsCopied).
		Int("replacements", res.Replacements).
		Int("diagnostics", res.Diagnostics).
		Msg("file processed")
}

// 📝 StartRun prints the run header
func (l *Logger) StartRun(ctx context.Context, source, destination string, files int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "[replacing tokens in %s]\n",
		color.New(color.FgCyan).Sprint(source))

	l.zlog.Info().
		Str("source", source).
		Str("destination", destination).
		Int("files", files).
		Msg("starting run")
}

// 📝 EndRun prints the run summary
func (l *Logger) EndRun(ctx context.Context, files, replacements, diagnostics int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if diagnostics > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).
			Printfln("%d files processed, %d tokens replaced, %d problems", files, replacements, diagnostics)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).
			Printfln("%d files processed, %d tokens replaced", files, replacements)
	}

	l.zlog.Info().
		Int("files", files).
		Int("replacements", replacements).
		Int("diagnostics", diagnostics).
		Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tokrcText := color.New(color.Bold, color.FgCyan).Sprint("tokrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", tokrcText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
