package replace

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrMissingReplacements is returned when an Engine is constructed without
// any replacement source.
var ErrMissingReplacements = errors.New("at least one replacement source is required")

// Options configures an Engine.
type Options struct {
	// Sources are the replacement mappings, in precedence order: the first
	// source wins when a key appears more than once. At least one source is
	// required.
	Sources []Source

	// Prefix is the required token prefix. Empty means DefaultPrefix.
	// Must match [A-Za-z0-9]+.
	Prefix string

	// Unprefixed matches bare @key@ tokens and overrides Prefix.
	Unprefixed bool

	// Reporter receives a diagnostic for every token that cannot be
	// resolved. Nil discards diagnostics.
	Reporter Reporter

	// Debug logs the resolved prefix and merged table at construction.
	Debug bool
}

// Engine is a reusable (text, path) → text transform. It holds only the
// compiled pattern and the merged table, both immutable, so Apply is safe to
// call from multiple goroutines.
type Engine struct {
	pattern *regexp.Regexp
	mode    Mode
	handler matchHandler
}

// New validates opts and builds an Engine. Configuration problems
// (ErrMissingReplacements, ErrInvalidPrefix) are returned here, before any
// file is processed; nothing the engine does afterwards can fail.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if len(opts.Sources) == 0 {
		return nil, errors.Errorf("building engine: %w", ErrMissingReplacements)
	}

	table := MergeSources(opts.Sources...)

	pattern, mode, prefix, err := selectPattern(opts.Prefix, opts.Unprefixed)
	if err != nil {
		return nil, errors.Errorf("building engine: %w", err)
	}

	if opts.Debug {
		logger := zerolog.Ctx(ctx)
		logger.Debug().Str("prefix", prefix).Bool("unprefixed", mode == ModeUnprefixed).Msg("resolved token mode")
		for key, value := range table {
			logger.Debug().Str("key", key).Str("value", value).Msg("replacement")
		}
	}

	return &Engine{
		pattern: pattern,
		mode:    mode,
		handler: matchHandler{
			table:    table,
			prefix:   prefix,
			reporter: opts.Reporter,
		},
	}, nil
}

// Result carries the outcome of transforming one file's text.
type Result struct {
	Output     string // transformed text
	Replaced   int    // tokens substituted with a table value
	Diagnosed  int    // tokens removed and reported
	WasChanged bool   // whether Output differs from the input
}

// Transform scans all non-overlapping token matches in text, left to right,
// replacing each with its table value or removing it after reporting. Text
// outside matches passes through unchanged. path is used only in
// diagnostics.
func (e *Engine) Transform(text, path string) *Result {
	matches := e.pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return &Result{Output: text}
	}

	result := &Result{}
	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, match := range matches {
		b.WriteString(text[last:match[0]])

		tok := parseToken(text, match, e.mode)
		replacement, ok := e.handler.handle(tok, text, path)
		if ok {
			result.Replaced++
		} else {
			result.Diagnosed++
		}
		b.WriteString(replacement)

		last = match[1]
	}
	b.WriteString(text[last:])

	result.Output = b.String()
	result.WasChanged = result.Output != text
	return result
}

// Apply is the plain transform: it returns the transformed text, with
// diagnostics going to the configured Reporter as a side channel.
func (e *Engine) Apply(text, path string) string {
	return e.Transform(text, path).Output
}
