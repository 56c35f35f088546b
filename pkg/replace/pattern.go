package replace

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// DefaultPrefix is the prefix used when neither a custom prefix nor
// unprefixed mode is configured.
const DefaultPrefix = "package"

// Mode selects the token shape the engine matches.
type Mode int

const (
	// ModePrefixed matches @prefix.key@ tokens. The prefix group in the
	// pattern is optional so that a token missing the required prefix still
	// matches and can be diagnosed instead of passing through silently.
	ModePrefixed Mode = iota

	// ModeUnprefixed matches bare @key@ tokens.
	ModeUnprefixed
)

// ErrInvalidPrefix is returned when a configured prefix contains characters
// outside [A-Za-z0-9].
var ErrInvalidPrefix = errors.New("prefix must match [A-Za-z0-9]+")

// selectPattern resolves mode configuration into a compiled token pattern.
// Unprefixed mode overrides any configured prefix; an empty prefix in
// prefixed mode falls back to DefaultPrefix. The prefix is validated here,
// before any file is processed.
func selectPattern(prefix string, unprefixed bool) (*regexp.Regexp, Mode, string, error) {
	if unprefixed {
		return regexp.MustCompile(`@([A-Za-z0-9]+)@`), ModeUnprefixed, "", nil
	}

	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !IsValidKey(prefix) {
		return nil, ModePrefixed, "", errors.Errorf("prefix %q: %w", prefix, ErrInvalidPrefix)
	}

	// Group 1 captures the prefix (optional, so its absence is diagnosable),
	// group 2 captures the key.
	pattern, err := regexp.Compile(`@(?:(` + prefix + `)\.)?([A-Za-z0-9]+)@`)
	if err != nil {
		return nil, ModePrefixed, "", errors.Errorf("compiling token pattern: %w", err)
	}

	return pattern, ModePrefixed, prefix, nil
}
