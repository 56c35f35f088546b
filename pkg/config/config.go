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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tokrc/pkg/replace"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	// Replacements are the key→value sources, in precedence order: the
	// first source wins when a key appears more than once. A config file
	// may supply a single mapping or an ordered sequence of mappings.
	Replacements Sources `json:"replacements" yaml:"replacements"`

	Prefix     string `json:"prefix,omitempty" yaml:"prefix,omitempty"`         // Token prefix, default "package"
	Unprefixed bool   `json:"unprefixed,omitempty" yaml:"unprefixed,omitempty"` // Match bare @key@ tokens, overrides Prefix
	Debug      bool   `json:"debug,omitempty" yaml:"debug,omitempty"`           // Log resolved prefix and table

	Source      string   `json:"source" yaml:"source"`                               // Root directory to read files from
	Destination string   `json:"destination,omitempty" yaml:"destination,omitempty"` // Where transformed files are written, defaults to Source
	Include     []string `json:"include,omitempty" yaml:"include,omitempty"`         // Glob patterns selecting files to transform
	Ignore      []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`           // Glob patterns excluding files entirely
	Async       bool     `json:"async,omitempty" yaml:"async,omitempty"`             // Process files concurrently
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid. Every problem found here
// is fatal before any file is touched.
func (cfg *Config) Validate() error {
	if len(cfg.Replacements) == 0 {
		return errors.Errorf("replacements are required: %w", replace.ErrMissingReplacements)
	}
	for i, src := range cfg.Replacements {
		for key := range src {
			if !replace.IsValidKey(key) {
				return errors.Errorf("replacements[%d]: key %q must match [A-Za-z0-9]+", i, key)
			}
		}
	}

	if cfg.Prefix != "" && !cfg.Unprefixed && !replace.IsValidKey(cfg.Prefix) {
		return errors.Errorf("prefix %q: %w", cfg.Prefix, replace.ErrInvalidPrefix)
	}

	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}

	// Clean up paths and set defaults
	cfg.Source = filepath.Clean(cfg.Source)
	if cfg.Destination == "" {
		cfg.Destination = cfg.Source
	}
	cfg.Destination = filepath.Clean(cfg.Destination)

	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**"}
	}

	return nil
}

// 🔄 EngineOptions converts the config into engine options, leaving the
// Reporter for the caller to bind.
func (cfg *Config) EngineOptions() replace.Options {
	return replace.Options{
		Sources:    cfg.Replacements.ToSources(),
		Prefix:     cfg.Prefix,
		Unprefixed: cfg.Unprefixed,
		Debug:      cfg.Debug,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := cfg.Prefix
	if mode == "" {
		mode = replace.DefaultPrefix
	}
	if cfg.Unprefixed {
		mode = "(unprefixed)"
	}
	return fmt.Sprintf("%s -> %s [%s]", cfg.Source, cfg.Destination, mode)
}
