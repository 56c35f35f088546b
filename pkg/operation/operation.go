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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/tokrc/pkg/config"
	"github.com/walteh/tokrc/pkg/log"
	"github.com/walteh/tokrc/pkg/replace"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a runnable pipeline step
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by operations
type Options struct {
	// Config is the tokrc configuration
	Config *config.Config
	// Engine is the constructed replacement engine
	Engine *replace.Engine
	// Logger is the structured logger
	Logger *zerolog.Logger
	// Console is the user-facing logger
	Console *log.Logger
}

// 🔍 validate checks that all required dependencies are present
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.Engine == nil {
		return errors.Errorf("engine is required")
	}
	if opts.Logger == nil {
		return errors.Errorf("logger is required")
	}
	if opts.Console == nil {
		return errors.Errorf("console logger is required")
	}
	return nil
}

// 📦 BaseOperation carries shared dependencies for operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}
