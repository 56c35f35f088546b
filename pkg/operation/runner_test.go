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
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// fakeOperation lets tests control Execute behavior.
type fakeOperation struct {
	name    string
	execute func(ctx context.Context) error
}

func (f *fakeOperation) Name() string                      { return f.name }
func (f *fakeOperation) Execute(ctx context.Context) error { return f.execute(ctx) }

func TestRunner_Run(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger)

	t.Run("success", func(t *testing.T) {
		op := &fakeOperation{
			name:    "ok",
			execute: func(ctx context.Context) error { return nil },
		}
		require.NoError(t, runner.Run(context.Background(), op))
	})

	t.Run("error_is_wrapped_with_name", func(t *testing.T) {
		op := &fakeOperation{
			name:    "broken",
			execute: func(ctx context.Context) error { return errors.New("boom") },
		}
		err := runner.Run(context.Background(), op)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "operation broken")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		op := &fakeOperation{
			name: "slow",
			execute: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := runner.Run(ctx, op)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
