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
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/tokrc/pkg/replace"
)

// 📢 ConsoleReporter prints token diagnostics for a human reading build
// logs. It implements replace.Reporter and is safe for concurrent use.
type ConsoleReporter struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 NewConsoleReporter creates a reporter writing to console
func NewConsoleReporter(console io.Writer, zlog zerolog.Logger) *ConsoleReporter {
	return &ConsoleReporter{
		zlog:    zlog,
		console: console,
	}
}

// 📝 Report prints one diagnostic: the offending token, the message, the
// file and line, and the surrounding context with the token highlighted.
func (r *ConsoleReporter) Report(d replace.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := color.New(color.FgRed, color.Bold).Sprint(d.Token)

	fmt.Fprintf(r.console, "⚠️  %s %s\n", token, color.New(color.FgYellow).Sprint(d.Message))
	fmt.Fprintf(r.console, "    → %s:%d\n", d.Path, d.Line)

	var window string
	if d.LeadingEllipsis {
		window += "..."
	}
	window += d.Before + token + d.After
	if d.TrailingEllipsis {
		window += "..."
	}
	fmt.Fprintf(r.console, "    %s\n", window)

	r.zlog.Warn().
		Str("token", d.Token).
		Str("file", d.Path).
		Int("line", d.Line).
		Str("context", d.Context()).
		Msg(d.Message)
}
