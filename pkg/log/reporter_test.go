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
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/tokrc/pkg/replace"
)

func TestConsoleReporter_Report(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		diag replace.Diagnostic
		want []string
	}{
		{
			name: "missing_key",
			diag: replace.Diagnostic{
				Token:   "@package.nope@",
				Message: "has no replacement!",
				Path:    "src/index.html",
				Line:    3,
				Before:  "<title>",
				After:   "</title>",
			},
			want: []string{
				"@package.nope@ has no replacement!",
				"→ src/index.html:3",
				"<title>@package.nope@</title>",
			},
		},
		{
			name: "ellipses_applied",
			diag: replace.Diagnostic{
				Token:            "@version@",
				Message:          "replacement must start with 'package.'",
				Path:             "a/b.txt",
				Line:             1,
				Before:           "left ",
				After:            " right",
				LeadingEllipsis:  true,
				TrailingEllipsis: true,
			},
			want: []string{
				"replacement must start with 'package.'",
				"→ a/b.txt:1",
				"...left @version@ right...",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			reporter := NewConsoleReporter(&console, zerolog.Nop())

			reporter.Report(tt.diag)

			for _, want := range tt.want {
				assert.Contains(t, console.String(), want)
			}
		})
	}
}
