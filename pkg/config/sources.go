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
	"github.com/walteh/tokrc/pkg/replace"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🗂️ Sources is an ordered sequence of key→value replacement mappings. In
// YAML it accepts either a single mapping or a sequence of mappings; a
// single mapping becomes a one-element sequence.
type Sources []map[string]string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sources) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var single map[string]string
		if err := node.Decode(&single); err != nil {
			return errors.Errorf("decoding replacement mapping: %w", err)
		}
		*s = Sources{single}
		return nil

	case yaml.SequenceNode:
		var many []map[string]string
		if err := node.Decode(&many); err != nil {
			return errors.Errorf("decoding replacement sequence: %w", err)
		}
		*s = Sources(many)
		return nil

	default:
		return errors.Errorf("replacements must be a mapping or a sequence of mappings")
	}
}

// 🔄 ToSources converts to the engine's source type, preserving order.
func (s Sources) ToSources() []replace.Source {
	out := make([]replace.Source, 0, len(s))
	for _, src := range s {
		out = append(out, replace.Source(src))
	}
	return out
}
