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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema. Replacements in HCL are always a sequence of
	// mappings; a single mapping is written as a one-element list.
	type hclConfig struct {
		Replacements []map[string]string `hcl:"replacements"`
		Prefix       string              `hcl:"prefix,optional"`
		Unprefixed   bool                `hcl:"unprefixed,optional"`
		Debug        bool                `hcl:"debug,optional"`
		Source       string              `hcl:"source"`
		Destination  string              `hcl:"destination,optional"`
		Include      []string            `hcl:"include,optional"`
		Ignore       []string            `hcl:"ignore,optional"`
		Async        bool                `hcl:"async,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Replacements: Sources(hclCfg.Replacements),
		Prefix:       hclCfg.Prefix,
		Unprefixed:   hclCfg.Unprefixed,
		Debug:        hclCfg.Debug,
		Source:       hclCfg.Source,
		Destination:  hclCfg.Destination,
		Include:      hclCfg.Include,
		Ignore:       hclCfg.Ignore,
		Async:        hclCfg.Async,
	}

	return cfg, nil
}
