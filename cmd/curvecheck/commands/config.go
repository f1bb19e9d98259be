// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import "github.com/kevaundray/curves/internal/paramcheck"

// CLIConfig contains configuration for the curvecheck commands
type CLIConfig struct {
	LogLevel string `mapstructure:"log"`
	Samples  int    `mapstructure:"samples"`
	Format   string `mapstructure:"format"`
}

// NewDefaultCLIConfig creates a CLIConfig with default values
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		LogLevel: "info",
		Samples:  paramcheck.DefaultSamples,
		Format:   "text",
	}
}
