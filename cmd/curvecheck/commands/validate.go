// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kevaundray/curves/edoncp6782"
	"github.com/kevaundray/curves/internal/paramcheck"
)

func (c *cli) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Check that the curve constants are mutually consistent",
		PreRunE: c.loadConfig,
		RunE:    c.runValidate,
	}
	cmd.Flags().Int("samples", c.config.Samples, "number of random field elements checked against MulByA")
	return cmd
}

func (c *cli) runValidate(cmd *cobra.Command, args []string) error {
	if c.config.Samples < 0 {
		return errors.Errorf("samples must not be negative, got %d", c.config.Samples)
	}

	report := paramcheck.Run(edoncp6782.EdwardsParameters{},
		paramcheck.WithSamples(c.config.Samples),
		paramcheck.WithLogger(c.logger.WithField("curve", curveName)),
	)

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		status := "ok"
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-4s %-24s %v\n", status, res.Name, res.Duration)
	}

	if err := report.Err(); err != nil {
		return err
	}
	c.logger.WithField("checks", len(report.Results)).Info("all checks passed")
	return nil
}
