// Copyright (c) 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of the environment variables overriding flags, as
// in CURVECHECK_SAMPLES=1024.
const envPrefix = "curvecheck"

// cli holds the state shared by the commands of one root command.
type cli struct {
	config *CLIConfig
	viper  *viper.Viper
	logger *logrus.Logger
}

// NewRootCmd returns the root command of curvecheck
func NewRootCmd() *cobra.Command {
	c := &cli{
		config: NewDefaultCLIConfig(),
		viper:  viper.New(),
	}

	rootCmd := &cobra.Command{
		Use:   "curvecheck",
		Short: "Offline checks for the ed_on_cp6_782 curve parameters",
	}
	rootCmd.PersistentFlags().String("log", c.config.LogLevel, "debug, info, warn, error")

	rootCmd.AddCommand(
		c.newValidateCmd(),
		c.newParamsCmd(),
	)
	return rootCmd
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	c.viper.SetEnvPrefix(envPrefix)
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.viper.AutomaticEnv()

	if err := c.viper.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	conf := NewDefaultCLIConfig()
	if err := c.viper.Unmarshal(conf); err != nil {
		return errors.Wrap(err, "parsing configuration")
	}
	c.config = conf

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", conf.LogLevel)
	}

	c.logger = logrus.New()
	c.logger.Out = cmd.ErrOrStderr()
	c.logger.Level = level

	c.logger.WithFields(logrus.Fields{
		"log":     conf.LogLevel,
		"samples": conf.Samples,
		"format":  conf.Format,
	}).Debug("RUN")

	return nil
}
