// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.LoadWithKoanf(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && *c.logLevelFlag != "" {
			cfg.Logging.Level = *c.logLevelFlag
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// setup loads the configuration, initializes logging on the command's stderr
// and attaches a fresh run ID to the command context.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logCfg := cfg.Logging.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)

	ctx := logging.ContextWithNewRunID(cmd.Context())
	cmd.SetContext(ctx)

	logging.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("Configuration loaded")
	return nil
}
