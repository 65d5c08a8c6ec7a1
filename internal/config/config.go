// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/validation"
)

// Output formats accepted by OutputConfig.Format.
const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds all playstats settings.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Input   InputConfig   `koanf:"input"`
	Output  OutputConfig  `koanf:"output"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"log_level"`

	// Format is the log output format: json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// InputConfig controls how event logs are read.
type InputConfig struct {
	// Concurrency bounds the number of event files decoded at once.
	// 0 = use runtime.NumCPU()
	Concurrency int `koanf:"concurrency" validate:"gte=0,lte=256"`

	// Strict fails the whole run on the first unreadable or invalid file.
	// When false such files are logged and skipped.
	Strict bool `koanf:"strict"`
}

// OutputConfig controls report rendering and metric export.
type OutputConfig struct {
	// Format is the report format: auto, table or json.
	// auto renders a table on a terminal and JSON otherwise.
	Format string `koanf:"format" validate:"oneof=auto table json"`

	// MetricsTextfile, when set, receives the aggregate metrics in
	// Prometheus text exposition format.
	MetricsTextfile string `koanf:"metrics_textfile"`

	// MetricsNamespace prefixes every exported metric name.
	MetricsNamespace string `koanf:"metrics_namespace" validate:"required,max=64,metric_namespace"`
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return nil
}

// Workers returns the effective decode concurrency.
func (c InputConfig) Workers() int {
	if c.Concurrency <= 0 {
		return runtime.NumCPU()
	}
	return c.Concurrency
}

// LoggerConfig converts the logging section into a logging.Config writing to stderr.
func (c LoggingConfig) LoggerConfig() logging.Config {
	return logging.Config{
		Level:     c.Level,
		Format:    c.Format,
		Caller:    c.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// String summarizes the configuration for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("logging=%s/%s input.concurrency=%d input.strict=%t output.format=%s output.metrics_textfile=%q output.metrics_namespace=%s",
		c.Logging.Level, c.Logging.Format, c.Input.Concurrency, c.Input.Strict,
		c.Output.Format, c.Output.MetricsTextfile, c.Output.MetricsNamespace)
}
