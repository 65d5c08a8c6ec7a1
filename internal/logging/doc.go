// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Package logging provides the zerolog-based structured logger used by playstats.
//
// A single global logger is configured once at startup from config.LoggingConfig
// and reached through the context, which may also carry an override logger:
//
//	logging.Init(logging.Config{Level: "debug", Format: "json"})
//	ctx = logging.ContextWithNewRunID(ctx)
//	logging.Ctx(ctx).Info().Msg("Summarizing")
//
// Every CLI invocation gets a run ID that Ctx attaches to each line. Packages
// tag their lines with a component:
//
//	logger := logging.WithComponent(ctx, "eventlog")
//	logger.Warn().Err(err).Str("file", path).Msg("Skipping event file")
//
// Reports are written to stdout; logs go to stderr so the two never mix.
//
// Environment Variables (read by the config package):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: console)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
