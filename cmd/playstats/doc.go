// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Command playstats aggregates recorded playback sessions into
// quality-of-experience statistics.
//
// Each input file holds one session (see package eventlog for the format).
// Files are decoded in parallel, folded into one snapshot each and merged.
//
// # Commands
//
//	playstats summarize FILE...            aggregate report
//	playstats merge FILE...                per-session reports plus the aggregate
//	playstats state-at FILE --at MS        state of one session at a time
//	playstats version                      build information
//
// # Output
//
// --format table|json|auto selects the report format; auto prints a table on a
// terminal and JSON otherwise. --metrics-textfile PATH additionally writes the
// aggregate as Prometheus text exposition for the node_exporter textfile
// collector. Logs go to stderr.
//
// # Configuration
//
// Settings are loaded with koanf from defaults, an optional YAML file
// (--config, CONFIG_PATH, ./playstats.yaml, /etc/playstats/config.yaml) and
// environment variables such as LOG_LEVEL and PLAYSTATS_INPUT_CONCURRENCY.
// Command-line flags override all of them.
//
// # Exit Status
//
// 0 on success, 1 on any error, including a run where every input file was
// skipped.
package main
