// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Package report turns playback snapshots into QoE report models and writes
// them as rounded go-pretty tables or indented JSON.
//
// Unset time values become null in JSON and "-" in tables. The mean time
// between rebuffers is infinite without rebuffers and is handled the same way.
package report
