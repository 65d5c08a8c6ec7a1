// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/report"
)

// resolveFormat picks the flag value over the configured one and turns auto
// into table on a terminal, json elsewhere.
func resolveFormat(cmd *cobra.Command, flagValue, configured string) (report.Format, error) {
	name := strings.ToLower(strings.TrimSpace(flagValue))
	if name == "" {
		name = configured
	}
	if name == config.FormatAuto {
		if logging.IsTerminal(cmd.OutOrStdout()) {
			return report.FormatTable, nil
		}
		return report.FormatJSON, nil
	}
	return report.ParseFormat(name)
}
