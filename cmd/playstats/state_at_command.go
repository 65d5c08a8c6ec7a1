// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/playstats/internal/eventlog"
	"github.com/tomtom215/playstats/internal/report"
)

func newStateAtCommand(ctx *commandContext) *cobra.Command {
	var (
		atMs   int64
		format string
	)
	cmd := &cobra.Command{
		Use:   "state-at FILE",
		Short: "Print the playback state of one session at a point in time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			outFormat, err := resolveFormat(cmd, format, cfg.Output.Format)
			if err != nil {
				return err
			}

			loaded, err := eventlog.NewLoader().LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			point := report.StatePoint(loaded.Log.ID, loaded.Source, loaded.Snapshot, atMs)
			return report.NewRenderer(cmd.OutOrStdout(), outFormat).RenderStatePoint(point)
		},
	}
	cmd.Flags().Int64Var(&atMs, "at", 0, "Time in milliseconds on the session's clock")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json or auto (default from config)")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
