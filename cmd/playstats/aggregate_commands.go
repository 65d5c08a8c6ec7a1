// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/playstats/internal/eventlog"
	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/metrics"
	"github.com/tomtom215/playstats/internal/report"
)

var errAllSkipped = errors.New("no event file could be loaded")

type aggregateFlags struct {
	format          string
	metricsTextfile string
	concurrency     int
	strict          bool
}

func (f *aggregateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: table, json or auto (default from config)")
	cmd.Flags().StringVar(&f.metricsTextfile, "metrics-textfile", "", "Write aggregate metrics in Prometheus text format to this path")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "Event files decoded in parallel (default from config)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on the first unreadable or invalid event file")
}

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var flags aggregateFlags
	cmd := &cobra.Command{
		Use:   "summarize FILE...",
		Short: "Merge sessions and print the aggregate QoE report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(cmd, ctx, &flags, args, false)
		},
	}
	flags.register(cmd)
	return cmd
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var flags aggregateFlags
	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Print one QoE report per session followed by the aggregate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(cmd, ctx, &flags, args, true)
		},
	}
	flags.register(cmd)
	return cmd
}

func runAggregate(cmd *cobra.Command, cc *commandContext, flags *aggregateFlags, paths []string, perSession bool) error {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := logging.Ctx(ctx)

	format, err := resolveFormat(cmd, flags.format, cfg.Output.Format)
	if err != nil {
		return err
	}

	workers := cfg.Input.Workers()
	if cmd.Flags().Changed("concurrency") {
		workers = flags.concurrency
	}
	strict := cfg.Input.Strict
	if cmd.Flags().Changed("strict") {
		strict = flags.strict
	}

	loader := eventlog.NewLoader(eventlog.WithWorkers(workers), eventlog.WithStrict(strict))
	result, err := loader.LoadFiles(ctx, paths)
	if err != nil {
		return err
	}
	if len(result.Loaded) == 0 {
		return fmt.Errorf("%w: %d skipped", errAllSkipped, len(result.Skipped))
	}

	set, aggregate := report.FromResult(result, report.SetOptions{
		RunID:      logging.RunIDFromContext(ctx),
		PerSession: perSession,
	})

	if err := report.NewRenderer(cmd.OutOrStdout(), format).RenderSet(set); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	textfile := cfg.Output.MetricsTextfile
	if flags.metricsTextfile != "" {
		textfile = flags.metricsTextfile
	}
	if textfile != "" {
		if err := metrics.WriteTextfile(textfile, cfg.Output.MetricsNamespace, aggregate); err != nil {
			return err
		}
		logger.Info().Str("path", textfile).Msg("Wrote metrics textfile")
	}

	logger.Info().
		Int("sessions", aggregate.SessionCount()).
		Int("skipped", len(result.Skipped)).
		Msg("Aggregation complete")
	return nil
}
