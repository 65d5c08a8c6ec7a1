// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package report

import (
	"time"

	"github.com/tomtom215/playstats/internal/eventlog"
	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/playback"
)

// SetOptions controls FromResult.
type SetOptions struct {
	RunID string

	// PerSession adds one report per loaded file ahead of the aggregate.
	PerSession bool

	// Now stamps the metadata; zero means time.Now().
	Now time.Time
}

// FromResult merges every loaded session and builds the report set.
// The merged snapshot is returned alongside for metric export.
func FromResult(result *eventlog.Result, opts SetOptions) (models.QoEReportSet, playback.Snapshot) {
	aggregate := playback.Merge(result.Snapshots()...)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	set := models.QoEReportSet{
		Aggregate: FromSnapshot(AggregateLabel, "", aggregate),
		Metadata: models.QoEReportMetadata{
			RunID:       opts.RunID,
			GeneratedAt: now.UTC(),
			Files:       len(result.Loaded) + len(result.Skipped),
			Loaded:      len(result.Loaded),
			Skipped:     len(result.Skipped),
		},
	}

	if opts.PerSession {
		set.Sessions = make([]models.QoEReport, 0, len(result.Loaded))
		for _, l := range result.Loaded {
			set.Sessions = append(set.Sessions, FromSnapshot(l.Log.ID, l.Source, l.Snapshot))
		}
	}
	for _, s := range result.Skipped {
		set.Skipped = append(set.Skipped, models.QoESkippedFile{Source: s.Source, Error: s.Err.Error()})
	}
	return set, aggregate
}
