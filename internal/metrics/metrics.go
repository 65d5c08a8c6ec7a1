// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/playstats/internal/playback"
)

// Registry holds the run metrics. It is separate from the default registry so
// a textfile export does not carry go_* and process_* series, which the
// node_exporter textfile collector would reject as duplicates.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// File decode results.
const (
	ResultOK         = "ok"
	ResultInvalid    = "invalid"
	ResultUnreadable = "unreadable"
)

var (
	// Event-log Metrics
	FilesDecoded = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playstats_files_decoded_total",
			Help: "Total number of event files processed, by result",
		},
		[]string{"result"}, // "ok", "invalid", "unreadable"
	)

	FileDecodeDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playstats_file_decode_duration_seconds",
			Help:    "Time to read, decode and build one event file",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	// Session Metrics
	SessionsBuilt = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "playstats_sessions_built_total",
			Help: "Total number of sessions folded into a snapshot",
		},
	)

	SessionsRejected = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playstats_sessions_rejected_total",
			Help: "Total number of sessions whose events broke the recording contract",
		},
		[]string{"reason"}, // "non_monotonic", "negative_time", "unknown_state", "other"
	)

	EventsObserved = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "playstats_events_observed_total",
			Help: "Total number of state events read from event files",
		},
	)
)

// RecordFileDecoded records one processed event file.
func RecordFileDecoded(result string, duration time.Duration) {
	FilesDecoded.WithLabelValues(result).Inc()
	FileDecodeDuration.Observe(duration.Seconds())
}

// RecordSessionBuilt records a session that produced a snapshot.
func RecordSessionBuilt(events int) {
	SessionsBuilt.Inc()
	EventsObserved.Add(float64(events))
}

// RecordSessionRejected records a session refused by the builder.
func RecordSessionRejected(err error) {
	SessionsRejected.WithLabelValues(rejectReason(err)).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, playback.ErrNonMonotonic):
		return "non_monotonic"
	case errors.Is(err, playback.ErrNegativeTime):
		return "negative_time"
	case errors.Is(err, playback.ErrUnknownState):
		return "unknown_state"
	default:
		return "other"
	}
}
