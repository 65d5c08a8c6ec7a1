// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// This file contains the Quality of Experience (QoE) report models produced
// from playback snapshots.
//
// Key metrics:
// - Join time - Time from the foreground join request to the first ready state
// - Abandoned before ready - Sessions that never reached playing or paused
// - Rebuffer rate - Rebuffers per second of playing time
// - Wait time ratio - Share of play-and-wait time spent joining, rebuffering or seeking

package models

import "time"

// QoEReport is the rendered statistics of one session or of an aggregate.
type QoEReport struct {
	// Label is the session ID, or "aggregate" for merged statistics
	Label string `json:"label"`

	// Source is the event file a single-session report was built from
	Source string `json:"source,omitempty"`

	Sessions       QoESessionCounts   `json:"sessions"`
	Events         QoEEventCounts     `json:"events"`
	TimeTotals     QoETimeTotals      `json:"time_totals_ms"`
	TimeMeans      QoETimeMeans       `json:"time_means_ms"`
	Ratios         QoERatios          `json:"ratios"`
	StateDurations []QoEStateDuration `json:"state_durations_ms"`
}

// QoESessionCounts counts sessions by outcome.
type QoESessionCounts struct {
	Total                int `json:"total"`
	Foreground           int `json:"foreground"`
	AbandonedBeforeReady int `json:"abandoned_before_ready"`
	Ended                int `json:"ended"`
	BackgroundJoining    int `json:"background_joining"`
	ValidJoins           int `json:"valid_joins"`
	AdPlayback           int `json:"ad_playback"`
}

// QoEEventCounts counts user and network events.
type QoEEventCounts struct {
	Pauses               int `json:"pauses"`
	PausesWhileBuffering int `json:"pauses_while_buffering"`
	Seeks                int `json:"seeks"`
	Rebuffers            int `json:"rebuffers"`
}

// QoETimeTotals are summed durations in milliseconds.
type QoETimeTotals struct {
	Join        int64 `json:"join"`
	Play        int64 `json:"play"`
	Paused      int64 `json:"paused"`
	Rebuffer    int64 `json:"rebuffer"`
	Seek        int64 `json:"seek"`
	Wait        int64 `json:"wait"`
	PlayAndWait int64 `json:"play_and_wait"`
	Elapsed     int64 `json:"elapsed"`

	// ValidJoin is nil when no join completed
	ValidJoin *int64 `json:"valid_join"`

	// MaxRebuffer is nil when no rebuffer was observed
	MaxRebuffer *int64 `json:"max_rebuffer"`

	// FirstReported is the earliest event time, nil without events
	FirstReported *int64 `json:"first_reported"`
}

// QoETimeMeans are per-session means in milliseconds; nil when the
// denominator is zero.
type QoETimeMeans struct {
	Join           *int64 `json:"join"`
	Play           *int64 `json:"play"`
	Paused         *int64 `json:"paused"`
	Rebuffer       *int64 `json:"rebuffer"`
	SingleRebuffer *int64 `json:"single_rebuffer"`
	Seek           *int64 `json:"seek"`
	SingleSeek     *int64 `json:"single_seek"`
	Wait           *int64 `json:"wait"`
	PlayAndWait    *int64 `json:"play_and_wait"`
	Elapsed        *int64 `json:"elapsed"`
}

// QoERatios are dimensionless or per-second rates.
type QoERatios struct {
	AbandonedBeforeReady float64 `json:"abandoned_before_ready"`
	Ended                float64 `json:"ended"`
	MeanPauseCount       float64 `json:"mean_pause_count"`
	MeanPauseBufferCount float64 `json:"mean_pause_buffer_count"`
	MeanSeekCount        float64 `json:"mean_seek_count"`
	MeanRebufferCount    float64 `json:"mean_rebuffer_count"`
	WaitTime             float64 `json:"wait_time"`
	JoinTime             float64 `json:"join_time"`
	RebufferTime         float64 `json:"rebuffer_time"`
	SeekTime             float64 `json:"seek_time"`

	// RebufferRate is rebuffers per second of playing time
	RebufferRate float64 `json:"rebuffer_rate"`

	// MeanTimeBetweenRebuffersSec is nil when no rebuffer was observed (infinite)
	MeanTimeBetweenRebuffersSec *float64 `json:"mean_time_between_rebuffers_sec"`
}

// QoEStateDuration is the time spent in one playback state.
type QoEStateDuration struct {
	State      string `json:"state"`
	DurationMs int64  `json:"duration_ms"`
}

// QoESkippedFile is an input left out of the report.
type QoESkippedFile struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// QoEReportMetadata provides run provenance.
type QoEReportMetadata struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Files       int       `json:"files"`
	Loaded      int       `json:"loaded"`
	Skipped     int       `json:"skipped"`
}

// QoEReportSet is the output of a summarize or merge run.
type QoEReportSet struct {
	// Sessions holds per-session reports; empty for summarize
	Sessions  []QoEReport       `json:"sessions,omitempty"`
	Aggregate QoEReport         `json:"aggregate"`
	Skipped   []QoESkippedFile  `json:"skipped,omitempty"`
	Metadata  QoEReportMetadata `json:"metadata"`
}

// QoEStatePoint answers which state a session was in at a given time.
type QoEStatePoint struct {
	SessionID string `json:"session_id"`
	Source    string `json:"source"`
	AtMs      int64  `json:"at_ms"`
	State     string `json:"state"`
}
