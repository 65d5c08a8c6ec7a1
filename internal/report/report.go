// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package report

import (
	"math"

	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/playback"
)

// AggregateLabel labels the merged report.
const AggregateLabel = "aggregate"

// FromSnapshot converts a snapshot into its report model.
func FromSnapshot(label, source string, s playback.Snapshot) models.QoEReport {
	r := models.QoEReport{
		Label:  label,
		Source: source,
		Sessions: models.QoESessionCounts{
			Total:                s.SessionCount(),
			Foreground:           s.ForegroundCount(),
			AbandonedBeforeReady: s.AbandonedBeforeReadyCount(),
			Ended:                s.EndedCount(),
			BackgroundJoining:    s.BackgroundJoiningCount(),
			ValidJoins:           s.ValidJoinTimeCount(),
			AdPlayback:           s.AdPlaybackCount(),
		},
		Events: models.QoEEventCounts{
			Pauses:               s.PauseCount(),
			PausesWhileBuffering: s.PauseWhileBufferingCount(),
			Seeks:                s.SeekCount(),
			Rebuffers:            s.RebufferCount(),
		},
		TimeTotals: models.QoETimeTotals{
			Join:          s.TotalJoinTimeMs(),
			Play:          s.TotalPlayTimeMs(),
			Paused:        s.TotalPausedTimeMs(),
			Rebuffer:      s.TotalRebufferTimeMs(),
			Seek:          s.TotalSeekTimeMs(),
			Wait:          s.TotalWaitTimeMs(),
			PlayAndWait:   s.TotalPlayAndWaitTimeMs(),
			Elapsed:       s.TotalElapsedTimeMs(),
			ValidJoin:     msPtr(s.TotalValidJoinTimeMs()),
			MaxRebuffer:   msPtr(s.MaxRebufferTimeMs()),
			FirstReported: msPtr(s.FirstReportedTimeMs()),
		},
		TimeMeans: models.QoETimeMeans{
			Join:           msPtr(s.MeanJoinTimeMs()),
			Play:           msPtr(s.MeanPlayTimeMs()),
			Paused:         msPtr(s.MeanPausedTimeMs()),
			Rebuffer:       msPtr(s.MeanRebufferTimeMs()),
			SingleRebuffer: msPtr(s.MeanSingleRebufferTimeMs()),
			Seek:           msPtr(s.MeanSeekTimeMs()),
			SingleSeek:     msPtr(s.MeanSingleSeekTimeMs()),
			Wait:           msPtr(s.MeanWaitTimeMs()),
			PlayAndWait:    msPtr(s.MeanPlayAndWaitTimeMs()),
			Elapsed:        msPtr(s.MeanElapsedTimeMs()),
		},
		Ratios: models.QoERatios{
			AbandonedBeforeReady: s.AbandonedBeforeReadyRatio(),
			Ended:                s.EndedRatio(),
			MeanPauseCount:       s.MeanPauseCount(),
			MeanPauseBufferCount: s.MeanPauseBufferCount(),
			MeanSeekCount:        s.MeanSeekCount(),
			MeanRebufferCount:    s.MeanRebufferCount(),
			WaitTime:             s.WaitTimeRatio(),
			JoinTime:             s.JoinTimeRatio(),
			RebufferTime:         s.RebufferTimeRatio(),
			SeekTime:             s.SeekTimeRatio(),
			RebufferRate:         s.RebufferRate(),
		},
		StateDurations: make([]models.QoEStateDuration, 0, playback.StateCount),
	}

	if mtbr := s.MeanTimeBetweenRebuffers(); !math.IsInf(mtbr, 0) && !math.IsNaN(mtbr) {
		r.Ratios.MeanTimeBetweenRebuffersSec = &mtbr
	}

	for _, state := range playback.AllStates() {
		r.StateDurations = append(r.StateDurations, models.QoEStateDuration{
			State:      state.String(),
			DurationMs: s.DurationOf(state),
		})
	}
	return r
}

// StatePoint reports the state of a single-session snapshot at atMs.
func StatePoint(sessionID, source string, s playback.Snapshot, atMs int64) models.QoEStatePoint {
	return models.QoEStatePoint{
		SessionID: sessionID,
		Source:    source,
		AtMs:      atMs,
		State:     s.StateAt(atMs).String(),
	}
}

func msPtr(v playback.TimeValue) *int64 {
	ms, ok := v.Get()
	if !ok {
		return nil
	}
	return &ms
}
