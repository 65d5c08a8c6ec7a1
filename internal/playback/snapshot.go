// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import (
	"slices"
	"sort"
)

// Event is the moment a playback state became active.
type Event struct {
	// TimeMs is the event time in milliseconds since an arbitrary per-session origin,
	// e.g. device uptime. Timestamps of different sessions are not comparable.
	TimeMs int64 `json:"t_ms"`
	State  State `json:"state"`
}

// Snapshot holds the statistics of one playback session, or of several merged ones.
// It is immutable once returned from Build, Builder.Finish or Merge.
type Snapshot struct {
	sessionCount int

	durations [StateCount]int64
	history   []Event

	firstReportedTimeMs       TimeValue
	foregroundCount           int
	abandonedBeforeReadyCount int
	endedCount                int
	backgroundJoiningCount    int

	totalValidJoinTimeMs TimeValue
	validJoinTimeCount   int

	pauseCount               int
	pauseWhileBufferingCount int
	seekCount                int
	rebufferCount            int
	maxRebufferTimeMs        TimeValue

	adPlaybackCount int
}

// Empty returns the statistics of zero playbacks: no sessions, zero counters and
// every TimeValue unset. It equals Merge().
func Empty() Snapshot {
	return Snapshot{}
}

// SessionCount is the number of playbacks these statistics cover.
func (s Snapshot) SessionCount() int { return s.sessionCount }

// DurationOf returns the total time spent in state, in milliseconds.
// Unvisited or unknown states report 0.
func (s Snapshot) DurationOf(state State) int64 {
	if !state.Valid() {
		return 0
	}
	return s.durations[state]
}

// Durations returns the per-state durations indexed by State.
func (s Snapshot) Durations() [StateCount]int64 {
	return s.durations
}

// History returns a copy of the state history as ordered events.
// Merged snapshots have no history.
func (s Snapshot) History() []Event {
	return slices.Clone(s.history)
}

// StateAt returns the state active at timeMs: the state of the last event at or
// before timeMs. Times before the first event report NotStarted.
func (s Snapshot) StateAt(timeMs int64) State {
	i := sort.Search(len(s.history), func(i int) bool {
		return s.history[i].TimeMs > timeMs
	})
	if i == 0 {
		return NotStarted
	}
	return s.history[i-1].State
}

// FirstReportedTimeMs is the time of the earliest reported event, unset if none was reported.
func (s Snapshot) FirstReportedTimeMs() TimeValue { return s.firstReportedTimeMs }

// ForegroundCount is the number of playbacks that were the active foreground playback at some point.
func (s Snapshot) ForegroundCount() int { return s.foregroundCount }

// AbandonedBeforeReadyCount is the number of playbacks abandoned before they were ready to play.
func (s Snapshot) AbandonedBeforeReadyCount() int { return s.abandonedBeforeReadyCount }

// EndedCount is the number of playbacks that reached Ended at least once.
func (s Snapshot) EndedCount() int { return s.endedCount }

// BackgroundJoiningCount is the number of playbacks pre-buffered in the background.
func (s Snapshot) BackgroundJoiningCount() int { return s.backgroundJoiningCount }

// TotalValidJoinTimeMs is the total foreground join time of playbacks with a valid join.
// A join is invalid if the playback never became ready or the join was interrupted
// by a seek, stop or error. Unset when no valid join time exists.
func (s Snapshot) TotalValidJoinTimeMs() TimeValue { return s.totalValidJoinTimeMs }

// ValidJoinTimeCount is the number of playbacks contributing to TotalValidJoinTimeMs.
func (s Snapshot) ValidJoinTimeCount() int { return s.validJoinTimeCount }

// PauseCount is the number of times playback was paused.
func (s Snapshot) PauseCount() int { return s.pauseCount }

// PauseWhileBufferingCount is the number of times playback was paused while rebuffering.
func (s Snapshot) PauseWhileBufferingCount() int { return s.pauseWhileBufferingCount }

// SeekCount is the number of seeks, including seeks issued before a previous seek completed.
func (s Snapshot) SeekCount() int { return s.seekCount }

// RebufferCount is the number of rebuffers, excluding initial joining and buffering after a seek.
func (s Snapshot) RebufferCount() int { return s.rebufferCount }

// MaxRebufferTimeMs is the longest single rebuffer, unset if no rebuffer occurred.
func (s Snapshot) MaxRebufferTimeMs() TimeValue { return s.maxRebufferTimeMs }

// AdPlaybackCount is the number of ad playbacks.
func (s Snapshot) AdPlaybackCount() int { return s.adPlaybackCount }
