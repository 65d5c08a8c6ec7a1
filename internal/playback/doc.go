// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package playback turns the state transitions of a player into playback statistics.

A single playback session is described by an ordered list of (timestamp, state)
events. Build folds that list into an immutable Snapshot holding the time spent
in each State, a handful of counters (pauses, seeks, rebuffers, ...) and the
state history itself. Snapshots from many sessions are combined with Merge,
which keeps every counter and duration but drops the history, since a history
only makes sense for one playback.

# States

Every instant of a session is in exactly one of 13 states:

	NotStarted         initial state, nothing requested yet
	JoiningBackground  pre-buffering while not visible to the user
	JoiningForeground  buffering for the initial start while visible
	Playing            actively playing
	Paused             paused but ready to play
	Seeking            handling a seek
	Buffering          rebuffering after playback started
	PausedBuffering    buffering while paused
	SeekBuffering      buffering after a seek
	Ended              reached the end of the media
	Stopped            stopped, can be resumed
	Failed             stopped by a fatal error, can be retried
	Suspended          interrupted, e.g. by another playback

# Unset values

Durations that may not be known (first reported time, total valid join time,
longest rebuffer, and all mean durations) are TimeValue. A TimeValue is either
unset or a non-negative number of milliseconds; unset never takes part in a
sum, minimum or maximum.

# Derived metrics

Snapshot exposes totals (TotalPlayTimeMs, TotalWaitTimeMs, ...), means
(MeanJoinTimeMs, MeanRebufferTimeMs, ...) and ratios (RebufferRate,
WaitTimeRatio, AbandonedBeforeReadyRatio, ...). Means are unset when their
denominator is zero; ratios and rates are 0 in that case.

# Example

	stats, err := playback.Build(playback.Session{
	    Events: []playback.Event{
	        {TimeMs: 0, State: playback.JoiningForeground},
	        {TimeMs: 800, State: playback.Playing},
	        {TimeMs: 5800, State: playback.Ended},
	    },
	    NowMs: 6000,
	})
	if err != nil {
	    return err
	}
	join := stats.MeanJoinTimeMs() // 800ms
	all := playback.Merge(stats, other)

Snapshots are values with no shared mutable state and are safe for concurrent
readers.
*/
package playback
