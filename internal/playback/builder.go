// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import "fmt"

// Session is the recorded input of one playback.
type Session struct {
	// Events are the state transitions in non-decreasing time order.
	Events []Event

	// Now closes the last open state. Unset closes it at the last event,
	// so the final state contributes no duration.
	Now TimeValue

	// Ad marks the playback as an ad playback.
	Ad bool
}

// Build folds a session's events into a Snapshot.
func Build(session Session) (Snapshot, error) {
	var opts []BuilderOption
	if session.Ad {
		opts = append(opts, WithAdPlayback())
	}
	b := NewBuilder(opts...)
	for i, e := range session.Events {
		if err := b.Observe(e.TimeMs, e.State); err != nil {
			return Snapshot{}, fmt.Errorf("event %d: %w", i, err)
		}
	}

	now := b.lastTimeMs
	if session.Now.IsSet() {
		now = session.Now.ms
	}
	return b.Finish(now)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithAdPlayback counts the playback as an ad playback.
func WithAdPlayback() BuilderOption {
	return func(b *Builder) {
		b.ad = true
	}
}

// Builder accumulates the statistics of a single playback one event at a time.
// It is not safe for concurrent use. After Finish it rejects further calls.
type Builder struct {
	stats Snapshot

	started      bool
	finished     bool
	current      State
	currentSince int64
	lastTimeMs   int64

	ad         bool
	foreground bool
	background bool
	ended      bool
	ready      bool

	joinStarted bool
	joinValid   bool
	joinTimeMs  int64

	inRebuffer bool
	rebufferMs int64
}

// NewBuilder returns a Builder for a playback that has not reported any event yet.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{current: NotStarted}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Observe records that state became active at timeMs.
func (b *Builder) Observe(timeMs int64, state State) error {
	if b.finished {
		return ErrBuilderFinished
	}
	if !state.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownState, uint8(state))
	}
	if timeMs < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTime, timeMs)
	}
	if b.started && timeMs < b.lastTimeMs {
		return fmt.Errorf("%w: %d after %d", ErrNonMonotonic, timeMs, b.lastTimeMs)
	}

	if b.started {
		b.advance(timeMs)
	} else {
		b.stats.firstReportedTimeMs = Millis(timeMs)
	}

	b.transition(b.current, state)

	b.stats.history = append(b.stats.history, Event{TimeMs: timeMs, State: state})
	b.started = true
	b.current = state
	b.currentSince = timeMs
	b.lastTimeMs = timeMs
	return nil
}

// Finish closes the current state at nowMs and returns the finished Snapshot.
func (b *Builder) Finish(nowMs int64) (Snapshot, error) {
	if b.finished {
		return Snapshot{}, ErrBuilderFinished
	}
	if b.started {
		if nowMs < b.lastTimeMs {
			return Snapshot{}, fmt.Errorf("%w: finish at %d before last event at %d", ErrNonMonotonic, nowMs, b.lastTimeMs)
		}
		b.advance(nowMs)
		b.closeRebuffer()
	}
	b.finished = true

	stats := b.stats
	stats.sessionCount = 1
	stats.foregroundCount = boolCount(b.foreground)
	stats.backgroundJoiningCount = boolCount(b.background)
	stats.endedCount = boolCount(b.ended)
	stats.abandonedBeforeReadyCount = boolCount(!b.ready)
	stats.adPlaybackCount = boolCount(b.ad)
	stats.history = b.stats.history[:len(b.stats.history):len(b.stats.history)]
	return stats, nil
}

// advance charges the time since the current state began to that state.
func (b *Builder) advance(timeMs int64) {
	elapsed := timeMs - b.currentSince
	b.stats.durations[b.current] += elapsed
	if b.joinStarted && !b.ready && b.current == JoiningForeground {
		b.joinTimeMs += elapsed
	}
	if b.inRebuffer && b.current.isRebuffering() {
		b.rebufferMs += elapsed
	}
	b.currentSince = timeMs
}

// transition applies the counter rules for moving from prev to next.
func (b *Builder) transition(prev, next State) {
	// Every seek counts, even one issued while a previous seek is still pending.
	if next == Seeking {
		b.stats.seekCount++
	}
	if b.started && prev == next {
		return
	}

	if next.isForeground() {
		b.foreground = true
	}
	switch next {
	case JoiningBackground:
		b.background = true
	case JoiningForeground:
		if !b.joinStarted && !b.ready {
			b.joinStarted = true
			b.joinValid = true
		}
	case Ended:
		b.ended = true
	}

	if b.joinStarted && !b.ready && next.invalidatesJoin() {
		b.joinValid = false
	}
	if next.isReady() && !b.ready {
		b.ready = true
		if b.joinStarted && b.joinValid {
			b.stats.totalValidJoinTimeMs = sumDefined(b.stats.totalValidJoinTimeMs, Millis(b.joinTimeMs))
			b.stats.validJoinTimeCount++
		}
	}

	if b.inRebuffer && !next.isRebuffering() {
		b.closeRebuffer()
	}
	if next == Buffering && prev.isReady() {
		b.stats.rebufferCount++
		b.inRebuffer = true
		b.rebufferMs = 0
	}

	if next.isPaused() && !prev.isPaused() {
		b.stats.pauseCount++
	}
	if next == PausedBuffering && prev == Buffering {
		b.stats.pauseWhileBufferingCount++
	}
}

func (b *Builder) closeRebuffer() {
	if !b.inRebuffer {
		return
	}
	b.stats.maxRebufferTimeMs = maxDefined(b.stats.maxRebufferTimeMs, Millis(b.rebufferMs))
	b.inRebuffer = false
	b.rebufferMs = 0
}

func boolCount(v bool) int {
	if v {
		return 1
	}
	return 0
}
