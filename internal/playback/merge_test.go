// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var snapshotCmpOpts = []cmp.Option{
	cmp.AllowUnexported(Snapshot{}, TimeValue{}),
	cmpopts.EquateEmpty(),
}

func mustBuild(t *testing.T, session Session) Snapshot {
	t.Helper()
	stats, err := Build(session)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return stats
}

// fixtureSessions returns three sessions with different, partly unset, timing fields.
func fixtureSessions(t *testing.T) (a, b, c Snapshot) {
	t.Helper()
	a = mustBuild(t, Session{
		Events: events(
			1000, JoiningForeground,
			1400, Playing,
			3400, Buffering,
			3700, Playing,
			6000, Paused,
		),
		Now: Millis(7000),
	})
	b = mustBuild(t, Session{
		Events: events(200, JoiningBackground, 900, Suspended),
		Now:    Millis(1000),
	})
	c = mustBuild(t, Session{
		Events: events(
			50, JoiningForeground,
			60, Seeking,
			90, SeekBuffering,
			400, Playing,
			900, Buffering,
			1900, Playing,
			2000, Ended,
		),
		Ad: true,
	})
	return a, b, c
}

func TestMerge_Empty(t *testing.T) {
	t.Parallel()

	merged := Merge()
	if merged.SessionCount() != 0 {
		t.Errorf("SessionCount() = %d, want 0", merged.SessionCount())
	}
	for _, tv := range []TimeValue{
		merged.FirstReportedTimeMs(),
		merged.TotalValidJoinTimeMs(),
		merged.MaxRebufferTimeMs(),
	} {
		if tv.IsSet() {
			t.Errorf("time value %v should be unset on the empty merge", tv)
		}
	}
	if merged.TotalElapsedTimeMs() != 0 {
		t.Errorf("TotalElapsedTimeMs() = %d, want 0", merged.TotalElapsedTimeMs())
	}
	if diff := cmp.Diff(Empty(), merged, snapshotCmpOpts...); diff != "" {
		t.Errorf("Merge() differs from Empty() (-want +got):\n%s", diff)
	}
}

func TestMerge_SingleDropsHistoryOnly(t *testing.T) {
	t.Parallel()

	a, _, _ := fixtureSessions(t)
	merged := Merge(a)

	if len(merged.History()) != 0 {
		t.Errorf("merged history has %d entries, want 0", len(merged.History()))
	}
	withoutHistory := a
	withoutHistory.history = nil
	if diff := cmp.Diff(withoutHistory, merged, snapshotCmpOpts...); diff != "" {
		t.Errorf("Merge(a) mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_CombinationRules(t *testing.T) {
	t.Parallel()

	a, b, c := fixtureSessions(t)
	merged := Merge(a, b, c)

	if merged.SessionCount() != 3 {
		t.Errorf("SessionCount() = %d, want 3", merged.SessionCount())
	}
	if got := merged.FirstReportedTimeMs(); got != Millis(50) {
		t.Errorf("FirstReportedTimeMs() = %v, want 50ms", got)
	}
	// a joined validly in 400ms; c's join was interrupted by a seek; b never joined.
	if got := merged.TotalValidJoinTimeMs(); got != Millis(400) {
		t.Errorf("TotalValidJoinTimeMs() = %v, want 400ms", got)
	}
	if merged.ValidJoinTimeCount() != 1 {
		t.Errorf("ValidJoinTimeCount() = %d, want 1", merged.ValidJoinTimeCount())
	}
	if got := merged.MaxRebufferTimeMs(); got != Millis(1000) {
		t.Errorf("MaxRebufferTimeMs() = %v, want 1000ms", got)
	}
	if merged.RebufferCount() != 2 {
		t.Errorf("RebufferCount() = %d, want 2", merged.RebufferCount())
	}
	if merged.ForegroundCount() != 2 {
		t.Errorf("ForegroundCount() = %d, want 2", merged.ForegroundCount())
	}
	if merged.AbandonedBeforeReadyCount() != 1 {
		t.Errorf("AbandonedBeforeReadyCount() = %d, want 1", merged.AbandonedBeforeReadyCount())
	}
	if merged.BackgroundJoiningCount() != 1 {
		t.Errorf("BackgroundJoiningCount() = %d, want 1", merged.BackgroundJoiningCount())
	}
	if merged.AdPlaybackCount() != 1 {
		t.Errorf("AdPlaybackCount() = %d, want 1", merged.AdPlaybackCount())
	}
	if merged.SeekCount() != 1 || merged.PauseCount() != 1 || merged.EndedCount() != 1 {
		t.Errorf("seek/pause/ended = %d/%d/%d, want 1/1/1",
			merged.SeekCount(), merged.PauseCount(), merged.EndedCount())
	}

	want := a.TotalElapsedTimeMs() + b.TotalElapsedTimeMs() + c.TotalElapsedTimeMs()
	if merged.TotalElapsedTimeMs() != want {
		t.Errorf("TotalElapsedTimeMs() = %d, want %d", merged.TotalElapsedTimeMs(), want)
	}
	for _, state := range AllStates() {
		sum := a.DurationOf(state) + b.DurationOf(state) + c.DurationOf(state)
		if merged.DurationOf(state) != sum {
			t.Errorf("DurationOf(%v) = %d, want %d", state, merged.DurationOf(state), sum)
		}
	}
	if len(merged.History()) != 0 {
		t.Errorf("merged history has %d entries, want 0", len(merged.History()))
	}
}

func TestMerge_Commutative(t *testing.T) {
	t.Parallel()

	a, b, c := fixtureSessions(t)
	pairs := [][2]Snapshot{{a, b}, {a, c}, {b, c}, {a, Empty()}}
	for i, p := range pairs {
		if diff := cmp.Diff(Merge(p[0], p[1]), Merge(p[1], p[0]), snapshotCmpOpts...); diff != "" {
			t.Errorf("pair %d: Merge not commutative (-ab +ba):\n%s", i, diff)
		}
	}
}

func TestMerge_Associative(t *testing.T) {
	t.Parallel()

	a, b, c := fixtureSessions(t)
	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	flat := Merge(a, b, c)

	if diff := cmp.Diff(left, right, snapshotCmpOpts...); diff != "" {
		t.Errorf("Merge not associative (-left +right):\n%s", diff)
	}
	if diff := cmp.Diff(flat, left, snapshotCmpOpts...); diff != "" {
		t.Errorf("nested merge differs from flat merge (-flat +nested):\n%s", diff)
	}
}

func TestMerge_MaxRebufferIgnoresUnset(t *testing.T) {
	t.Parallel()

	withRebuffer := Snapshot{sessionCount: 1, foregroundCount: 1, rebufferCount: 1, maxRebufferTimeMs: Millis(300)}
	withoutRebuffer := Snapshot{sessionCount: 1, foregroundCount: 1}

	if got := Merge(withRebuffer, withoutRebuffer).MaxRebufferTimeMs(); got != Millis(300) {
		t.Errorf("MaxRebufferTimeMs() = %v, want 300ms", got)
	}
	if got := Merge(withoutRebuffer, withRebuffer).MaxRebufferTimeMs(); got != Millis(300) {
		t.Errorf("MaxRebufferTimeMs() = %v, want 300ms", got)
	}
	if got := Merge(withoutRebuffer, withoutRebuffer).MaxRebufferTimeMs(); got.IsSet() {
		t.Errorf("MaxRebufferTimeMs() = %v, want unset", got)
	}
}

func TestMerge_ZeroJoinTimeIsNotUnset(t *testing.T) {
	t.Parallel()

	zeroJoin := Snapshot{sessionCount: 1, foregroundCount: 1, totalValidJoinTimeMs: Millis(0), validJoinTimeCount: 1}
	noJoin := Snapshot{sessionCount: 1}

	merged := Merge(noJoin, zeroJoin, noJoin)
	if got := merged.TotalValidJoinTimeMs(); got != Millis(0) {
		t.Errorf("TotalValidJoinTimeMs() = %v, want 0ms", got)
	}
	if got := merged.MeanJoinTimeMs(); got != Millis(0) {
		t.Errorf("MeanJoinTimeMs() = %v, want 0ms", got)
	}
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	t.Parallel()

	a, b, _ := fixtureSessions(t)
	before := a.Durations()
	_ = Merge(a, b)
	if a.Durations() != before {
		t.Error("Merge mutated an input snapshot")
	}
	if len(a.History()) == 0 {
		t.Error("Merge cleared an input history")
	}
}
