// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import (
	"fmt"
	"strings"
)

// State is the state of a playback at a given instant.
// The numeric value doubles as the index into per-state arrays.
type State uint8

// Playback states. The order is fixed; StateCount must stay last.
const (
	// NotStarted is the initial state before playback was requested.
	NotStarted State = iota
	// JoiningBackground is buffering in the background for initial playback start.
	JoiningBackground
	// JoiningForeground is buffering in the foreground for initial playback start.
	JoiningForeground
	// Playing is actively playing.
	Playing
	// Paused is paused but ready to play.
	Paused
	// Seeking is handling a seek.
	Seeking
	// Buffering is buffering to restart playback.
	Buffering
	// PausedBuffering is buffering while paused.
	PausedBuffering
	// SeekBuffering is buffering after a seek.
	SeekBuffering
	// Ended means the end of the media was reached.
	Ended
	// Stopped means playback is stopped and can be resumed.
	Stopped
	// Failed means playback stopped due to a fatal error and can be retried.
	Failed
	// Suspended means playback was interrupted, e.g. the user left or another playback took over.
	Suspended

	// StateCount is the number of playback states.
	StateCount = int(Suspended) + 1
)

var stateNames = [StateCount]string{
	NotStarted:        "not_started",
	JoiningBackground: "joining_background",
	JoiningForeground: "joining_foreground",
	Playing:           "playing",
	Paused:            "paused",
	Seeking:           "seeking",
	Buffering:         "buffering",
	PausedBuffering:   "paused_buffering",
	SeekBuffering:     "seek_buffering",
	Ended:             "ended",
	Stopped:           "stopped",
	Failed:            "failed",
	Suspended:         "suspended",
}

// AllStates returns every state in index order.
func AllStates() []State {
	states := make([]State, StateCount)
	for i := range states {
		states[i] = State(i)
	}
	return states
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	return int(s) < StateCount
}

// Index returns the zero-based array index of s.
func (s State) Index() int {
	return int(s)
}

// String returns the snake_case name of the state.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// ParseState resolves a state name. Matching ignores case and accepts
// hyphens or spaces in place of underscores, so "Paused-Buffering" works.
func ParseState(name string) (State, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for i, n := range stateNames {
		if n == normalized {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// isPaused reports whether playback is paused in s.
func (s State) isPaused() bool {
	return s == Paused || s == PausedBuffering
}

// isReady reports whether s means the player was ready to play.
func (s State) isReady() bool {
	return s == Playing || s == Paused
}

// isRebuffering reports whether s continues a rebuffer episode.
func (s State) isRebuffering() bool {
	return s == Buffering || s == PausedBuffering
}

// isForeground reports whether reaching s means the playback was user visible.
func (s State) isForeground() bool {
	switch s {
	case NotStarted, JoiningBackground, Stopped, Failed, Suspended:
		return false
	default:
		return true
	}
}

// invalidatesJoin reports whether entering s during a join makes the join time meaningless.
func (s State) invalidatesJoin() bool {
	switch s {
	case Seeking, SeekBuffering, Stopped, Failed:
		return true
	default:
		return false
	}
}
