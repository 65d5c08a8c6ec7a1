// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import "errors"

// ErrUnknownState is returned when a state value or name is not one of the 13 playback states.
var ErrUnknownState = errors.New("unknown playback state")

// ErrNonMonotonic is returned when event timestamps go backwards, or when the
// finish time precedes the last event.
var ErrNonMonotonic = errors.New("event timestamps are not monotonic")

// ErrNegativeTime is returned for timestamps below zero.
var ErrNegativeTime = errors.New("negative event timestamp")

// ErrBuilderFinished is returned when a Builder is used after Finish.
var ErrBuilderFinished = errors.New("builder already finished")
