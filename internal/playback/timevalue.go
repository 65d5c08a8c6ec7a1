// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import (
	"bytes"
	"strconv"
	"time"
)

// TimeValue is an optional millisecond duration or timestamp.
// The zero value is unset, which is distinct from Millis(0).
type TimeValue struct {
	ms  int64
	set bool
}

// Unset returns a TimeValue with no value.
func Unset() TimeValue {
	return TimeValue{}
}

// Millis returns a set TimeValue holding ms milliseconds.
func Millis(ms int64) TimeValue {
	return TimeValue{ms: ms, set: true}
}

// IsSet reports whether the value is known.
func (v TimeValue) IsSet() bool {
	return v.set
}

// Get returns the milliseconds and whether the value is set.
func (v TimeValue) Get() (int64, bool) {
	return v.ms, v.set
}

// MillisOr returns the milliseconds, or fallback when unset.
func (v TimeValue) MillisOr(fallback int64) int64 {
	if !v.set {
		return fallback
	}
	return v.ms
}

// Duration converts a set value to a time.Duration. Unset yields false.
func (v TimeValue) Duration() (time.Duration, bool) {
	if !v.set {
		return 0, false
	}
	return time.Duration(v.ms) * time.Millisecond, true
}

// String returns the value in milliseconds, or "unset".
func (v TimeValue) String() string {
	if !v.set {
		return "unset"
	}
	return strconv.FormatInt(v.ms, 10) + "ms"
}

// MarshalJSON encodes unset as null and set values as a number of milliseconds.
func (v TimeValue) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, v.ms, 10), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *TimeValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Unset()
		return nil
	}
	ms, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return err
	}
	*v = Millis(ms)
	return nil
}

// sumDefined adds b to a, skipping unset operands. Unset + unset stays unset.
func sumDefined(a, b TimeValue) TimeValue {
	switch {
	case !a.set:
		return b
	case !b.set:
		return a
	default:
		return Millis(a.ms + b.ms)
	}
}

// minDefined returns the smaller of the set operands.
func minDefined(a, b TimeValue) TimeValue {
	switch {
	case !a.set:
		return b
	case !b.set:
		return a
	case b.ms < a.ms:
		return b
	default:
		return a
	}
}

// maxDefined returns the larger of the set operands.
func maxDefined(a, b TimeValue) TimeValue {
	switch {
	case !a.set:
		return b
	case !b.set:
		return a
	case b.ms > a.ms:
		return b
	default:
		return a
	}
}

// meanOf divides total by count, unset when count is zero or total is unset.
func meanOf(total TimeValue, count int) TimeValue {
	if count == 0 || !total.set {
		return Unset()
	}
	return Millis(total.ms / int64(count))
}
