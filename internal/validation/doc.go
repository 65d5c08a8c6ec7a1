// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the config loader and the event-log
// decoder. Besides the built-in tags it knows playback_state (the string names a
// playback state) and log_level. Failures come back as *StructValidationError,
// whose Error() joins one readable message per field:
//
//	type rawEvent struct {
//	    TimeMs *int64 `json:"t_ms" validate:"required,gte=0"`
//	    State  string `json:"state" validate:"required,playback_state"`
//	}
//
//	if err := validation.ValidateStruct(&ev); err != nil {
//	    return fmt.Errorf("event %d: %w", i, err)
//	}
package validation
