// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package validation

import (
	"strings"
	"testing"
)

type testEvent struct {
	TimeMs *int64 `json:"t_ms" validate:"required,gte=0"`
	State  string `json:"state" validate:"required,playback_state"`
}

type testOutput struct {
	Format    string `koanf:"format" validate:"oneof=table json auto"`
	Namespace string `koanf:"namespace" validate:"max=8"`
}

type testConfig struct {
	Level       string     `koanf:"level" validate:"log_level"`
	Concurrency int        `koanf:"concurrency" validate:"gte=1,lte=64"`
	Output      testOutput `koanf:"output"`
	Ignored     string     `json:"-" validate:"required"`
}

func int64Ptr(v int64) *int64 { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	ev := testEvent{TimeMs: int64Ptr(0), State: "paused-buffering"}
	if err := ValidateStruct(&ev); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_EventErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		event     testEvent
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing time",
			event:     testEvent{State: "playing"},
			wantField: "t_ms",
			wantTag:   "required",
			wantMsg:   "t_ms is required",
		},
		{
			name:      "negative time",
			event:     testEvent{TimeMs: int64Ptr(-5), State: "playing"},
			wantField: "t_ms",
			wantTag:   "gte",
			wantMsg:   "t_ms must be greater than or equal to 0",
		},
		{
			name:      "unknown state",
			event:     testEvent{TimeMs: int64Ptr(10), State: "rewinding"},
			wantField: "state",
			wantTag:   "playback_state",
			wantMsg:   "state must name a playback state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.event)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_ConfigMessages(t *testing.T) {
	t.Parallel()

	cfg := testConfig{
		Level:       "loud",
		Concurrency: 100,
		Output:      testOutput{Format: "xml", Namespace: "much_too_long"},
		Ignored:     "set",
	}

	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	want := []string{
		"level must be a log level (trace, debug, info, warn, error)",
		"concurrency must be less than or equal to 64",
		"format must be one of: table json auto",
		"namespace must be at most 8 characters",
	}
	if len(err.Errors()) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(err.Errors()), len(want), err)
	}
	for i, fe := range err.Errors() {
		if fe.Error() != want[i] {
			t.Errorf("error %d = %q, want %q", i, fe.Error(), want[i])
		}
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("combined Error() = %q, want messages joined by '; '", err.Error())
	}
}

func TestValidateStruct_ParamAndValue(t *testing.T) {
	t.Parallel()

	cfg := testConfig{Level: "info", Concurrency: 0, Output: testOutput{Format: "table"}, Ignored: "x"}
	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	fe := err.Errors()[0]
	if fe.Param() != "1" {
		t.Errorf("Param() = %q, want 1", fe.Param())
	}
	if fe.Value() != 0 {
		t.Errorf("Value() = %v, want 0", fe.Value())
	}
	if got := fe.Error(); got != "concurrency must be greater than or equal to 1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestStructValidationError_Empty(t *testing.T) {
	t.Parallel()

	var ve StructValidationError
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q, want %q", ve.Error(), "validation failed")
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("ValidateStruct(string) = nil, want error")
	}
	if err.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", err.Errors()[0].Field())
	}
}

func TestValidateStruct_MetricNamespace(t *testing.T) {
	t.Parallel()

	type exporter struct {
		Namespace string `koanf:"metrics_namespace" validate:"required,metric_namespace"`
	}

	tests := []struct {
		namespace string
		valid     bool
	}{
		{"playstats", true},
		{"_qoe", true},
		{"Player2_stats", true},
		{"my-app", false},
		{"2fast", false},
		{"ns:sub", false},
		{"with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&exporter{Namespace: tt.namespace})
			if tt.valid {
				if err != nil {
					t.Errorf("ValidateStruct(%q) = %v, want nil", tt.namespace, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateStruct(%q) = nil, want error", tt.namespace)
			}
			if got := err.Errors()[0].Tag(); got != "metric_namespace" {
				t.Errorf("Tag() = %q, want metric_namespace", got)
			}
			if !strings.HasPrefix(err.Error(), "metrics_namespace must start with a letter") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}
