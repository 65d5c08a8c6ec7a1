// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestQoEReportSet_JSONNulls(t *testing.T) {
	t.Parallel()

	set := QoEReportSet{
		Aggregate: QoEReport{Label: "aggregate"},
		Metadata: QoEReportMetadata{
			RunID:       "abcd1234",
			GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		`"valid_join":null`,
		`"max_rebuffer":null`,
		`"first_reported":null`,
		`"mean_time_between_rebuffers_sec":null`,
		`"run_id":"abcd1234"`,
		`"generated_at":"2026-01-02T03:04:05Z"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON missing %s:\n%s", want, got)
		}
	}
	for _, absent := range []string{`"sessions":[`, `"skipped":[`, `"source"`} {
		if strings.Contains(got, absent) {
			t.Errorf("JSON should omit %s:\n%s", absent, got)
		}
	}
}

func TestQoETimeTotals_ZeroIsNotNull(t *testing.T) {
	t.Parallel()

	zero := int64(0)
	data, err := json.Marshal(QoETimeTotals{ValidJoin: &zero})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"valid_join":0`) {
		t.Errorf("valid_join = %s, want 0", data)
	}
}
