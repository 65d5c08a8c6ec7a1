// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package metrics

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/playstats/internal/playback"
)

func TestRecordFileDecoded(t *testing.T) {
	tests := []struct {
		name   string
		result string
	}{
		{"decoded", ResultOK},
		{"invalid content", ResultInvalid},
		{"missing file", ResultUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(FilesDecoded.WithLabelValues(tt.result))
			RecordFileDecoded(tt.result, 2*time.Millisecond)
			after := testutil.ToFloat64(FilesDecoded.WithLabelValues(tt.result))
			if after != before+1 {
				t.Errorf("files_decoded_total{result=%q} = %v, want %v", tt.result, after, before+1)
			}
		})
	}
}

func TestRecordSessionBuilt(t *testing.T) {
	sessions := testutil.ToFloat64(SessionsBuilt)
	events := testutil.ToFloat64(EventsObserved)

	RecordSessionBuilt(7)

	if got := testutil.ToFloat64(SessionsBuilt); got != sessions+1 {
		t.Errorf("sessions_built_total = %v, want %v", got, sessions+1)
	}
	if got := testutil.ToFloat64(EventsObserved); got != events+7 {
		t.Errorf("events_observed_total = %v, want %v", got, events+7)
	}
}

func TestRejectReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("event 3: %w", playback.ErrNonMonotonic), "non_monotonic"},
		{fmt.Errorf("event 0: %w", playback.ErrNegativeTime), "negative_time"},
		{playback.ErrUnknownState, "unknown_state"},
		{errors.New("disk on fire"), "other"},
	}

	for _, tt := range tests {
		if got := rejectReason(tt.err); got != tt.want {
			t.Errorf("rejectReason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRecordSessionRejected(t *testing.T) {
	counter := SessionsRejected.WithLabelValues("non_monotonic")
	before := testutil.ToFloat64(counter)

	RecordSessionRejected(fmt.Errorf("event 2: %w", playback.ErrNonMonotonic))

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("sessions_rejected_total{reason=non_monotonic} = %v, want %v", got, before+1)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	before := testutil.ToFloat64(SessionsBuilt)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordSessionBuilt(1)
			RecordFileDecoded(ResultOK, time.Millisecond)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(SessionsBuilt); got != before+50 {
		t.Errorf("sessions_built_total = %v, want %v", got, before+50)
	}
}

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		FilesDecoded,
		FileDecodeDuration,
		SessionsBuilt,
		SessionsRejected,
		EventsObserved,
	}

	for _, c := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("collector %T has no descriptors", c)
		}
	}
}

func TestRegistryLint(t *testing.T) {
	RecordFileDecoded(ResultOK, time.Millisecond)

	problems, err := testutil.GatherAndLint(Registry)
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		t.Logf("lint problem on %s: %s", p.Metric, p.Text)
	}
}
