// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/playstats/internal/playback"
)

// WriteTextfile writes the snapshot gauges and the run counters to path in
// Prometheus text exposition format. The file is replaced atomically, so it
// can be pointed at a node_exporter textfile directory.
func WriteTextfile(path, namespace string, snapshot playback.Snapshot) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewSnapshotCollector(namespace, snapshot)); err != nil {
		return fmt.Errorf("register snapshot collector: %w", err)
	}

	if err := prometheus.WriteToTextfile(path, prometheus.Gatherers{reg, Registry}); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
