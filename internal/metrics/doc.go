// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package metrics exports playstats results in Prometheus format.

Two kinds of metrics live here.

Run metrics are counters and histograms registered on Registry and updated
while event files are loaded:
  - playstats_files_decoded_total: processed event files (counter)
    Labels: result (ok, invalid, unreadable)
  - playstats_file_decode_duration_seconds: read+decode+build time per file (histogram)
  - playstats_sessions_built_total: sessions folded into a snapshot (counter)
  - playstats_sessions_rejected_total: sessions refused by the builder (counter)
    Labels: reason (non_monotonic, negative_time, unknown_state, other)
  - playstats_events_observed_total: state events read (counter)

Snapshot metrics are constant gauges produced by SnapshotCollector from a
playback.Snapshot, prefixed with a configurable namespace:
  - <ns>_state_duration_seconds{state}
  - <ns>_sessions, <ns>_foreground_sessions, <ns>_rebuffers, ...
  - <ns>_rebuffer_rate_per_second, <ns>_wait_time_ratio, ...
  - <ns>_mean_join_time_seconds, <ns>_max_rebuffer_time_seconds (omitted when unset)

# Textfile Export

The CLI has no HTTP endpoint. WriteTextfile renders both sets into a file for
the node_exporter textfile collector:

	playstats summarize sessions/*.json --metrics-textfile /var/lib/node_exporter/playstats.prom
*/
package metrics
