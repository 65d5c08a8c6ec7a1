// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package models defines the data transfer objects written by playstats.

The playback package keeps statistics in an immutable Snapshot with unexported
fields and optional time values. The types here are the flat, JSON-tagged view
of that snapshot used by the report renderers.

Key Components:

  - QoEReport: statistics of one session or of the aggregate
  - QoEReportSet: everything a summarize or merge run produces
  - QoEStatePoint: the answer to a state-at query

Optional values:

Time values that are unset in a snapshot are encoded as JSON null through
pointer fields, never as 0. A mean time between rebuffers of +Inf (no rebuffer
observed) is encoded as null as well, since JSON has no infinity.

Example JSON:

	{
	  "label": "aggregate",
	  "sessions": {"total": 2, "foreground": 2, ...},
	  "time_totals_ms": {"join": 400, "valid_join": 400, "max_rebuffer": null, ...},
	  "ratios": {"rebuffer_rate": 0, "mean_time_between_rebuffers_sec": null, ...}
	}
*/
package models
