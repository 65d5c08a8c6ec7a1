// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package eventlog reads recorded playback sessions from disk.

Each file holds one session, either as a JSON document

	{
	  "session_id": "living-room-42",
	  "ad": false,
	  "now_ms": 9000,
	  "events": [
	    {"t_ms": 0, "state": "joining_foreground"},
	    {"t_ms": 800, "state": "playing"}
	  ]
	}

or as JSON Lines with one event per line. now_ms closes the last state; when
it is missing the session ends at its last event. State names are those of
playback.ParseState, so "paused-buffering" and "Paused Buffering" are accepted.
A session without session_id gets a random UUID.

Loader decodes files with bounded parallelism (errgroup) and builds one
playback.Snapshot per file, updating the run metrics of package metrics as it
goes. In strict mode the first bad file aborts the load; otherwise bad files
are logged and returned in Result.Skipped:

	loader := eventlog.NewLoader(eventlog.WithWorkers(4))
	result, err := loader.LoadFiles(ctx, paths)
	if err != nil {
	    return err
	}
	total := playback.Merge(result.Snapshots()...)
*/
package eventlog
