// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRunID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRunID()
	id2 := GenerateRunID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character run ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique run IDs")
	}
}

func TestRunIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RunIDFromContext(ctx); id != "" {
		t.Errorf("expected empty run ID, got %s", id)
	}

	ctx = ContextWithRunID(ctx, "run-1234")
	if id := RunIDFromContext(ctx); id != "run-1234" {
		t.Errorf("expected run-1234, got %s", id)
	}

	ctx = ContextWithNewRunID(context.Background())
	if id := RunIDFromContext(ctx); len(id) != 8 {
		t.Errorf("expected generated 8-character run ID, got %q", id)
	}
}

func TestCtx_AddsRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRunID(ctx, "abc12345")

	Ctx(ctx).Info().Msg("with run id")

	output := buf.String()
	if !strings.Contains(output, `"run_id":"abc12345"`) {
		t.Errorf("expected run_id in output: %s", output)
	}
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRunID(ctx, "feed0001")

	logger := WithComponent(ctx, "eventlog")
	logger.Warn().Msg("component message")

	output := buf.String()
	for _, want := range []string{`"component":"eventlog"`, `"run_id":"feed0001"`, "component message"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	logger := LoggerFromContext(context.Background())
	logger.Info().Msg("global fallback")

	if !strings.Contains(buf.String(), "global fallback") {
		t.Errorf("expected global logger output, got: %s", buf.String())
	}
}
