// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if id := GenerateCorrelationID(); len(id) != 8 {
		t.Errorf("GenerateCorrelationID() = %q, want 8 chars", id)
	}
	if id := GenerateRequestID(); len(id) != 36 {
		t.Errorf("GenerateRequestID() = %q, want UUID", id)
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("GenerateRequestID() returned duplicates")
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Error("empty context returned IDs")
	}

	ctx = ContextWithCorrelationID(ctx, "corr-1")
	ctx = ContextWithRequestID(ctx, "req-1")
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext() = %q", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}

	if got := CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background())); got == "" {
		t.Error("ContextWithNewCorrelationID() stored no ID")
	}
}

func TestContextWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf).With().Str("scope", "handler").Logger())

	logger := LoggerFromContext(ctx)
	logger.Info().Msg("from context")

	if !strings.Contains(buf.String(), `"scope":"handler"`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestCtx(t *testing.T) {
	buf := captureGlobal(t, zerolog.InfoLevel)

	ctx := ContextWithCorrelationID(context.Background(), "corr-123")
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("context test")

	output := buf.String()
	if !strings.Contains(output, `"correlation_id":"corr-123"`) {
		t.Errorf("missing correlation_id: %s", output)
	}
	if !strings.Contains(output, `"request_id":"req-456"`) {
		t.Errorf("missing request_id: %s", output)
	}
}

func TestCtx_NoIDs(t *testing.T) {
	buf := captureGlobal(t, zerolog.InfoLevel)

	Ctx(context.Background()).Info().Msg("bare")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id: %s", buf.String())
	}
}

func TestCtxWith(t *testing.T) {
	buf := captureGlobal(t, zerolog.InfoLevel)

	ctx := ContextWithCorrelationID(context.Background(), "corr-789")
	logger := CtxWith(ctx).Int("results", 3).Logger()
	logger.Info().Msg("ranked")

	output := buf.String()
	if !strings.Contains(output, "corr-789") || !strings.Contains(output, `"results":3`) {
		t.Errorf("output = %s", output)
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t, zerolog.InfoLevel)

	logger := WithComponent("reload")
	logger.Info().Msg("watching dataset")

	if !strings.Contains(buf.String(), `"component":"reload"`) {
		t.Errorf("output = %s", buf.String())
	}
}
