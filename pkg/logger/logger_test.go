package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, flush := logger.NewWithWriter(&buf, logger.Config{Level: "info", Format: "json"}, requestID, nil)
	require.NoError(t, flush(context.Background()))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(slog.String("component", "test")).InfoContext(ctx, "submitted", slog.String("grade", "Form 1–3 (JCE)"))
	log.DebugContext(ctx, "hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "submitted", rec["msg"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "test", rec["component"])
	assert.Equal(t, "Form 1–3 (JCE)", rec["grade"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_TextAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, _ := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Format: "text"})
	log.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, _ := logger.NewWithWriter(&buf, logger.Config{Level: "loud"})
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextHandler_WithGroupKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), requestID)
	log := slog.New(h).WithGroup("payment")

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
	log.InfoContext(ctx, "captured", slog.String("order_id", "O-1"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	group, ok := rec["payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "O-1", group["order_id"])
	assert.Equal(t, "req-2", group["request_id"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}
