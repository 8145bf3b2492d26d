package htmx_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/submit", nil)
	assert.False(t, htmx.IsHTMX(r))
	r.Header.Set(htmx.HeaderHXRequest, "true")
	assert.True(t, htmx.IsHTMX(r))
}

func decodeTrigger(t *testing.T, h http.Header) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(h.Get(htmx.HeaderHXTrigger)), &out))
	return out
}

func TestTriggerToast(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, htmx.TriggerToast(rec, htmx.LevelSuccess, "Payment completed successfully!"))

	events := decodeTrigger(t, rec.Header())
	var toast htmx.Toast
	require.NoError(t, json.Unmarshal(events[htmx.ToastEvent], &toast))
	assert.Equal(t, htmx.Toast{Level: "success", Message: "Payment completed successfully!"}, toast)
}

func TestSetTrigger_Merges(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		h := http.Header{}
		require.NoError(t, htmx.SetTrigger(h, htmx.Events{"payment-completed": nil}))
		require.NoError(t, htmx.SetTrigger(h, htmx.Events{htmx.ToastEvent: htmx.Toast{Level: "info", Message: "x"}}))

		events := decodeTrigger(t, h)
		assert.Contains(t, events, "payment-completed")
		assert.Contains(t, events, htmx.ToastEvent)
	})

	t.Run("plain event name", func(t *testing.T) {
		t.Parallel()
		h := http.Header{}
		h.Set(htmx.HeaderHXTrigger, "reset-form")
		require.NoError(t, htmx.SetTrigger(h, htmx.Events{"other": "v"}))

		events := decodeTrigger(t, h)
		assert.Contains(t, events, "reset-form")
		assert.JSONEq(t, `"v"`, string(events["other"]))
	})

	t.Run("empty is noop", func(t *testing.T) {
		t.Parallel()
		h := http.Header{}
		require.NoError(t, htmx.SetTrigger(h, nil))
		assert.Empty(t, h.Get(htmx.HeaderHXTrigger))
	})
}

type text string

func (s text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

func TestConfig_ApplyHeaders(t *testing.T) {
	t.Parallel()

	cfg := htmx.NewConfig(
		htmx.WithRetarget("#request-form"),
		htmx.WithReswap(htmx.SwapOuterHTML),
		htmx.WithReplaceURL("false"),
		htmx.WithToast(htmx.LevelError, "Please complete the payment first"),
		htmx.WithOOB(text("<div id=\"x\" hx-swap-oob=\"true\"></div>")),
	)
	rec := httptest.NewRecorder()
	require.NoError(t, cfg.ApplyHeaders(rec))

	assert.Equal(t, "#request-form", rec.Header().Get(htmx.HeaderHXRetarget))
	assert.Equal(t, "outerHTML", rec.Header().Get(htmx.HeaderHXReswap))
	assert.Equal(t, "false", rec.Header().Get(htmx.HeaderHXReplaceURL))
	assert.Contains(t, decodeTrigger(t, rec.Header()), htmx.ToastEvent)
	assert.Len(t, cfg.OOBComponents, 1)

	var nilCfg *htmx.Config
	assert.NoError(t, nilCfg.ApplyHeaders(rec))
}
