package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	resendsdk "github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/mailer"
	"github.com/dmitrymomot/paidform/pkg/mailer/resend"
)

func newTestSender(t *testing.T, handler http.HandlerFunc) *resend.Sender {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := resendsdk.NewClient("re_test")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return resend.New(resend.Config{
		APIKey:      "re_test",
		SenderEmail: "requests@example.com",
		SenderName:  "Requests",
	}, resend.WithClient(client))
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	})

	err := sender.Send(context.Background(), &mailer.Email{
		To:      []string{"ops@example.com"},
		Subject: "New Request Submission",
		HTML:    "<p>hi</p>",
		ReplyTo: "ana@x.com",
		Tags:    mailer.SimpleTags("request"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Requests <requests@example.com>", got["from"])
	assert.Equal(t, "New Request Submission", got["subject"])
	assert.Equal(t, []any{"ops@example.com"}, got["to"])
	assert.Equal(t, []any{map[string]any{"name": "request", "value": "true"}}, got["tags"])
}

func TestSender_Send_APIError(t *testing.T) {
	t.Parallel()

	calls := 0
	sender := newTestSender(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from"}`))
	})

	err := sender.Send(context.Background(), &mailer.Email{
		To:      []string{"ops@example.com"},
		Subject: "s",
		HTML:    "h",
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
