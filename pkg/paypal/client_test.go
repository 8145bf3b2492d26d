package paypal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/paypal"
)

type fakePayPal struct {
	tokenCalls   atomic.Int32
	captureCalls atomic.Int32
	captureCode  int
	captureBody  string
	lastCreate   paypal.CreateOrderRequest
	lastReqID    string
	lastPrefer   string
	mu           sync.Mutex
}

func (f *fakePayPal) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("POST /v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		f.mu.Lock()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastCreate))
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"CREATED"}`))
	})
	mux.HandleFunc("POST /v2/checkout/orders/{id}/capture", func(w http.ResponseWriter, r *http.Request) {
		f.captureCalls.Add(1)
		f.mu.Lock()
		f.lastReqID = r.Header.Get("PayPal-Request-Id")
		f.lastPrefer = r.Header.Get("Prefer")
		f.mu.Unlock()
		assert.Equal(t, "ORDER-1", r.PathValue("id"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.captureCode)
		_, _ = w.Write([]byte(f.captureBody))
	})
	mux.HandleFunc("GET /v2/checkout/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `","status":"APPROVED","purchase_units":[{"custom_id":"sess-1","amount":{"currency_code":"USD","value":"10.00"}}]}`))
	})
	return mux
}

func newTestClient(t *testing.T, f *fakePayPal) *paypal.Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	c, err := paypal.New(paypal.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      srv.URL,
	}, paypal.WithHTTPClient(srv.Client()), paypal.WithRequestIDFunc(func() string { return "req-1" }))
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := paypal.New(paypal.Config{ClientSecret: "s"})
	require.ErrorIs(t, err, paypal.ErrMissingClientID)

	_, err = paypal.New(paypal.Config{ClientID: "id"})
	require.ErrorIs(t, err, paypal.ErrMissingClientSecret)

	c, err := paypal.New(paypal.Config{ClientID: "id", ClientSecret: "s"})
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestClient_CreateOrder(t *testing.T) {
	t.Parallel()

	f := &fakePayPal{}
	c := newTestClient(t, f)

	order, err := c.CreateOrder(context.Background(), paypal.Amount{CurrencyCode: "USD", Value: "10.00"}, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.ID)
	assert.Equal(t, paypal.StatusCreated, order.Status)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, paypal.IntentCapture, f.lastCreate.Intent)
	require.Len(t, f.lastCreate.PurchaseUnits, 1)
	assert.Equal(t, "USD", f.lastCreate.PurchaseUnits[0].Amount.CurrencyCode)
	assert.Equal(t, "10.00", f.lastCreate.PurchaseUnits[0].Amount.Value)
	assert.Equal(t, "sess-1", f.lastCreate.PurchaseUnits[0].CustomID)
}

func TestClient_CaptureOrder(t *testing.T) {
	t.Parallel()

	t.Run("completed", func(t *testing.T) {
		t.Parallel()
		f := &fakePayPal{
			captureCode: http.StatusCreated,
			captureBody: `{"id":"ORDER-1","status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"id":"CAP-1","status":"COMPLETED","custom_id":"sess-1","amount":{"currency_code":"USD","value":"10.00"}}]}}]}`,
		}
		c := newTestClient(t, f)

		order, err := c.CaptureOrder(context.Background(), "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, paypal.StatusCompleted, order.Status)
		assert.Equal(t, "CAP-1", order.CaptureID())
		assert.Equal(t, "sess-1", order.CustomID())
		captured, ok := order.CapturedAmount()
		require.True(t, ok)
		assert.True(t, captured.Equal(paypal.Amount{CurrencyCode: "USD", Value: "10"}))
		f.mu.Lock()
		assert.Equal(t, "req-1", f.lastReqID)
		assert.Equal(t, "return=representation", f.lastPrefer)
		f.mu.Unlock()
	})

	t.Run("token is reused", func(t *testing.T) {
		t.Parallel()
		f := &fakePayPal{captureCode: http.StatusCreated, captureBody: `{"id":"ORDER-1","status":"COMPLETED"}`}
		c := newTestClient(t, f)

		_, err := c.CreateOrder(context.Background(), paypal.Amount{CurrencyCode: "USD", Value: "10.00"}, "sess-1")
		require.NoError(t, err)
		_, err = c.CaptureOrder(context.Background(), "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, int32(1), f.tokenCalls.Load())
	})

	t.Run("declined", func(t *testing.T) {
		t.Parallel()
		f := &fakePayPal{
			captureCode: http.StatusUnprocessableEntity,
			captureBody: `{"name":"UNPROCESSABLE_ENTITY","debug_id":"dbg","details":[{"issue":"INSTRUMENT_DECLINED"}]}`,
		}
		c := newTestClient(t, f)

		_, err := c.CaptureOrder(context.Background(), "ORDER-1")
		require.ErrorIs(t, err, paypal.ErrRequestFailed)

		var apiErr *paypal.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "INSTRUMENT_DECLINED", apiErr.Issue())
		assert.Equal(t, int32(1), f.captureCalls.Load())
	})

	t.Run("pending", func(t *testing.T) {
		t.Parallel()
		f := &fakePayPal{captureCode: http.StatusCreated, captureBody: `{"id":"ORDER-1","status":"PENDING"}`}
		c := newTestClient(t, f)

		order, err := c.CaptureOrder(context.Background(), "ORDER-1")
		require.ErrorIs(t, err, paypal.ErrNotCompleted)
		require.NotNil(t, order)
		assert.Equal(t, "PENDING", order.Status)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		f := &fakePayPal{captureCode: http.StatusCreated, captureBody: `{"id":`}
		c := newTestClient(t, f)

		_, err := c.CaptureOrder(context.Background(), "ORDER-1")
		require.ErrorIs(t, err, paypal.ErrDecodeFailed)
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, &fakePayPal{})
		_, err := c.CaptureOrder(context.Background(), "")
		require.ErrorIs(t, err, paypal.ErrMissingOrderID)
	})
}

func TestClient_GetOrder(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, &fakePayPal{})
	order, err := c.GetOrder(context.Background(), "ORDER-9")
	require.NoError(t, err)
	assert.Equal(t, "ORDER-9", order.ID)
	assert.Equal(t, paypal.StatusApproved, order.Status)
	assert.Equal(t, "sess-1", order.CustomID())
	amount, ok := order.UnitAmount()
	require.True(t, ok)
	assert.Equal(t, paypal.Amount{CurrencyCode: "USD", Value: "10.00"}, amount)

	_, err = c.GetOrder(context.Background(), "")
	require.ErrorIs(t, err, paypal.ErrMissingOrderID)
}

func TestAmount_Equal(t *testing.T) {
	t.Parallel()

	price := paypal.Amount{CurrencyCode: "USD", Value: "10.00"}
	assert.True(t, price.Equal(paypal.Amount{CurrencyCode: "usd", Value: "10"}))
	assert.False(t, price.Equal(paypal.Amount{CurrencyCode: "USD", Value: "0.01"}))
	assert.False(t, price.Equal(paypal.Amount{CurrencyCode: "EUR", Value: "10.00"}))
	assert.False(t, price.Equal(paypal.Amount{CurrencyCode: "USD", Value: "ten"}))
	assert.False(t, price.Equal(paypal.Amount{}))
}

func TestClient_TokenFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := paypal.New(paypal.Config{ClientID: "id", ClientSecret: "bad", BaseURL: srv.URL}, paypal.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = c.CreateOrder(context.Background(), paypal.Amount{CurrencyCode: "USD", Value: "10.00"}, "sess-1")
	require.ErrorIs(t, err, paypal.ErrFetchFailed)
}
