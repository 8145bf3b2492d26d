// Package paypal is a minimal client for the PayPal Orders v2 REST API:
// create an order, look it up, and capture it after buyer approval.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	tokenPath  = "/v1/oauth2/token"
	ordersPath = "/v2/checkout/orders"
)

// Client talks to the Orders API with an OAuth2 client-credentials token.
// Tokens are cached and refreshed by the underlying token source.
type Client struct {
	http      *http.Client
	baseURL   string
	requestID func() string
}

// New creates a Client. Returns an error if ClientID or ClientSecret is empty.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	base := strings.TrimRight(cfg.baseURL(), "/")
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     base + tokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	ctx := context.Background()
	if o.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	}

	return &Client{
		http:      oauth2.NewClient(ctx, cc.TokenSource(ctx)),
		baseURL:   base,
		requestID: o.requestID,
	}, nil
}

// CreateOrder creates an order with intent CAPTURE for a single amount.
// customID is echoed back by PayPal on the order and its captures.
func (c *Client) CreateOrder(ctx context.Context, amount Amount, customID string) (*Order, error) {
	body := CreateOrderRequest{
		Intent:        IntentCapture,
		PurchaseUnits: []PurchaseUnit{{Amount: &amount, CustomID: customID}},
	}
	var order Order
	if err := c.do(ctx, http.MethodPost, ordersPath, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CaptureOrder captures an approved order. A response whose status is not
// COMPLETED is returned together with ErrNotCompleted.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	var order Order
	path := ordersPath + "/" + url.PathEscape(orderID) + "/capture"
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, &order); err != nil {
		return nil, err
	}
	if order.Status != StatusCompleted {
		return &order, fmt.Errorf("%w: status=%s", ErrNotCompleted, order.Status)
	}
	return &order, nil
}

// GetOrder fetches an order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	var order Order
	if err := c.do(ctx, http.MethodGet, ordersPath+"/"+url.PathEscape(orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("paypal: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("PayPal-Request-Id", c.requestID())
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(apiErr)
		return errors.Join(ErrRequestFailed, apiErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecodeFailed, err)
	}
	return nil
}
