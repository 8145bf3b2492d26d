package paypal

import (
	"net/http"

	"github.com/google/uuid"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	requestID  func() string
}

// WithHTTPClient sets the base HTTP client used for token and API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithRequestIDFunc sets the generator for PayPal-Request-Id headers.
func WithRequestIDFunc(fn func() string) Option {
	return func(o *options) {
		o.requestID = fn
	}
}

func defaultOptions() options {
	return options{requestID: uuid.NewString}
}
