package htmx

import (
	"context"
	"io"
	"maps"
	"net/http"
)

// Renderable is satisfied by templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds the htmx response settings for one render.
type Config struct {
	Events        Events
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	ReplaceURL    string
}

// RenderOption configures a render.
type RenderOption func(*Config)

// NewConfig builds a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets the htmx response headers. It must run before
// WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) error {
	if c == nil {
		return nil
	}
	h := w.Header()
	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if c.ReplaceURL != "" {
		h.Set(HeaderHXReplaceURL, c.ReplaceURL)
	}
	return SetTrigger(h, c.Events)
}

// WithOOB renders extra components after the main one. Each must carry an
// id and hx-swap-oob attribute.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets HX-Retarget.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets HX-Reswap.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithReplaceURL sets HX-Replace-Url. Pass "false" to keep the URL.
func WithReplaceURL(url string) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = url
	}
}

// WithTrigger adds client events to HX-Trigger.
func WithTrigger(events Events) RenderOption {
	return func(c *Config) {
		if c.Events == nil {
			c.Events = Events{}
		}
		maps.Copy(c.Events, events)
	}
}

// WithToast adds a toast event.
func WithToast(level, message string) RenderOption {
	return WithTrigger(Events{ToastEvent: Toast{Level: level, Message: message}})
}
