package paidform

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/dmitrymomot/paidform/internal"
	"github.com/dmitrymomot/paidform/pkg/cookie"
	"github.com/dmitrymomot/paidform/pkg/health"
	"github.com/dmitrymomot/paidform/pkg/logger"
)

// Type aliases - public API
type (
	// App owns the router, middleware and server lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	Option       = internal.Option
	RunOption    = internal.RunOption
	HealthOption = internal.HealthOption
	CookieOption = cookie.Option

	// Component is satisfied by templ.Component.
	Component = internal.Component

	// ValidationErrors is a collection of validation errors.
	ValidationErrors = internal.ValidationErrors

	// ContextExtractor pulls a log attribute from a request context.
	ContextExtractor = logger.ContextExtractor

	ResponseWriter = internal.ResponseWriter

	HTTPError       = internal.HTTPError
	HTTPErrorOption = internal.HTTPErrorOption

	Extractor       = internal.Extractor
	ExtractorSource = internal.ExtractorSource
)

// New creates an application. The App is immutable after creation.
//
//	app := paidform.New(
//	    paidform.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    paidform.WithHandlers(handlers.NewPage(gate, cfg), handlers.NewPayment(gate, cfg)),
//	    paidform.WithErrorHandler(paidform.HandleError),
//	)
//
//	err := app.Run(":8080", paidform.ShutdownHook(redis.Shutdown(client)))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware, applied in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles serves subDir of fsys under pattern without directory listings.
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables /health/live and /health/ready.
//
//	paidform.WithHealthChecks(
//	    paidform.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger sets the app logger and tags every entry with component.
func WithLogger(l *slog.Logger, component string) Option {
	return internal.WithLogger(l, component)
}

// WithCookieOptions configures the cookie manager used by Context.
func WithCookieOptions(opts ...CookieOption) Option {
	return internal.WithCookieOptions(opts...)
}

// Health options

func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Logger overrides the logger used for server lifecycle messages.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds graceful shutdown, hooks included.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers cleanup run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context; cancelling it stops the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Helpers

// ContextValue returns the value stored under key as T, or T's zero value.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

func FromCookieSigned(name string) ExtractorSource {
	return internal.FromCookieSigned(name)
}

func FromContext(key any) ExtractorSource {
	return internal.FromContext(key)
}

// Validated drops values rejected by valid.
func Validated(src ExtractorSource, valid func(string) bool) ExtractorSource {
	return internal.Validated(src, valid)
}

// HTTP errors

var (
	NewHTTPError       = internal.NewHTTPError
	WithErrorCode      = internal.WithErrorCode
	WithRequestID      = internal.WithRequestID
	WithError          = internal.WithError
	WithFields         = internal.WithFields
	AsHTTPError        = internal.AsHTTPError
	IsHTTPError        = internal.IsHTTPError
	ErrBadRequest      = internal.ErrBadRequest
	ErrPaymentRequired = internal.ErrPaymentRequired
	ErrNotFound        = internal.ErrNotFound
	ErrConflict        = internal.ErrConflict
	ErrUnprocessable   = internal.ErrUnprocessable
	ErrInternal        = internal.ErrInternal
	ErrBadGateway      = internal.ErrBadGateway
)

// Cookie errors

var (
	ErrCookieNotFound = cookie.ErrNotFound
	ErrCookieNoSecret = cookie.ErrNoSecret
	ErrCookieBadSig   = cookie.ErrBadSig
)
