package paidform

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/paidform/pkg/binder"
	"github.com/dmitrymomot/paidform/pkg/htmx"
	"github.com/dmitrymomot/paidform/pkg/validator"
)

// ErrorResponse is the JSON error body of the API.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Code   string            `json:"code,omitempty"`
}

// HandleError is the app's ErrorHandler. Handler errors become an
// *HTTPError and are rendered for the caller: a toast for HTMX requests,
// JSON for the API and plain text otherwise. 5xx causes are logged and
// never sent to the client.
func HandleError(c Context, err error) error {
	httpErr := toHTTPError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed",
			"status", httpErr.Code,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	switch {
	case c.IsHTMX():
		c.SetHeader(htmx.HeaderHXReswap, string(htmx.SwapNone))
		if terr := c.Toast(htmx.LevelError, httpErr.Message); terr != nil {
			return terr
		}
		return c.NoContent(httpErr.Code)
	case wantsJSON(c.Request()):
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:  httpErr.Message,
			Fields: httpErr.Fields,
			Code:   httpErr.ErrorCode,
		})
	default:
		return c.String(httpErr.Code, httpErr.Message)
	}
}

// toHTTPError maps err to the status and public message the client sees.
func toHTTPError(err error) *HTTPError {
	if httpErr := AsHTTPError(err); httpErr != nil {
		return httpErr
	}

	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return ErrUnprocessable("Validation failed", WithFields(ve.Fields()), WithError(err))
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported content type", WithError(err))
	case errors.Is(err, binder.ErrInvalidBody):
		return ErrBadRequest("Invalid request body", WithError(err))
	case errors.Is(err, context.DeadlineExceeded):
		return NewHTTPError(http.StatusGatewayTimeout, "Request timed out", WithError(err))
	default:
		return ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(err))
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// NotFound renders 404 through HandleError.
func NotFound(c Context) error {
	return ErrNotFound("Not found")
}

// MethodNotAllowed renders 405 through HandleError.
func MethodNotAllowed(c Context) error {
	return NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
}
