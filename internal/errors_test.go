package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		err := internal.NewHTTPError(http.StatusNotFound, "not found")
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusBadRequest, "bad request")
		err := fmt.Errorf("handler failed: %w", httpErr)
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("double-wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusConflict, "conflict")
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", httpErr))
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("something went wrong")
		require.False(t, internal.IsHTTPError(err))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(nil))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusNotFound, "not found")
		got := internal.AsHTTPError(httpErr)
		require.NotNil(t, got)
		require.Equal(t, http.StatusNotFound, got.Code)
		require.Equal(t, "not found", got.Message)
	})

	t.Run("wrapped HTTPError preserves fields", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.ErrUnprocessable("Validation failed",
			internal.WithErrorCode("validation_failed"),
			internal.WithFields(map[string]string{"email": "Invalid email address"}),
		)
		err := fmt.Errorf("handler: %w", httpErr)

		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusUnprocessableEntity, got.Code)
		require.Equal(t, "Validation failed", got.Message)
		require.Equal(t, "validation_failed", got.ErrorCode)
		require.Equal(t, "Invalid email address", got.Fields["email"])
	})

	t.Run("unrelated error returns nil", func(t *testing.T) {
		t.Parallel()
		err := errors.New("plain error")
		require.Nil(t, internal.AsHTTPError(err))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestHTTPError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("mailer: failed to send email")
	err := internal.ErrInternal("Failed to send email", internal.WithError(cause))

	require.ErrorIs(t, err, cause)
	require.Equal(t, "Failed to send email", err.Error())
	require.Equal(t, "Internal Server Error", err.StatusText())
}

func TestHTTPError_Constructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *internal.HTTPError
		code int
	}{
		{internal.ErrBadRequest("x"), http.StatusBadRequest},
		{internal.ErrPaymentRequired("x"), http.StatusPaymentRequired},
		{internal.ErrNotFound("x"), http.StatusNotFound},
		{internal.ErrUnsupportedMediaType("x"), http.StatusUnsupportedMediaType},
		{internal.ErrUnprocessable("x"), http.StatusUnprocessableEntity},
		{internal.ErrInternal("x"), http.StatusInternalServerError},
		{internal.ErrBadGateway("x"), http.StatusBadGateway},
		{internal.ErrServiceUnavailable("x"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		require.Equal(t, tt.code, tt.err.StatusCode())
	}
}
