package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/parcelease/admin-dashboard/internal/api/handler"
	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps not-found domain errors to 404 and a concurrent idempotent payment to 409.
//   - Renders the endpoint's generic message for any other failure and logs the cause.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound, "Ticket not found"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, "Payment not found"
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, domain.ErrPaymentInProgress):
		return http.StatusConflict, "Payment already in progress"
	}

	msg := "internal server error"
	var fe *handler.FailureError
	if errors.As(err, &fe) {
		msg = fe.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")

	return http.StatusInternalServerError, msg
}
