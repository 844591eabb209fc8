package http

import (
	"errors"
	"net/http"

	"foodjourney/internal/core/domain/services"
	"foodjourney/internal/core/ports"
	"foodjourney/internal/generated/servers"
	"foodjourney/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrInsufficientEntities):
		return http.StatusConflict
	case errors.Is(err, ports.ErrLocationUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// problem writes err as a servers.Error. Unexpected errors are logged and
// answered with a generic message naming the failed action.
func (s *Server) problem(ctx echo.Context, err error, action string) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed", "action", action, "error", err)
		message = "Failed to " + action
	}
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
