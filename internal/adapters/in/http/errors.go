package http

import (
	"errors"
	"net/http"

	"stockyard/internal/core/application/usecases/commands"
	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps application errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, flow.ErrGuardViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrTransitionInProgress):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// errorHandler renders echo errors, such as failed validation or unknown
// routes, in the same shape as application errors.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		_ = ctx.JSON(httpErr.Code, Error{Code: httpErr.Code, Message: message})
		return
	}

	_ = writeError(ctx, err)
}
