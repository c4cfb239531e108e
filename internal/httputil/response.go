// Package httputil holds the request parsing and error response helpers shared by
// the resource handlers.
package httputil

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type errorClass struct {
	status int
	code   string
	// message replaces err.Error() when set.
	message string
}

var errorClasses = map[error]errorClass{
	apperrors.ErrNotFound:     {status: http.StatusNotFound, code: "not_found", message: "The requested resource was not found"},
	apperrors.ErrConflict:     {status: http.StatusConflict, code: "conflict"},
	apperrors.ErrInvalidInput: {status: http.StatusUnprocessableEntity, code: "invalid_input"},
	apperrors.ErrUnauthorized: {status: http.StatusUnauthorized, code: "unauthorized", message: "Authentication is required"},
	apperrors.ErrForbidden: {
		status:  http.StatusForbidden,
		code:    "forbidden",
		message: "You don't have permission to access this resource",
	},
}

var internalErrorClass = errorClass{
	status:  http.StatusInternalServerError,
	code:    "internal_error",
	message: "An internal error occurred",
}

// HandleErrorGin writes the response for an error returned by a use case. Errors that
// wrap none of the domain sentinels become a 500 whose body hides the cause.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	class, ok := errorClasses[apperrors.Kind(err)]
	if !ok {
		class = internalErrorClass
	}

	message := class.message
	if message == "" {
		message = err.Error()
	}

	if logger != nil {
		level := slog.LevelWarn
		if class.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		ctx := context.Background()
		if c.Request != nil {
			ctx = c.Request.Context()
		}
		logger.Log(ctx, level, "request failed",
			slog.Int("status_code", class.status),
			slog.String("error_code", class.code),
			slog.Any("error", err),
		)
	}

	c.JSON(class.status, ErrorResponse{Error: class.code, Message: message})
}

// HandleBadRequestGin answers 400 for malformed JSON bodies and path or query parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin answers 422 for request bodies that fail validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Message: err.Error()})
}
