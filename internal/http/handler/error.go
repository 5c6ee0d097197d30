package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"cmsapi/internal/http/middleware"
	"cmsapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Status    int                  `json:"status"`
	Error     string               `json:"error"`
	Message   string               `json:"message"`
	Path      string               `json:"path"`
	RequestID string               `json:"requestId"`
	Fields    []service.FieldError `json:"fields,omitempty"`
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - title: short error class, e.g. "Not Found" or "Validation Error"
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).JSON(errorPayload{
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Path(),
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// writeServiceError maps service sentinels to HTTP statuses. Unclassified
// errors become a generic 500 and their cause is only logged.
func writeServiceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
			Status:    fiber.StatusBadRequest,
			Error:     "Validation Error",
			Message:   verr.Error(),
			Path:      c.Path(),
			RequestID: middleware.RequestIDFromCtx(c),
			Fields:    verr.Fields,
		})
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, http.StatusText(http.StatusNotFound), err.Error())
	case errors.Is(err, service.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, http.StatusText(http.StatusConflict), err.Error())
	case errors.Is(err, service.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "Validation Error", err.Error())
	case errors.Is(err, service.ErrInvalidRequest):
		return writeError(c, fiber.StatusBadRequest, http.StatusText(http.StatusBadRequest), err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), err.Error())
	case errors.Is(err, service.ErrFileUpload), errors.Is(err, service.ErrFileDelete):
		log.Error("file operation failed",
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		msg := service.ErrFileUpload.Error()
		if errors.Is(err, service.ErrFileDelete) {
			msg = service.ErrFileDelete.Error()
		}
		return writeError(c, fiber.StatusInternalServerError, "File Operation Error", msg)
	}

	log.Error("unhandled error",
		zap.String("request_id", middleware.RequestIDFromCtx(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, http.StatusText(http.StatusInternalServerError),
		"an unexpected error occurred")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code >= fiber.StatusInternalServerError {
				msg = "an unexpected error occurred"
			}
			return writeError(c, fe.Code, utils.StatusMessage(fe.Code), msg)
		}
		return writeServiceError(c, log, err)
	}
}

// badRequest is returned by handlers for malformed paths, queries and bodies.
func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
