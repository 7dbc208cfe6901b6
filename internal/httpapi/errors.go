package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhisek/studyhall/internal/qa"
	"github.com/abhisek/studyhall/internal/store"
)

// errorHandler maps domain errors to status codes. Every failure path
// ends here; nothing is swallowed.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status, message, retryable := classify(err)

	if status >= fiber.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("request_id", requestIDFrom(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err))
	}

	body := fiber.Map{"error": message}
	if retryable {
		body["retryable"] = true
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (status int, message string, retryable bool) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message, false
	}

	var invalid *qa.ErrInvalidInput
	if errors.As(err, &invalid) {
		return fiber.StatusBadRequest, invalid.Error(), false
	}

	var notFound *store.ErrNotFound
	if errors.As(err, &notFound) {
		return fiber.StatusNotFound, notFound.Error(), false
	}

	var unavailable *qa.ErrEngineUnavailable
	if errors.As(err, &unavailable) {
		return fiber.StatusServiceUnavailable, "the answer engine is temporarily unavailable, please try again", true
	}

	var persistence *store.ErrPersistence
	if errors.As(err, &persistence) {
		return fiber.StatusInternalServerError, "failed to record the result", false
	}

	return fiber.StatusInternalServerError, "internal server error", false
}
