package handlers

import (
	"context"
	"errors"

	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

// sendError maps a domain error onto a status and the error envelope.
func sendError(c *fiber.Ctx, log logger.Logger, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"
	body := fiber.Map{}

	var upstreamErr *types.UpstreamProtocolError
	switch {
	case errors.Is(err, types.ErrNotFound):
		status = fiber.StatusNotFound
		message = notFoundMessage(err)
	case errors.Is(err, types.ErrValidation):
		status = fiber.StatusBadRequest
		message = validationMessage(err)
	case errors.As(err, &upstreamErr):
		status = upstreamErr.HTTPStatus()
		message = "Upstream request failed"
		if upstreamErr.Status != 0 {
			body["upstreamStatus"] = upstreamErr.Status
		}
	case errors.Is(err, context.DeadlineExceeded):
		status = fiber.StatusGatewayTimeout
		message = "Upstream request timed out"
	}

	if status >= fiber.StatusInternalServerError {
		log.Er("request failed", err, "status", status, "path", c.Path())
	} else {
		log.Debug("request rejected", "status", status, "error", err.Error())
	}

	body["message"] = message
	body["status"] = status
	return c.Status(status).JSON(fiber.Map{"error": body})
}

func notFoundMessage(err error) string {
	var notFound *types.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}
	return "Not found"
}

func validationMessage(err error) string {
	var validation *types.ValidationError
	if errors.As(err, &validation) {
		return validation.Error()
	}
	return "Invalid request"
}

// sendList wraps items under key. When emptyMessage is set an empty result is
// reported as a message instead of an empty collection.
func sendList[T any](c *fiber.Ctx, key string, items []T, emptyMessage string) error {
	if len(items) == 0 && emptyMessage != "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": emptyMessage})
	}
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{key: items})
}
