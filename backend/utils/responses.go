package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the error envelope used by every endpoint:
// a human-readable msg plus an optional diagnostic detail string.
type ErrorResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

func Fail(c *fiber.Ctx, status int, msg string, detail ...string) error {
	resp := ErrorResponse{Msg: msg}
	if len(detail) > 0 {
		resp.Error = detail[0]
	}
	return c.Status(status).JSON(resp)
}

// BadRequest sends a 400 response for validation errors
func BadRequest(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusBadRequest, msg)
}

// Unauthorized sends a 401 response
func Unauthorized(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusUnauthorized, msg)
}

// NotFound sends a 404 response
func NotFound(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusNotFound, msg)
}

// ServerError sends a 500 response with the diagnostic detail attached
func ServerError(c *fiber.Ctx, msg string, err error) error {
	if err != nil {
		return Fail(c, fiber.StatusInternalServerError, msg, err.Error())
	}
	return Fail(c, fiber.StatusInternalServerError, msg)
}

// ServiceUnavailable sends a 503 response for database-unavailable paths
func ServiceUnavailable(c *fiber.Ctx, msg string, detail string) error {
	return Fail(c, fiber.StatusServiceUnavailable, msg, detail)
}
