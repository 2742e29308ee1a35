package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response shape for every public operation.
// Failures carry a message and no data; successes carry the payload.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message *string     `json:"message"`
}

// Success writes a success envelope with the given payload.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: &message})
}

// ErrorHandler converts any error escaping a handler into a failure
// envelope so no fault reaches the caller as a raw response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	return Fail(c, status, message)
}
