package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// OutcomeResponse sends a purchase outcome envelope. Every outcome maps to
// exactly one user-visible state; already_owned reads as success.
func OutcomeResponse(c *fiber.Ctx, outcome string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"outcome":   outcome,
		"ok":        status < 400,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CreatedResponse sends a 201 with the created record
func CreatedResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// OutcomeResponseStruct defines the schema for purchase outcome responses
type OutcomeResponseStruct struct {
	Outcome   string `json:"outcome"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
