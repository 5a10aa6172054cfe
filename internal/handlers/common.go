package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/middleware"
	"github.com/novelpj/novelx/internal/services"
)

// currentUserID returns the authenticated user ID from context, or "" for an
// anonymous request. The auth middleware is the only writer of this value.
func currentUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(middleware.LocalUserID).(string); ok {
		return v
	}
	return ""
}

// currentEmail returns the authenticated email from context, or "".
func currentEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(middleware.LocalEmail).(string); ok {
		return v
	}
	return ""
}

// outcomeStatus maps a purchase outcome onto its HTTP status. already_owned
// is success-equivalent; the grant exists either way.
func outcomeStatus(outcome services.Outcome) int {
	switch outcome {
	case services.OutcomeSuccess, services.OutcomeAlreadyOwned:
		return fiber.StatusOK
	case services.OutcomeInsufficientFunds:
		return fiber.StatusPaymentRequired
	case services.OutcomeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
