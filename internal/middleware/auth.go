package middleware

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/config"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/types"
	"gorm.io/gorm"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID = "userID"
	LocalEmail  = "userEmail"
)

// AuthUser validates the session cookie and provisions the profile row for a
// first-time identity. Requests without a valid session are rejected.
func AuthUser(cfg *config.Config, ledgerDB *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email, err := sessionIdentity(c, cfg)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
				Type:    "auth.session",
			}
		}

		if _, err := services.EnsureProfile(ledgerDB, userID, email); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusInternalServerError,
				Message: fmt.Sprintf("profile provisioning failed: %v", err),
				Type:    "auth.profile",
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// AuthOptional resolves the session if a cookie is present but never rejects.
// Anonymous requests continue with no user in context; the reader path turns
// that into a RequiresAuth verdict for priced chapters.
func AuthOptional(cfg *config.Config, ledgerDB *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email, err := sessionIdentity(c, cfg)
		if err == nil {
			if _, perr := services.EnsureProfile(ledgerDB, userID, email); perr == nil {
				c.Locals(LocalUserID, userID)
				c.Locals(LocalEmail, email)
			}
		}
		return c.Next()
	}
}

// AuthAdmin validates the session and requires the profile admin flag. This
// is the single capability check in front of the publishing surface.
func AuthAdmin(cfg *config.Config, ledgerDB *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email, err := sessionIdentity(c, cfg)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
				Type:    "auth.session",
			}
		}

		if _, err := services.EnsureProfile(ledgerDB, userID, email); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusInternalServerError,
				Message: fmt.Sprintf("profile provisioning failed: %v", err),
				Type:    "auth.profile",
			}
		}

		admin, err := services.IsAdmin(ledgerDB, userID)
		if err != nil || !admin {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "admin capability required",
				Type:    "auth.admin",
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// sessionIdentity validates the Authorizer session cookie and extracts the
// stable user identifier and email.
func sessionIdentity(c *fiber.Ctx, cfg *config.Config) (string, string, error) {
	session := c.Cookies("cookie_session")
	if session == "" {
		return "", "", fmt.Errorf("authorizer cookie \"cookie_session\" not found")
	}

	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
			return "", "", fmt.Errorf("authorizer unavailable: %w", err)
		}
	}

	data, err := services.ValidateSession(session, []string{"user"})
	if err != nil {
		return "", "", fmt.Errorf("invalid session: %w", err)
	}

	// The user payload is the Authorizer SDK user; round-trip through JSON
	// to pick the id and email fields without binding to the SDK struct.
	raw, err := json.Marshal(data["user"])
	if err != nil {
		return "", "", fmt.Errorf("invalid user data format")
	}
	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		return "", "", fmt.Errorf("user ID not found in session")
	}

	return user.ID, user.Email, nil
}
