package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/config"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/utils"
)

// AuthHandler handles the thin authentication surface in front of the
// Authorizer service. Session issuance and revocation happen on the
// Authorizer side; this surface only triggers the magic-link email and
// reports who the session belongs to.
type AuthHandler struct {
	Cfg *config.Config
}

// Login handles POST /api/auth/login
// @Summary Request a magic sign-in link
// @Description Sends a magic-link email through the Authorizer service. Signing in and account creation are the same flow.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "Email and optional redirect_uri"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email       string `json:"email"`
		RedirectURI string `json:"redirect_uri"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation")
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	if email == "" || !strings.Contains(email, "@") {
		return utils.ErrorResponse(c, "A valid email is required", fiber.StatusBadRequest, "auth.validation")
	}

	if err := services.SendMagicLink(h.Cfg, email, body.RedirectURI); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadGateway, "auth.magicLink")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":      true,
		"message": "Magic link sent. Check your email.",
	})
}

// Session handles GET /api/auth/session
// @Summary Check the current session
// @Description Reports whether the request carries a valid session and for whom.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"authenticated": false})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"user_id":       userID,
		"email":         currentEmail(c),
	})
}
