package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/utils"
	"gorm.io/gorm"
)

// ProfileHandler handles the authenticated profile surface
type ProfileHandler struct {
	LedgerDB *gorm.DB
}

// GetProfile handles GET /api/profile
// @Summary Get the current profile
// @Description Get the authenticated user's profile with coin balance and admin flag
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := services.GetProfile(h.LedgerDB, currentUserID(c))
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "profile.get")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetHistory handles GET /api/profile/history
// @Summary Get recent reading history
// @Description Get the user's last-read markers, most recent first, with novel titles and covers
// @Tags Profile
// @Produce json
// @Param limit query int false "Maximum entries to return (default 10)"
// @Success 200 {array} services.HistoryEntry
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile/history [get]
func (h *ProfileHandler) GetHistory(c *fiber.Ctx) error {
	entries, err := services.RecentReadingHistory(h.LedgerDB, currentUserID(c), c.QueryInt("limit", 10))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "profile.history")
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

// TopUp handles POST /api/profile/topup
// @Summary Top up the coin balance (not implemented)
// @Description Coin acquisition is delegated to an external payment collaborator; this endpoint is a stub.
// @Tags Profile
// @Produce json
// @Failure 501 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile/topup [post]
func (h *ProfileHandler) TopUp(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "Top up is handled by an external payment provider", fiber.StatusNotImplemented, "profile.topup")
}
