package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/utils"
	"gorm.io/gorm"
)

// PurchaseHandler handles chapter unlock purchases
type PurchaseHandler struct {
	LedgerDB *gorm.DB
}

// PurchaseChapter handles POST /api/chapters/:id/purchase
// @Summary Purchase a chapter unlock
// @Description Atomically debit the coin balance and record the unlock grant. Idempotent per (user, chapter): repeats return already_owned without a second debit. Safe to retry on failure.
// @Tags Purchase
// @Produce json
// @Param id path string true "Chapter ID"
// @Success 200 {object} utils.OutcomeResponseStruct
// @Failure 402 {object} utils.OutcomeResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.OutcomeResponseStruct
// @Failure 500 {object} utils.OutcomeResponseStruct
// @Security CookieAuth
// @Router /chapters/{id}/purchase [post]
func (h *PurchaseHandler) PurchaseChapter(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == "" {
		return utils.ErrorResponse(c, "authentication required", fiber.StatusForbidden, "purchase.auth")
	}

	outcome, _ := services.PurchaseChapter(h.LedgerDB, userID, c.Params("id"))

	return utils.OutcomeResponse(c, string(outcome), outcomeStatus(outcome))
}
