package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/utils"
	"gorm.io/gorm"
)

// ReaderHandler serves gated chapter content
type ReaderHandler struct {
	CatalogDB *gorm.DB
	LedgerDB  *gorm.DB
}

// GetChapter handles GET /api/novels/:id/chapters/:number
// @Summary Read a chapter
// @Description Fetch a chapter by novel and sequence number. Content is present only when the access verdict is readable; locked and requires_auth responses carry chapter metadata and the price.
// @Tags Reader
// @Produce json
// @Param id path string true "Novel ID"
// @Param number path int true "Chapter number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /novels/{id}/chapters/{number} [get]
func (h *ReaderHandler) GetChapter(c *fiber.Ctx) error {
	novelID := c.Params("id")
	number, err := strconv.ParseUint(c.Params("number"), 10, 64)
	if err != nil || number == 0 {
		return utils.ErrorResponse(c, "Invalid chapter number", fiber.StatusBadRequest, "reader.validation")
	}

	view, access, err := services.ReadChapter(h.CatalogDB, h.LedgerDB, currentUserID(c), novelID, number)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, fmt.Sprintf("Chapter %d of novel '%s' not found", number, novelID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "reader.get")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access":  access.String(),
		"chapter": view,
	})
}
