package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/utils"
	"gorm.io/gorm"
)

// CatalogHandler handles public novel browsing routes
type CatalogHandler struct {
	DB *gorm.DB
}

// ListNovels handles GET /api/novels
// @Summary List novels
// @Description List the catalog, newest first, optionally filtered by a case-insensitive substring over title and author
// @Tags Catalog
// @Produce json
// @Param q query string false "Substring to match against title or author"
// @Success 200 {array} models.Novel
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /novels [get]
func (h *CatalogHandler) ListNovels(c *fiber.Ctx) error {
	novels, err := services.ListNovels(h.DB, c.Query("q", ""))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "catalog.list")
	}

	return c.Status(fiber.StatusOK).JSON(novels)
}

// GetNovel handles GET /api/novels/:id
// @Summary Get a novel
// @Description Get a novel with its chapter listing; chapter content is never included here
// @Tags Catalog
// @Produce json
// @Param id path string true "Novel ID"
// @Success 200 {object} models.Novel
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /novels/{id} [get]
func (h *CatalogHandler) GetNovel(c *fiber.Ctx) error {
	id := c.Params("id")

	novel, err := services.GetNovel(h.DB, id)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, fmt.Sprintf("Novel '%s' not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "catalog.get")
	}

	return c.Status(fiber.StatusOK).JSON(novel)
}
