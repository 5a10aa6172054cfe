package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/novelpj/novelx/internal/models"
	"github.com/novelpj/novelx/internal/services"
	"github.com/novelpj/novelx/internal/types"
	"github.com/novelpj/novelx/internal/utils"
	"gorm.io/gorm"
)

// StudioHandler handles the admin-only publishing surface. The admin
// capability is enforced by the AuthAdmin middleware in front of these
// routes, not re-checked per handler.
type StudioHandler struct {
	DB *gorm.DB
}

// CreateNovel handles POST /api/studio/novels
// @Summary Create a novel
// @Description Create a new novel in the catalog
// @Tags Studio
// @Accept json
// @Produce json
// @Param body body services.NovelInput true "Novel to create"
// @Success 201 {object} models.Novel
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /studio/novels [post]
func (h *StudioHandler) CreateNovel(c *fiber.Ctx) error {
	var input services.NovelInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "studio.validation")
	}

	novel, err := services.CreateNovel(h.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "studio.createNovel")
	}

	return utils.CreatedResponse(c, novel)
}

// PublishChapters handles POST /api/studio/chapters
// @Summary Publish chapters
// @Description Publish one chapter or a batch; the body may be a single object or an array. chapter_number and price accept numbers or strings.
// @Tags Studio
// @Accept json
// @Produce json
// @Param body body services.ChapterInput true "Chapter(s) to publish"
// @Success 201 {array} models.Chapter
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /studio/chapters [post]
func (h *StudioHandler) PublishChapters(c *fiber.Ctx) error {
	var body types.FlexList[services.ChapterInput]
	if err := body.UnmarshalJSON(c.Body()); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "studio.validation")
	}
	if len(body) == 0 {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "studio.validation")
	}

	published := make([]models.Chapter, 0, len(body))
	for _, input := range body.Slice() {
		chapter, err := services.PublishChapter(h.DB, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateChapter):
				return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, "studio.duplicateChapter")
			case err.Error() == "not found":
				return utils.NotFoundResponse(c, "Novel not found")
			default:
				return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "studio.publish")
			}
		}
		published = append(published, *chapter)
	}

	return utils.CreatedResponse(c, published)
}
