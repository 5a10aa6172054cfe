package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/novelpj/novelx/internal/models"
	"github.com/novelpj/novelx/internal/types"
	"gorm.io/gorm"
)

// NovelInput is the studio payload for creating a novel.
type NovelInput struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	CoverURL string   `json:"cover_url"`
	Genres   []string `json:"genres"`
}

// ChapterInput is the studio payload for publishing a chapter. Number and
// price arrive as strings from the form, hence FlexUint64.
type ChapterInput struct {
	NovelID       string           `json:"novel_id"`
	ChapterNumber types.FlexUint64 `json:"chapter_number"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	Price         types.FlexUint64 `json:"price"`
}

// ErrDuplicateChapter signals a publish against an already-taken
// (novel, chapter_number) slot.
var ErrDuplicateChapter = errors.New("chapter number already published for this novel")

// CreateNovel inserts a new novel into the catalog.
func CreateNovel(db *gorm.DB, input NovelInput) (*models.Novel, error) {
	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)
	if title == "" || author == "" {
		return nil, fmt.Errorf("title and author are required")
	}

	novel := models.Novel{
		Title:    title,
		Author:   author,
		CoverURL: strings.TrimSpace(input.CoverURL),
	}

	if len(input.Genres) > 0 {
		genres, err := json.Marshal(input.Genres)
		if err != nil {
			return nil, err
		}
		novel.Genres = genres
	}

	if err := db.Create(&novel).Error; err != nil {
		return nil, err
	}
	return &novel, nil
}

// PublishChapter appends one chapter to a novel. The unique index on
// (novel_id, chapter_number) rejects double publishes.
func PublishChapter(db *gorm.DB, input ChapterInput) (*models.Chapter, error) {
	if input.NovelID == "" || strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("novel_id and title are required")
	}
	if input.ChapterNumber == 0 {
		return nil, fmt.Errorf("chapter_number must be positive")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	var novel models.Novel
	if err := db.Select("id").Where("id = ?", input.NovelID).First(&novel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	chapter := models.Chapter{
		NovelID:       input.NovelID,
		ChapterNumber: input.ChapterNumber.Uint64(),
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Price:         input.Price.Uint64(),
	}

	if err := db.Create(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateChapter
		}
		return nil, err
	}
	return &chapter, nil
}
