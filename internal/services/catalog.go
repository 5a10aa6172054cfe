package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/novelpj/novelx/internal/models"
	"gorm.io/gorm"
)

// chapterListColumns is every chapter column except content. Listings never
// select content; it only leaves the database on a gated read.
var chapterListColumns = []string{"id", "novel_id", "chapter_number", "title", "price", "created_at"}

// ListNovels returns the catalog, newest first. An optional query narrows the
// list to novels whose title or author contains the query, case-insensitively.
func ListNovels(db *gorm.DB, query string) ([]models.Novel, error) {
	tx := db.Model(&models.Novel{}).Order("created_at DESC")

	if q := strings.TrimSpace(query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}

	var novels []models.Novel
	if err := tx.Find(&novels).Error; err != nil {
		return nil, err
	}
	return novels, nil
}

// GetNovel returns a novel with its chapter listing (no chapter content).
func GetNovel(db *gorm.DB, novelID string) (*models.Novel, error) {
	var novel models.Novel
	err := db.Preload("Chapters", func(tx *gorm.DB) *gorm.DB {
		return tx.Select(chapterListColumns).Order("chapter_number ASC")
	}).Where("id = ?", novelID).First(&novel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &novel, nil
}

// getChapter fetches a chapter, content included, by novel and sequence
// number. Callers must gate content through CheckAccess before serving it.
func getChapter(db *gorm.DB, novelID string, chapterNumber uint64) (*models.Chapter, error) {
	var chapter models.Chapter
	err := db.Where("novel_id = ? AND chapter_number = ?", novelID, chapterNumber).
		First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &chapter, nil
}
