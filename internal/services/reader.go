// reader.go
//
// The gated content read path. Content is redacted here, in the service,
// before any bytes reach a handler: a locked chapter leaves this function
// with an empty Content field no matter what the caller renders.

package services

import (
	"log"
	"time"

	"github.com/novelpj/novelx/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChapterView is the reader payload for one chapter. Content is present only
// when the access verdict was Readable.
type ChapterView struct {
	ID            string `json:"id"`
	NovelID       string `json:"novel_id"`
	NovelTitle    string `json:"novel_title"`
	ChapterNumber uint64 `json:"chapter_number"`
	Title         string `json:"title"`
	Price         uint64 `json:"price"`
	Content       string `json:"content,omitempty"`
}

// ReadChapter fetches a chapter by novel and sequence number, decides access
// for userID (empty = anonymous) and redacts content unless the verdict is
// Readable. On a readable fetch by an authenticated user the last-read marker
// is upserted on the ledger pool; a failed marker write never blocks the read.
func ReadChapter(catalogDB, ledgerDB *gorm.DB, userID, novelID string, chapterNumber uint64) (*ChapterView, Access, error) {
	chapter, err := getChapter(catalogDB, novelID, chapterNumber)
	if err != nil {
		return nil, AccessLocked, err
	}

	var novel models.Novel
	if err := catalogDB.Select("id", "title").Where("id = ?", chapter.NovelID).First(&novel).Error; err != nil {
		return nil, AccessLocked, err
	}

	access := CheckAccess(ledgerDB, userID, chapter)

	view := &ChapterView{
		ID:            chapter.ID,
		NovelID:       chapter.NovelID,
		NovelTitle:    novel.Title,
		ChapterNumber: chapter.ChapterNumber,
		Title:         chapter.Title,
		Price:         chapter.Price,
	}

	if access == AccessReadable {
		view.Content = chapter.Content

		if userID != "" {
			if err := touchReadingHistory(ledgerDB, userID, chapter.NovelID, chapter.ChapterNumber); err != nil {
				log.Printf("ReadChapter: history upsert failed for user=%s novel=%s: %v", userID, chapter.NovelID, err)
			}
		}
	}

	return view, access, nil
}

// touchReadingHistory upserts the one last-read row per (user, novel).
func touchReadingHistory(db *gorm.DB, userID, novelID string, chapterNumber uint64) error {
	entry := models.ReadingHistory{
		UserID:        userID,
		NovelID:       novelID,
		ChapterNumber: chapterNumber,
		UpdatedAt:     time.Now().UTC(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "novel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"chapter_number", "updated_at"}),
	}).Create(&entry).Error
}

// HistoryEntry is one last-read marker joined with the novel title and
// cover for the "jump back in" shelf.
type HistoryEntry struct {
	NovelID       string    `json:"novel_id"`
	NovelTitle    string    `json:"novel_title"`
	CoverURL      string    `json:"cover_url"`
	ChapterNumber uint64    `json:"chapter_number"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RecentReadingHistory lists up to limit history entries for userID, most
// recent first. One query; the ledger account holds SELECT on novels, so
// the join runs on the ledger pool.
func RecentReadingHistory(db *gorm.DB, userID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	entries := make([]HistoryEntry, 0, limit)
	err := db.Model(&models.ReadingHistory{}).
		Select("reading_history.novel_id, reading_history.chapter_number, reading_history.updated_at, novels.title AS novel_title, novels.cover_url").
		Joins("JOIN novels ON novels.id = reading_history.novel_id").
		Where("reading_history.user_id = ?", userID).
		Order("reading_history.updated_at DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
