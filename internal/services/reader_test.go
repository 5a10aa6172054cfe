package services

import (
	"testing"

	"github.com/novelpj/novelx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReadChapterFreeAnonymous(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	seedChapter(t, db, novel.ID, 1, 0)

	view, access, err := ReadChapter(db, db, "", novel.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, AccessReadable, access)
	assert.Equal(t, "The rain had not stopped for three days.", view.Content)
	assert.Equal(t, "Night Ferry", view.NovelTitle)
}

func TestReadChapterPaidAnonymousIsRedacted(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	seedChapter(t, db, novel.ID, 2, 25)

	view, access, err := ReadChapter(db, db, "", novel.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, AccessRequiresAuth, access)

	// Metadata is served, content is not.
	assert.Empty(t, view.Content)
	assert.Equal(t, uint64(25), view.Price)
	assert.Equal(t, uint64(2), view.ChapterNumber)
}

func TestReadChapterLockedWithoutGrant(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	seedChapter(t, db, novel.ID, 2, 25)
	reader := seedProfile(t, db, 0)

	view, access, err := ReadChapter(db, db, reader.ID, novel.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, access)
	assert.Empty(t, view.Content)
}

func TestReadChapterWithGrant(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	chapter := seedChapter(t, db, novel.ID, 2, 25)
	reader := seedProfile(t, db, 0)
	require.NoError(t, db.Create(&models.Unlock{UserID: reader.ID, ChapterID: chapter.ID}).Error)

	view, access, err := ReadChapter(db, db, reader.ID, novel.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, AccessReadable, access)
	assert.NotEmpty(t, view.Content)
}

func TestReadChapterNotFound(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")

	_, _, err := ReadChapter(db, db, "", novel.ID, 404)
	assert.EqualError(t, err, "not found")
}

func TestReadChapterTouchesHistory(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	seedChapter(t, db, novel.ID, 1, 0)
	seedChapter(t, db, novel.ID, 2, 0)
	reader := seedProfile(t, db, 0)

	_, _, err := ReadChapter(db, db, reader.ID, novel.ID, 1)
	require.NoError(t, err)
	_, _, err = ReadChapter(db, db, reader.ID, novel.ID, 2)
	require.NoError(t, err)

	// One row per (user, novel), holding the latest chapter read.
	var rows []models.ReadingHistory
	require.NoError(t, db.Where("user_id = ?", reader.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(2), rows[0].ChapterNumber)
}

func TestReadChapterAnonymousLeavesNoHistory(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	seedChapter(t, db, novel.ID, 1, 0)

	_, _, err := ReadChapter(db, db, "", novel.ID, 1)
	require.NoError(t, err)

	var count int64
	db.Model(&models.ReadingHistory{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReadChapterLockedLeavesNoHistory(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	seedChapter(t, db, novel.ID, 2, 25)
	reader := seedProfile(t, db, 0)

	_, _, err := ReadChapter(db, db, reader.ID, novel.ID, 2)
	require.NoError(t, err)

	var count int64
	db.Model(&models.ReadingHistory{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecentReadingHistoryJoinsNovel(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "Night Ferry", "M. Osei")
	require.NoError(t, db.Model(novel).Update("cover_url", "https://cdn.example.com/night-ferry.jpg").Error)
	seedChapter(t, db, novel.ID, 1, 0)
	reader := seedProfile(t, db, 0)

	_, _, err := ReadChapter(db, db, reader.ID, novel.ID, 1)
	require.NoError(t, err)

	entries, err := RecentReadingHistory(db, reader.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, novel.ID, entries[0].NovelID)
	assert.Equal(t, "Night Ferry", entries[0].NovelTitle)
	assert.Equal(t, "https://cdn.example.com/night-ferry.jpg", entries[0].CoverURL)
	assert.Equal(t, uint64(1), entries[0].ChapterNumber)
}

func TestRecentReadingHistoryOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	first := seedNovel(t, db, "Night Ferry", "M. Osei")
	second := seedNovel(t, db, "Glass Harbor", "M. Osei")
	seedChapter(t, db, first.ID, 1, 0)
	seedChapter(t, db, second.ID, 1, 0)
	reader := seedProfile(t, db, 0)

	_, _, err := ReadChapter(db, db, reader.ID, first.ID, 1)
	require.NoError(t, err)
	_, _, err = ReadChapter(db, db, reader.ID, second.ID, 1)
	require.NoError(t, err)

	// Force distinct timestamps so the ordering is deterministic.
	require.NoError(t, db.Model(&models.ReadingHistory{}).
		Where("user_id = ? AND novel_id = ?", reader.ID, second.ID).
		Update("updated_at", gorm.Expr("datetime('now', '+1 hour')")).Error)

	entries, err := RecentReadingHistory(db, reader.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Glass Harbor", entries[0].NovelTitle)
	assert.Equal(t, "Night Ferry", entries[1].NovelTitle)

	entries, err = RecentReadingHistory(db, reader.ID, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].NovelID)
}
