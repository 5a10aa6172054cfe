// data.go
//
// Seed helpers for catalog and ledger fixtures.

package helpers

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/novelpj/novelx/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTestNovel creates a novel and returns its ID
func CreateTestNovel(t *testing.T, db *gorm.DB, title, author string, genres ...string) string {
	t.Helper()
	novel := models.Novel{
		ID:     uuid.New().String(),
		Title:  title,
		Author: author,
	}
	if len(genres) > 0 {
		raw, err := json.Marshal(genres)
		if err != nil {
			t.Fatalf("Failed to marshal genres: %v", err)
		}
		novel.Genres = datatypes.JSON(raw)
	}
	if err := db.Create(&novel).Error; err != nil {
		t.Fatalf("Failed to create novel %s: %v", title, err)
	}
	return novel.ID
}

// CreateTestChapter creates a chapter under a novel and returns its ID
func CreateTestChapter(t *testing.T, db *gorm.DB, novelID string, number uint64, title, content string, price uint64) string {
	t.Helper()
	chapter := models.Chapter{
		ID:            uuid.New().String(),
		NovelID:       novelID,
		ChapterNumber: number,
		Title:         title,
		Content:       content,
		Price:         price,
	}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("Failed to create chapter %d of %s: %v", number, novelID, err)
	}
	return chapter.ID
}

// CreateTestProfile creates a profile with the given coin balance and returns its ID
func CreateTestProfile(t *testing.T, db *gorm.DB, email string, coins uint64) string {
	t.Helper()
	profile := models.Profile{
		ID:    uuid.New().String(),
		Email: email,
		Coins: coins,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile %s: %v", email, err)
	}
	return profile.ID
}

// CreateTestAdmin creates a profile with the admin flag set and returns its ID
func CreateTestAdmin(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	profile := models.Profile{
		ID:      uuid.New().String(),
		Email:   email,
		IsAdmin: true,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create admin profile %s: %v", email, err)
	}
	return profile.ID
}

// CreateTestUnlock grants a chapter to a user directly
func CreateTestUnlock(t *testing.T, db *gorm.DB, userID, chapterID string) {
	t.Helper()
	unlock := models.Unlock{
		UserID:    userID,
		ChapterID: chapterID,
	}
	if err := db.Create(&unlock).Error; err != nil {
		t.Fatalf("Failed to create unlock for %s: %v", userID, err)
	}
}

// ProfileCoins fetches the current coin balance for a profile
func ProfileCoins(t *testing.T, db *gorm.DB, userID string) uint64 {
	t.Helper()
	var profile models.Profile
	if err := db.First(&profile, "id = ?", userID).Error; err != nil {
		t.Fatalf("Failed to load profile %s: %v", userID, err)
	}
	return profile.Coins
}

// UnlockCount returns the number of unlock rows for a (user, chapter) pair
func UnlockCount(t *testing.T, db *gorm.DB, userID, chapterID string) int64 {
	t.Helper()
	var count int64
	err := db.Model(&models.Unlock{}).
		Where("user_id = ? AND chapter_id = ?", userID, chapterID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("Failed to count unlocks: %v", err)
	}
	return count
}
