package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/novelpj/novelx/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with all models migrated.
// TranslateError is on, as in production, so duplicate-key violations surface
// as gorm.ErrDuplicatedKey regardless of driver.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Novel{},
		&models.Chapter{},
		&models.Profile{},
		&models.Unlock{},
		&models.ReadingHistory{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func seedNovel(t *testing.T, db *gorm.DB, title, author string) *models.Novel {
	t.Helper()
	novel := models.Novel{Title: title, Author: author}
	if err := db.Create(&novel).Error; err != nil {
		t.Fatalf("Failed to seed novel: %v", err)
	}
	return &novel
}

func seedChapter(t *testing.T, db *gorm.DB, novelID string, number uint64, price uint64) *models.Chapter {
	t.Helper()
	chapter := models.Chapter{
		NovelID:       novelID,
		ChapterNumber: number,
		Title:         "Chapter",
		Content:       "The rain had not stopped for three days.",
		Price:         price,
	}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("Failed to seed chapter: %v", err)
	}
	return &chapter
}

func seedProfile(t *testing.T, db *gorm.DB, coins uint64) *models.Profile {
	t.Helper()
	profile := models.Profile{
		ID:    uuid.New().String(),
		Email: uuid.New().String() + "@example.com",
		Coins: coins,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
	return &profile
}

func coinsOf(t *testing.T, db *gorm.DB, userID string) uint64 {
	t.Helper()
	var profile models.Profile
	if err := db.First(&profile, "id = ?", userID).Error; err != nil {
		t.Fatalf("Failed to reload profile: %v", err)
	}
	return profile.Coins
}
