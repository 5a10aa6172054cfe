package models

import (
	"time"
)

// Profile holds the per-user wallet and capability flags. The row ID is the
// identity provider's user ID; the row is provisioned on the first
// authenticated request.
type Profile struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Coins     uint64    `gorm:"not null;default:0" json:"coins"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Unlock is a durable grant proving a user paid for a chapter. The composite
// primary key is the race arbiter for concurrent purchases: at most one grant
// per (user, chapter), created exactly once, never mutated.
type Unlock struct {
	UserID    string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	ChapterID string    `gorm:"type:char(36);primaryKey" json:"chapter_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReadingHistory is the last-read marker, one row per (user, novel),
// upserted whenever a readable chapter is served.
type ReadingHistory struct {
	UserID        string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	NovelID       string    `gorm:"type:char(36);primaryKey" json:"novel_id"`
	ChapterNumber uint64    `gorm:"not null" json:"chapter_number"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// TableName overrides the table name for Unlock
func (Unlock) TableName() string {
	return "unlocks"
}

// TableName overrides the table name for ReadingHistory
func (ReadingHistory) TableName() string {
	return "reading_history"
}
