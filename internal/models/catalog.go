package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Novel represents a serialized work in the catalog
type Novel struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	Title     string         `gorm:"size:255;not null;index" json:"title"`
	Author    string         `gorm:"size:255;not null;index" json:"author"`
	CoverURL  string         `gorm:"size:1024" json:"cover_url"`
	Genres    datatypes.JSON `gorm:"type:json" json:"genres,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Chapters  []Chapter      `gorm:"foreignKey:NovelID" json:"chapters,omitempty"`
}

// Chapter represents one priced or free unit of novel content,
// addressable by sequence number within its novel
type Chapter struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	NovelID       string    `gorm:"type:char(36);not null;index:idx_novel_chapter,unique" json:"novel_id"`
	ChapterNumber uint64    `gorm:"not null;index:idx_novel_chapter,unique" json:"chapter_number"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:longtext" json:"content,omitempty"`
	Price         uint64    `gorm:"not null;default:0" json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key if none was provided
func (n *Novel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key if none was provided
func (ch *Chapter) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == "" {
		ch.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Novel
func (Novel) TableName() string {
	return "novels"
}

// TableName overrides the table name for Chapter
func (Chapter) TableName() string {
	return "chapters"
}
