// access.go
//
// Paywall access decision for the novelx reading platform. CheckAccess is the
// single authority on whether a chapter's content may be served; every read
// path goes through it before content leaves the service layer.

package services

import (
	"log"

	"github.com/novelpj/novelx/internal/models"
	"gorm.io/gorm"
)

// Access is the verdict for a (user, chapter) read attempt.
type Access int

const (
	// AccessReadable means content may be served.
	AccessReadable Access = iota
	// AccessLocked means a paid chapter with no grant for this user.
	AccessLocked
	// AccessRequiresAuth means a paid chapter and no authenticated user.
	// The presentation layer treats it like Locked but the remedy differs:
	// sign in rather than pay.
	AccessRequiresAuth
)

// String returns the wire representation of the verdict.
func (a Access) String() string {
	switch a {
	case AccessReadable:
		return "readable"
	case AccessRequiresAuth:
		return "requires_auth"
	default:
		return "locked"
	}
}

// CheckAccess decides whether userID may read chapter. An empty userID means
// anonymous. Pure read, no side effects. Storage errors fail closed: an
// unreachable ledger yields Locked, never Readable.
func CheckAccess(db *gorm.DB, userID string, chapter *models.Chapter) Access {
	if chapter.Price == 0 {
		return AccessReadable
	}

	if userID == "" {
		return AccessRequiresAuth
	}

	var count int64
	err := db.Model(&models.Unlock{}).
		Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).
		Count(&count).Error
	if err != nil {
		log.Printf("CheckAccess: unlock lookup failed, failing closed: %v", err)
		return AccessLocked
	}

	if count > 0 {
		return AccessReadable
	}
	return AccessLocked
}
