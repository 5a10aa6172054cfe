package services

import (
	"errors"
	"fmt"

	"github.com/novelpj/novelx/internal/models"
	"gorm.io/gorm"
)

// EnsureProfile provisions the profile row for a newly seen identity. The
// original platform did this with a database trigger on signup; here the
// first authenticated request creates the row with a zero balance.
func EnsureProfile(db *gorm.DB, userID, email string) (*models.Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	profile := models.Profile{ID: userID, Email: email}
	if err := db.Where("id = ?", userID).FirstOrCreate(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile returns the profile (wallet balance, admin flag) for userID.
func GetProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Where("id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &profile, nil
}

// IsAdmin reports whether userID carries the admin capability. It is the one
// authorization predicate in front of the publishing surface; handlers never
// check the flag themselves.
func IsAdmin(db *gorm.DB, userID string) (bool, error) {
	profile, err := GetProfile(db, userID)
	if err != nil {
		return false, err
	}
	return profile.IsAdmin, nil
}
