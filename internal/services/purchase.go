// purchase.go
//
// The chapter purchase transaction. This is the one operation in the system
// where money changes hands, so the debit and the grant insert commit
// together or not at all, inside a single database transaction with row
// locks. The composite primary key on unlocks arbitrates concurrent buyers.

package services

import (
	"errors"
	"log"

	"github.com/novelpj/novelx/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Outcome is the result of a purchase attempt, surfaced verbatim to clients.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeAlreadyOwned      Outcome = "already_owned"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeNotFound          Outcome = "not_found"
	OutcomeFailure           Outcome = "failure"
)

// Sentinel errors used to abort the purchase transaction. They roll the
// transaction back and map one-to-one onto non-success outcomes.
var (
	ErrAlreadyOwned      = errors.New("chapter already owned")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("chapter or profile not found")
)

// PurchaseChapter atomically debits the buyer's coin balance and records the
// unlock grant for the chapter. The price is re-read inside the transaction;
// client-supplied prices are never trusted. The operation is idempotent per
// (user, chapter): a repeat attempt returns OutcomeAlreadyOwned and debits
// nothing. Safe to retry on OutcomeFailure.
func PurchaseChapter(db *gorm.DB, userID, chapterID string) (Outcome, error) {
	if userID == "" || chapterID == "" {
		return OutcomeNotFound, ErrNotFound
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Re-fetch the chapter under lock; the price on the row is the
		// only price that counts.
		var chapter models.Chapter
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", chapterID).
			First(&chapter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// A free chapter never needs a grant.
		if chapter.Price == 0 {
			return ErrAlreadyOwned
		}

		var owned int64
		if err := tx.Model(&models.Unlock{}).
			Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return ErrAlreadyOwned
		}

		var profile models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if profile.Coins < chapter.Price {
			return ErrInsufficientFunds
		}

		// Guarded debit: the WHERE clause re-checks the balance so the
		// coin count can never go negative, whatever the isolation level.
		debit := tx.Model(&models.Profile{}).
			Where("id = ? AND coins >= ?", userID, chapter.Price).
			Update("coins", gorm.Expr("coins - ?", chapter.Price))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		grant := models.Unlock{UserID: userID, ChapterID: chapter.ID}
		if err := tx.Create(&grant).Error; err != nil {
			// A concurrent purchase won the race on the (user_id,
			// chapter_id) key. Abort so the debit rolls back too.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyOwned
			}
			return err
		}

		return nil
	})

	switch {
	case err == nil:
		return OutcomeSuccess, nil
	case errors.Is(err, ErrAlreadyOwned):
		return OutcomeAlreadyOwned, nil
	case errors.Is(err, ErrInsufficientFunds):
		return OutcomeInsufficientFunds, nil
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound, nil
	default:
		log.Printf("PurchaseChapter: transaction failed for user=%s chapter=%s: %v", userID, chapterID, err)
		return OutcomeFailure, err
	}
}
