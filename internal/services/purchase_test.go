package services

import (
	"testing"

	"github.com/novelpj/novelx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseChapterDebitsAndGrants(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 30)
	buyer := seedProfile(t, db, 100)

	outcome, err := PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)

	assert.Equal(t, uint64(70), coinsOf(t, db, buyer.ID))

	var grants int64
	db.Model(&models.Unlock{}).
		Where("user_id = ? AND chapter_id = ?", buyer.ID, chapter.ID).
		Count(&grants)
	assert.Equal(t, int64(1), grants)
}

func TestPurchaseChapterIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 30)
	buyer := seedProfile(t, db, 100)

	outcome, err := PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	require.Equal(t, OutcomeSuccess, outcome)

	outcome, err = PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyOwned, outcome)

	// The repeat attempt must not debit again.
	assert.Equal(t, uint64(70), coinsOf(t, db, buyer.ID))

	var grants int64
	db.Model(&models.Unlock{}).Where("user_id = ?", buyer.ID).Count(&grants)
	assert.Equal(t, int64(1), grants)
}

func TestPurchaseChapterInsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 30)
	buyer := seedProfile(t, db, 29)

	outcome, err := PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInsufficientFunds, outcome)

	// Nothing changed: no debit, no grant.
	assert.Equal(t, uint64(29), coinsOf(t, db, buyer.ID))

	var grants int64
	db.Model(&models.Unlock{}).Where("user_id = ?", buyer.ID).Count(&grants)
	assert.Equal(t, int64(0), grants)
}

func TestPurchaseChapterExactBalance(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 30)
	buyer := seedProfile(t, db, 30)

	outcome, err := PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, uint64(0), coinsOf(t, db, buyer.ID))
}

func TestPurchaseFreeChapterReturnsAlreadyOwned(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 0)
	buyer := seedProfile(t, db, 100)

	outcome, err := PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyOwned, outcome)
	assert.Equal(t, uint64(100), coinsOf(t, db, buyer.ID))
}

func TestPurchaseChapterNotFound(t *testing.T) {
	db := setupTestDB(t)
	buyer := seedProfile(t, db, 100)

	outcome, err := PurchaseChapter(db, buyer.ID, "no-such-chapter")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)
}

func TestPurchaseChapterUnknownProfile(t *testing.T) {
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 30)

	outcome, err := PurchaseChapter(db, "no-such-user", chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)
}

func TestPurchaseChapterEmptyArguments(t *testing.T) {
	db := setupTestDB(t)

	outcome, err := PurchaseChapter(db, "", "whatever")
	assert.Error(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)
}

func TestPurchaseChapterAfterDirectGrant(t *testing.T) {
	// A grant inserted outside the purchase path (promotion, migration)
	// is still honored: the purchase sees ownership and debits nothing.
	db := setupTestDB(t)
	novel := seedNovel(t, db, "The Ash Garden", "R. Vane")
	chapter := seedChapter(t, db, novel.ID, 1, 30)
	buyer := seedProfile(t, db, 100)

	require.NoError(t, db.Create(&models.Unlock{UserID: buyer.ID, ChapterID: chapter.ID}).Error)

	outcome, err := PurchaseChapter(db, buyer.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyOwned, outcome)
	assert.Equal(t, uint64(100), coinsOf(t, db, buyer.ID))
}
