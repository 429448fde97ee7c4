package database

import (
	"context"
	"testing"
	"time"

	"github.com/example/ellinika/pkg/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func createTestUser(t *testing.T, db *DB, code string) *models.User {
	t.Helper()
	user := &models.User{Code: code, DisplayName: "Learner " + code, CreatedAt: testNow}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestItem(t *testing.T, db *DB, greek string, difficulty int) *models.VocabularyItem {
	t.Helper()
	item := &models.VocabularyItem{
		Greek:      greek,
		English:    "translation of " + greek,
		WordType:   "noun",
		Category:   "basics",
		Difficulty: difficulty,
		CreatedAt:  testNow,
	}
	require.NoError(t, NewVocabularyRepository(db).Create(context.Background(), item))
	return item
}

func skillRecord(userID, itemID int64, skill models.SkillType, interval int, next time.Time) *models.SkillRecord {
	reviewed := testNow
	return &models.SkillRecord{
		UserID:           userID,
		VocabularyItemID: itemID,
		SkillType:        skill,
		EaseFactor:       2.3,
		IntervalDays:     interval,
		NextReviewAt:     next,
		ReviewCount:      1,
		LastReviewedAt:   &reviewed,
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}
