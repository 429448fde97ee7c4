package practice

import (
	"context"
	"testing"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/pkg/models"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	db    *database.DB
	svc   *Service
	clock *fakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	clock := &fakeClock{now: baseTime}
	svc := NewService(db, Options{Clock: clock.Now})
	return &testEnv{db: db, svc: svc, clock: clock}
}

func (e *testEnv) user(t *testing.T, code string) *models.User {
	t.Helper()
	user, err := e.svc.RegisterUser(context.Background(), RegisterUserRequest{Code: code, DisplayName: "Learner " + code})
	require.NoError(t, err)
	return user
}

func (e *testEnv) item(t *testing.T, greek string, difficulty int) *models.VocabularyItem {
	t.Helper()
	item := &models.VocabularyItem{
		Greek:      greek,
		English:    "meaning of " + greek,
		WordType:   "noun",
		Category:   "basics",
		Difficulty: difficulty,
		CreatedAt:  baseTime,
	}
	require.NoError(t, database.NewVocabularyRepository(e.db).Create(context.Background(), item))
	return item
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func attemptFor(userID, itemID int64, correct bool, ms int) RecordAttemptRequest {
	return RecordAttemptRequest{
		UserID:           userID,
		VocabularyItemID: &itemID,
		QuestionText:     "translate",
		CorrectAnswer:    "answer",
		UserAnswer:       "answer",
		IsCorrect:        &correct,
		TimeTakenMs:      &ms,
		SkillType:        models.SkillRecognition,
	}
}
