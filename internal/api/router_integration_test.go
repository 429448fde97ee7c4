package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/practice"
	"github.com/example/ellinika/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeFlowOverHTTP(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := practice.NewService(db, practice.Options{Clock: func() time.Time { return now }, Logger: testLogger()})
	router := NewRouter(svc, testLogger())

	item := &models.VocabularyItem{Greek: "ήλιος", English: "sun", WordType: "noun", Category: "nature", Difficulty: 1, CreatedAt: now}
	require.NoError(t, database.NewVocabularyRepository(db).Create(context.Background(), item))

	rec := do(t, router, http.MethodPost, "/api/users", `{"code": "eleni", "display_name": "Eleni"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))

	rec = do(t, router, http.MethodPost, "/api/users", `{"code": "eleni", "display_name": "Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	base := fmt.Sprintf("/api/users/%d", user.ID)

	rec = do(t, router, http.MethodPost, base+"/sessions", `{"session_type": "vocabulary"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var session models.PracticeSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	attempt := fmt.Sprintf(`{"session_id": %q, "vocabulary_item_id": %d, "question_text": "ήλιος", "correct_answer": "sun", "user_answer": "sun", "is_correct": true, "time_taken_ms": 1500, "skill_type": "recognition"}`, session.ID, item.ID)
	rec = do(t, router, http.MethodPost, base+"/attempts", attempt)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/sessions/"+session.ID+"/complete", `{"total_questions": 1, "correct_answers": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/sessions/"+session.ID+"/complete", `{"total_questions": 1, "correct_answers": 1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/sessions/"+session.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail practice.SessionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Len(t, detail.Attempts, 1)

	rec = do(t, router, http.MethodGet, base+"/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.PracticeStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, models.PracticeStats{Streak: 1, TotalLearned: 1}, stats)

	rec = do(t, router, http.MethodGet, "/api/sessions/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordAttemptRequiresOutcomeFields(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := practice.NewService(db, practice.Options{Clock: func() time.Time { return now }, Logger: testLogger()})
	router := NewRouter(svc, testLogger())

	item := &models.VocabularyItem{Greek: "νερό", English: "water", WordType: "noun", Category: "nature", Difficulty: 1, CreatedAt: now}
	require.NoError(t, database.NewVocabularyRepository(db).Create(context.Background(), item))

	rec := do(t, router, http.MethodPost, "/api/users", `{"code": "nikos", "display_name": "Nikos"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	path := fmt.Sprintf("/api/users/%d/attempts", user.ID)

	tests := []struct {
		name    string
		outcome string
		field   string
	}{
		{"time omitted", `"is_correct": true`, "time_taken_ms"},
		{"correctness omitted", `"time_taken_ms": 1500`, "is_correct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"vocabulary_item_id": %d, "question_text": "νερό", "correct_answer": "water", "user_answer": "water", "skill_type": "recognition", %s}`, item.ID, tt.outcome)
			rec := do(t, router, http.MethodPost, path, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Fields, tt.field)
		})
	}

	var records int
	require.NoError(t, db.Get(&records, "SELECT COUNT(*) FROM skill_records"))
	assert.Equal(t, 0, records)

	body := fmt.Sprintf(`{"vocabulary_item_id": %d, "question_text": "νερό", "correct_answer": "water", "user_answer": "νερό", "is_correct": false, "time_taken_ms": 0, "skill_type": "recognition"}`, item.ID)
	rec = do(t, router, http.MethodPost, path, body)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
