package database

import (
	"context"
	"fmt"

	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

const attemptColumns = "id, user_id, session_id, vocabulary_item_id, question_text, correct_answer, user_answer, is_correct, time_taken_ms, created_at"

// AttemptRepository appends to and reads the practice attempt log
type AttemptRepository struct {
	q sqlx.ExtContext
}

// NewAttemptRepository creates a new repository instance
func NewAttemptRepository(q sqlx.ExtContext) *AttemptRepository {
	return &AttemptRepository{q: q}
}

// Create appends an attempt
func (r *AttemptRepository) Create(ctx context.Context, attempt *models.PracticeAttempt) error {
	query := r.q.Rebind(`
		INSERT INTO practice_attempts (` + attemptColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.q.ExecContext(ctx, query,
		attempt.ID,
		attempt.UserID,
		attempt.SessionID,
		attempt.VocabularyItemID,
		attempt.QuestionText,
		attempt.CorrectAnswer,
		attempt.UserAnswer,
		attempt.IsCorrect,
		attempt.TimeTakenMs,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create practice attempt: %w", err)
	}
	return nil
}

// ListBySession returns a session's attempts in the order they were made
func (r *AttemptRepository) ListBySession(ctx context.Context, sessionID string) ([]models.PracticeAttempt, error) {
	query := r.q.Rebind(`
		SELECT ` + attemptColumns + `
		FROM practice_attempts
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC`)
	attempts := []models.PracticeAttempt{}
	if err := sqlx.SelectContext(ctx, r.q, &attempts, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list practice attempts: %w", err)
	}
	return attempts, nil
}
