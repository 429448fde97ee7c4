package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

const sessionColumns = "id, user_id, session_type, category, focus, total_questions, correct_answers, started_at, completed_at"

// SessionRepository handles database operations for practice sessions
type SessionRepository struct {
	q sqlx.ExtContext
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(q sqlx.ExtContext) *SessionRepository {
	return &SessionRepository{q: q}
}

// Create inserts a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.PracticeSession) error {
	query := r.q.Rebind(`
		INSERT INTO practice_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.q.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.SessionType,
		session.Category,
		session.Focus,
		session.TotalQuestions,
		session.CorrectAnswers,
		session.StartedAt,
		session.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create practice session: %w", err)
	}
	return nil
}

// GetByID returns a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.PracticeSession, error) {
	var session models.PracticeSession
	query := r.q.Rebind("SELECT " + sessionColumns + " FROM practice_sessions WHERE id = ?")
	err := sqlx.GetContext(ctx, r.q, &session, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get practice session: %w", err)
	}
	return &session, nil
}

// Complete writes the totals and closes an open session.
// It reports false when the session was already closed or does not exist.
func (r *SessionRepository) Complete(ctx context.Context, id string, totalQuestions, correctAnswers int, completedAt time.Time) (bool, error) {
	query := r.q.Rebind(`
		UPDATE practice_sessions SET
			total_questions = ?,
			correct_answers = ?,
			completed_at = ?
		WHERE id = ? AND completed_at IS NULL`)
	result, err := r.q.ExecContext(ctx, query, totalQuestions, correctAnswers, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to complete practice session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// ListByUser returns the user's sessions, newest first
func (r *SessionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.PracticeSession, error) {
	query := r.q.Rebind(`
		SELECT ` + sessionColumns + `
		FROM practice_sessions
		WHERE user_id = ?
		ORDER BY started_at DESC, id DESC
		LIMIT ?`)
	sessions := []models.PracticeSession{}
	if err := sqlx.SelectContext(ctx, r.q, &sessions, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list practice sessions: %w", err)
	}
	return sessions, nil
}

// CompletionTimes returns when the user's sessions were completed since the given time
func (r *SessionRepository) CompletionTimes(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	query := r.q.Rebind(`
		SELECT completed_at
		FROM practice_sessions
		WHERE user_id = ? AND completed_at IS NOT NULL AND completed_at >= ?
		ORDER BY completed_at DESC`)
	times := []time.Time{}
	if err := sqlx.SelectContext(ctx, r.q, &times, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to get session completion times: %w", err)
	}
	return times, nil
}
