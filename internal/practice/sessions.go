package practice

import (
	"context"
	"fmt"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionDetail is a session together with the attempts made in it
type SessionDetail struct {
	Session  *models.PracticeSession  `json:"session"`
	Attempts []models.PracticeAttempt `json:"attempts"`
}

// StartSession opens a new session for the user
func (s *Service) StartSession(ctx context.Context, req StartSessionRequest) (*models.PracticeSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := &models.PracticeSession{
		ID:          id.String(),
		UserID:      req.UserID,
		SessionType: req.SessionType,
		Category:    req.Category,
		Focus:       req.Focus,
		StartedAt:   s.now(),
	}

	err = s.db.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := database.NewUserRepository(tx).GetByID(ctx, req.UserID); err != nil {
			return err
		}
		return database.NewSessionRepository(tx).Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("started session", "session_id", session.ID, "user_id", session.UserID, "type", session.SessionType)
	return session, nil
}

// CompleteSession records the final totals and closes the session
func (s *Service) CompleteSession(ctx context.Context, req CompleteSessionRequest) (*models.PracticeSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var session *models.PracticeSession
	err := s.db.InTx(ctx, func(tx *sqlx.Tx) error {
		repo := database.NewSessionRepository(tx)

		existing, err := repo.GetByID(ctx, req.SessionID)
		if err != nil {
			return err
		}
		if !existing.IsOpen() {
			return ErrSessionClosed
		}

		closed, err := repo.Complete(ctx, req.SessionID, req.TotalQuestions, req.CorrectAnswers, s.now())
		if err != nil {
			return err
		}
		if !closed {
			return ErrSessionClosed
		}

		session, err = repo.GetByID(ctx, req.SessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("completed session",
		"session_id", session.ID,
		"user_id", session.UserID,
		"total", session.TotalQuestions,
		"correct", session.CorrectAnswers,
	)
	return session, nil
}

// GetSession returns a session and its attempts
func (s *Service) GetSession(ctx context.Context, sessionID string) (*SessionDetail, error) {
	if sessionID == "" {
		return nil, fieldError("session_id", "is required")
	}

	session, err := database.NewSessionRepository(s.db).GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	attempts, err := database.NewAttemptRepository(s.db).ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: session, Attempts: attempts}, nil
}

// ListSessions returns the user's session history, newest first
func (s *Service) ListSessions(ctx context.Context, userID int64, limit int) ([]models.PracticeSession, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return database.NewSessionRepository(s.db).ListByUser(ctx, userID, normalizeLimit(limit))
}
