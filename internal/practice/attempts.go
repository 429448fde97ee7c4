package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RecordAttempt stores an answered question and reschedules the item it tested.
// Everything happens in one transaction; on any error nothing is written.
func (s *Service) RecordAttempt(ctx context.Context, req RecordAttemptRequest) (*models.PracticeAttempt, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate attempt id: %w", err)
	}
	now := s.now()

	attempt := &models.PracticeAttempt{
		ID:               id.String(),
		UserID:           req.UserID,
		SessionID:        req.SessionID,
		VocabularyItemID: req.VocabularyItemID,
		QuestionText:     req.QuestionText,
		CorrectAnswer:    req.CorrectAnswer,
		UserAnswer:       req.UserAnswer,
		IsCorrect:        *req.IsCorrect,
		TimeTakenMs:      *req.TimeTakenMs,
		CreatedAt:        now,
	}

	err = s.db.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := database.NewUserRepository(tx).GetByID(ctx, req.UserID); err != nil {
			return err
		}

		if req.SessionID != nil {
			if err := checkSessionWritable(ctx, tx, *req.SessionID, req.UserID); err != nil {
				return err
			}
		}

		if req.VocabularyItemID != nil {
			if _, err := database.NewVocabularyRepository(tx).GetByID(ctx, *req.VocabularyItemID); err != nil {
				return err
			}
			if err := s.reschedule(ctx, tx, req, now); err != nil {
				return err
			}
		}

		if req.WeakArea != nil {
			tracker := NewWeakAreaTracker(tx)
			if err := tracker.RecordOutcome(ctx, req.UserID, req.WeakArea.AreaType, req.WeakArea.Identifier, *req.IsCorrect, now); err != nil {
				return err
			}
		}

		return database.NewAttemptRepository(tx).Create(ctx, attempt)
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("recorded attempt",
		"attempt_id", attempt.ID,
		"user_id", attempt.UserID,
		"correct", attempt.IsCorrect,
	)
	return attempt, nil
}

// reschedule feeds the answer through the quality mapper and SM-2 and upserts the skill record
func (s *Service) reschedule(ctx context.Context, tx *sqlx.Tx, req RecordAttemptRequest, now time.Time) error {
	skills := database.NewSkillRepository(tx)
	itemID := *req.VocabularyItemID

	record, err := skills.Get(ctx, req.UserID, itemID, req.SkillType)
	if errors.Is(err, database.ErrSkillRecordNotFound) {
		record = &models.SkillRecord{
			UserID:           req.UserID,
			VocabularyItemID: itemID,
			SkillType:        req.SkillType,
			EaseFactor:       s.defaultEase,
			IntervalDays:     1,
			ReviewCount:      0,
			CreatedAt:        now,
		}
	} else if err != nil {
		return err
	}

	quality := s.bands.Quality(*req.IsCorrect, time.Duration(*req.TimeTakenMs)*time.Millisecond)
	result := s.sm2.Calculate(quality, record.EaseFactor, record.IntervalDays, record.ReviewCount, now)

	record.EaseFactor = result.EaseFactor
	record.IntervalDays = result.IntervalDays
	record.NextReviewAt = result.NextReviewAt
	record.ReviewCount++
	record.LastReviewedAt = &now
	record.UpdatedAt = now

	return skills.Upsert(ctx, record)
}

// checkSessionWritable allows attempts only against the user's own open sessions
func checkSessionWritable(ctx context.Context, q sqlx.ExtContext, sessionID string, userID int64) error {
	session, err := database.NewSessionRepository(q).GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return database.ErrSessionNotFound
	}
	if !session.IsOpen() {
		return ErrSessionClosed
	}
	return nil
}
