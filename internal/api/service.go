// Package api exposes the practice operations over HTTP.
package api

import (
	"context"

	"github.com/example/ellinika/internal/practice"
	"github.com/example/ellinika/pkg/models"
)

// PracticeService is the set of operations the HTTP layer needs.
// *practice.Service implements it.
type PracticeService interface {
	RegisterUser(ctx context.Context, req practice.RegisterUserRequest) (*models.User, error)
	GetItemsDueForReview(ctx context.Context, userID int64, skill models.SkillType, limit int) ([]models.VocabularyItem, error)
	GetNewVocabularyItems(ctx context.Context, userID int64, limit int) ([]models.VocabularyItem, error)
	GetPracticeStats(ctx context.Context, userID int64, skill models.SkillType) (*models.PracticeStats, error)
	GetWeakAreas(ctx context.Context, userID int64) ([]models.WeakArea, error)
	StartSession(ctx context.Context, req practice.StartSessionRequest) (*models.PracticeSession, error)
	RecordAttempt(ctx context.Context, req practice.RecordAttemptRequest) (*models.PracticeAttempt, error)
	CompleteSession(ctx context.Context, req practice.CompleteSessionRequest) (*models.PracticeSession, error)
	GetSession(ctx context.Context, sessionID string) (*practice.SessionDetail, error)
	ListSessions(ctx context.Context, userID int64, limit int) ([]models.PracticeSession, error)
}

var _ PracticeService = (*practice.Service)(nil)
