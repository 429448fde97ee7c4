// Package practice records practice telemetry and serves the learner-facing
// read paths: due reviews, new items, stats, weak areas and session history.
package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/spaced_repetition"
	"github.com/example/ellinika/pkg/models"
)

const (
	// DefaultLimit is used when a caller passes a non-positive limit
	DefaultLimit = 20
	// MaxLimit caps every list query
	MaxLimit = 100
)

// Clock returns the current time
type Clock func() time.Time

// Options tunes a Service. Zero values fall back to defaults.
type Options struct {
	Scheduler         *spaced_repetition.SM2
	Bands             *spaced_repetition.QualityBands
	DefaultEaseFactor float64
	Location          *time.Location
	Clock             Clock
	Logger            *slog.Logger
}

// Service implements the practice operations on top of the database repositories
type Service struct {
	db          *database.DB
	sm2         *spaced_repetition.SM2
	bands       spaced_repetition.QualityBands
	defaultEase float64
	loc         *time.Location
	clock       Clock
	log         *slog.Logger
}

// NewService creates a new practice service
func NewService(db *database.DB, opts Options) *Service {
	s := &Service{
		db:          db,
		sm2:         opts.Scheduler,
		bands:       spaced_repetition.DefaultQualityBands(),
		defaultEase: opts.DefaultEaseFactor,
		loc:         opts.Location,
		clock:       opts.Clock,
		log:         opts.Logger,
	}
	if s.sm2 == nil {
		s.sm2 = spaced_repetition.NewSM2()
	}
	if opts.Bands != nil {
		s.bands = *opts.Bands
	}
	if s.defaultEase < spaced_repetition.MinEaseFactor {
		s.defaultEase = spaced_repetition.DefaultEaseFactor
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "practice")
	return s
}

// now returns the clock's time normalized for storage
func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(time.Second)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// RegisterUser creates a learner after checking that the code is free
func (s *Service) RegisterUser(ctx context.Context, req RegisterUserRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user := &models.User{
		Code:        req.Code,
		DisplayName: req.DisplayName,
		CreatedAt:   s.now(),
	}
	if err := database.NewUserRepository(s.db).Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("registered user", "user_id", user.ID, "code", user.Code)
	return user, nil
}

// GetItemsDueForReview returns the user's items due for the given skill, most overdue first
func (s *Service) GetItemsDueForReview(ctx context.Context, userID int64, skill models.SkillType, limit int) ([]models.VocabularyItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateSkill(skill); err != nil {
		return nil, err
	}

	items, err := database.NewSkillRepository(s.db).GetDue(ctx, userID, skill, s.now(), normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get items due for review: %w", err)
	}
	return items, nil
}

// GetNewVocabularyItems returns items the user has never attempted, easiest first
func (s *Service) GetNewVocabularyItems(ctx context.Context, userID int64, limit int) ([]models.VocabularyItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	items, err := database.NewSkillRepository(s.db).GetNew(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get new vocabulary items: %w", err)
	}
	return items, nil
}

// GetWeakAreas returns the areas currently flagged for focus
func (s *Service) GetWeakAreas(ctx context.Context, userID int64) ([]models.WeakArea, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return NewWeakAreaTracker(s.db).ListNeedingFocus(ctx, userID)
}
