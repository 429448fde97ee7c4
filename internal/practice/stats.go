package practice

import (
	"context"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/spaced_repetition"
	"github.com/example/ellinika/pkg/models"
)

// GetPracticeStats computes the user's progress for one skill type.
// Nothing is cached; a user with no history gets zeros.
func (s *Service) GetPracticeStats(ctx context.Context, userID int64, skill models.SkillType) (*models.PracticeStats, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateSkill(skill); err != nil {
		return nil, err
	}

	now := s.now()

	counts, err := database.NewStatisticsRepository(s.db).GetSkillCounts(ctx, userID, skill, spaced_repetition.MasteryIntervalDays, now)
	if err != nil {
		return nil, err
	}

	total, err := database.NewVocabularyRepository(s.db).Count(ctx)
	if err != nil {
		return nil, err
	}

	completions, err := database.NewSessionRepository(s.db).CompletionTimes(ctx, userID, now.AddDate(0, 0, -StreakLookbackDays))
	if err != nil {
		return nil, err
	}

	newAvailable := total - counts.Learned
	if newAvailable < 0 {
		newAvailable = 0
	}

	return &models.PracticeStats{
		Streak:        Streak(completions, now, s.loc),
		ItemsMastered: counts.Mastered,
		DueCount:      counts.Due,
		TotalLearned:  counts.Learned,
		NewAvailable:  newAvailable,
	}, nil
}
