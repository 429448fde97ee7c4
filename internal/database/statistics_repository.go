package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

// SkillCounts holds the record counts behind a user's practice stats
type SkillCounts struct {
	Learned  int
	Mastered int
	Due      int
}

// UserDueCount is the number of reviews a user has waiting
type UserDueCount struct {
	UserID      int64  `db:"user_id"`
	Code        string `db:"code"`
	DisplayName string `db:"display_name"`
	DueCount    int    `db:"due_count"`
}

// StatisticsRepository runs the aggregate queries used for stats and reminders
type StatisticsRepository struct {
	q sqlx.ExtContext
}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository(q sqlx.ExtContext) *StatisticsRepository {
	return &StatisticsRepository{q: q}
}

// GetSkillCounts counts the user's records for one skill type
func (r *StatisticsRepository) GetSkillCounts(ctx context.Context, userID int64, skill models.SkillType, masteryInterval int, now time.Time) (*SkillCounts, error) {
	counts := &SkillCounts{}

	// Get total records
	err := sqlx.GetContext(ctx, r.q, &counts.Learned,
		r.q.Rebind("SELECT COUNT(*) FROM skill_records WHERE user_id = ? AND skill_type = ?"),
		userID, skill)
	if err != nil {
		return nil, fmt.Errorf("failed to count learned items: %w", err)
	}

	// Get mastered records
	err = sqlx.GetContext(ctx, r.q, &counts.Mastered,
		r.q.Rebind("SELECT COUNT(*) FROM skill_records WHERE user_id = ? AND skill_type = ? AND interval_days >= ?"),
		userID, skill, masteryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered items: %w", err)
	}

	// Get records due now
	err = sqlx.GetContext(ctx, r.q, &counts.Due,
		r.q.Rebind("SELECT COUNT(*) FROM skill_records WHERE user_id = ? AND skill_type = ? AND next_review_at <= ?"),
		userID, skill, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count due items: %w", err)
	}

	return counts, nil
}

// DueCountsByUser returns every user with at least one review due at now
func (r *StatisticsRepository) DueCountsByUser(ctx context.Context, now time.Time) ([]UserDueCount, error) {
	query := r.q.Rebind(`
		SELECT u.id AS user_id, u.code, u.display_name, COUNT(*) AS due_count
		FROM skill_records s
		JOIN users u ON u.id = s.user_id
		WHERE s.next_review_at <= ?
		GROUP BY u.id, u.code, u.display_name
		ORDER BY u.id`)
	counts := []UserDueCount{}
	if err := sqlx.SelectContext(ctx, r.q, &counts, query, now); err != nil {
		return nil, fmt.Errorf("failed to get due counts: %w", err)
	}
	return counts, nil
}
