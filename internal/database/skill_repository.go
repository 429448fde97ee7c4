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

// SkillRepository handles database operations for skill records
type SkillRepository struct {
	q sqlx.ExtContext
}

// NewSkillRepository creates a new repository instance
func NewSkillRepository(q sqlx.ExtContext) *SkillRepository {
	return &SkillRepository{q: q}
}

// Get returns the record for one (user, item, skill type) triple
func (r *SkillRepository) Get(ctx context.Context, userID, itemID int64, skill models.SkillType) (*models.SkillRecord, error) {
	var record models.SkillRecord
	query := r.q.Rebind(`
		SELECT user_id, vocabulary_item_id, skill_type, ease_factor, interval_days,
		       next_review_at, review_count, last_reviewed_at, created_at, updated_at
		FROM skill_records
		WHERE user_id = ? AND vocabulary_item_id = ? AND skill_type = ?`)
	err := sqlx.GetContext(ctx, r.q, &record, query, userID, itemID, skill)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSkillRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skill record: %w", err)
	}
	return &record, nil
}

// Upsert creates the record or overwrites its scheduling fields in a single statement.
// Concurrent writes to the same triple resolve as last-write-wins.
func (r *SkillRepository) Upsert(ctx context.Context, record *models.SkillRecord) error {
	query := r.q.Rebind(`
		INSERT INTO skill_records (
			user_id, vocabulary_item_id, skill_type, ease_factor, interval_days,
			next_review_at, review_count, last_reviewed_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, vocabulary_item_id, skill_type) DO UPDATE SET
			ease_factor = excluded.ease_factor,
			interval_days = excluded.interval_days,
			next_review_at = excluded.next_review_at,
			review_count = excluded.review_count,
			last_reviewed_at = excluded.last_reviewed_at,
			updated_at = excluded.updated_at`)
	_, err := r.q.ExecContext(ctx, query,
		record.UserID,
		record.VocabularyItemID,
		record.SkillType,
		record.EaseFactor,
		record.IntervalDays,
		record.NextReviewAt,
		record.ReviewCount,
		record.LastReviewedAt,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill record: %w", err)
	}
	return nil
}

// GetDue returns items whose record is due at now, most overdue first
func (r *SkillRepository) GetDue(ctx context.Context, userID int64, skill models.SkillType, now time.Time, limit int) ([]models.VocabularyItem, error) {
	query := r.q.Rebind(`
		SELECT ` + vocabularyColumns + `
		FROM skill_records s
		JOIN vocabulary_items v ON v.id = s.vocabulary_item_id
		WHERE s.user_id = ? AND s.skill_type = ? AND s.next_review_at <= ?
		ORDER BY s.next_review_at ASC, v.id ASC
		LIMIT ?`)
	items := []models.VocabularyItem{}
	if err := sqlx.SelectContext(ctx, r.q, &items, query, userID, skill, now, limit); err != nil {
		return nil, fmt.Errorf("failed to get due items: %w", err)
	}
	return items, nil
}

// GetNew returns items the user has never attempted, easiest first
func (r *SkillRepository) GetNew(ctx context.Context, userID int64, limit int) ([]models.VocabularyItem, error) {
	query := r.q.Rebind(`
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items v
		WHERE NOT EXISTS (
			SELECT 1 FROM skill_records s
			WHERE s.user_id = ? AND s.vocabulary_item_id = v.id
		)
		ORDER BY v.difficulty ASC, v.id ASC
		LIMIT ?`)
	items := []models.VocabularyItem{}
	if err := sqlx.SelectContext(ctx, r.q, &items, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get new items: %w", err)
	}
	return items, nil
}
