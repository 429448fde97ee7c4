package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

// WeakAreaRepository handles database operations for weak areas
type WeakAreaRepository struct {
	q sqlx.ExtContext
}

// NewWeakAreaRepository creates a new repository instance
func NewWeakAreaRepository(q sqlx.ExtContext) *WeakAreaRepository {
	return &WeakAreaRepository{q: q}
}

// Get returns a single weak area
func (r *WeakAreaRepository) Get(ctx context.Context, userID int64, areaType models.AreaType, identifier string) (*models.WeakArea, error) {
	var area models.WeakArea
	query := r.q.Rebind(`
		SELECT user_id, area_type, area_identifier, mistake_count, needs_focus, last_mistake_at
		FROM weak_areas
		WHERE user_id = ? AND area_type = ? AND area_identifier = ?`)
	err := sqlx.GetContext(ctx, r.q, &area, query, userID, areaType, identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWeakAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weak area: %w", err)
	}
	return &area, nil
}

// Save creates or overwrites a weak area
func (r *WeakAreaRepository) Save(ctx context.Context, area *models.WeakArea) error {
	query := r.q.Rebind(`
		INSERT INTO weak_areas (user_id, area_type, area_identifier, mistake_count, needs_focus, last_mistake_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, area_type, area_identifier) DO UPDATE SET
			mistake_count = excluded.mistake_count,
			needs_focus = excluded.needs_focus,
			last_mistake_at = excluded.last_mistake_at`)
	_, err := r.q.ExecContext(ctx, query,
		area.UserID,
		area.AreaType,
		area.AreaIdentifier,
		area.MistakeCount,
		area.NeedsFocus,
		area.LastMistakeAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save weak area: %w", err)
	}
	return nil
}

// Delete removes a weak area
func (r *WeakAreaRepository) Delete(ctx context.Context, userID int64, areaType models.AreaType, identifier string) error {
	query := r.q.Rebind("DELETE FROM weak_areas WHERE user_id = ? AND area_type = ? AND area_identifier = ?")
	if _, err := r.q.ExecContext(ctx, query, userID, areaType, identifier); err != nil {
		return fmt.Errorf("failed to delete weak area: %w", err)
	}
	return nil
}

// ListNeedingFocus returns the user's flagged areas, most mistakes first
func (r *WeakAreaRepository) ListNeedingFocus(ctx context.Context, userID int64) ([]models.WeakArea, error) {
	query := r.q.Rebind(`
		SELECT user_id, area_type, area_identifier, mistake_count, needs_focus, last_mistake_at
		FROM weak_areas
		WHERE user_id = ? AND needs_focus = ?
		ORDER BY mistake_count DESC, last_mistake_at DESC`)
	areas := []models.WeakArea{}
	if err := sqlx.SelectContext(ctx, r.q, &areas, query, userID, true); err != nil {
		return nil, fmt.Errorf("failed to list weak areas: %w", err)
	}
	return areas, nil
}
