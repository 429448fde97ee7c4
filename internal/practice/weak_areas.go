package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

// FocusThreshold is the mistake count at which a corrected area stays flagged
const FocusThreshold = 3

// WeakAreaTracker keeps per-area mistake counts.
// Correct answers pay mistakes down one at a time; a repeat mistake always flags the area.
type WeakAreaTracker struct {
	repo *database.WeakAreaRepository
}

// NewWeakAreaTracker creates a tracker bound to a connection or transaction
func NewWeakAreaTracker(q sqlx.ExtContext) *WeakAreaTracker {
	return &WeakAreaTracker{repo: database.NewWeakAreaRepository(q)}
}

// RecordOutcome applies one answer to the area's mistake count
func (t *WeakAreaTracker) RecordOutcome(ctx context.Context, userID int64, areaType models.AreaType, identifier string, isCorrect bool, now time.Time) error {
	area, err := t.repo.Get(ctx, userID, areaType, identifier)
	if err != nil && !errors.Is(err, database.ErrWeakAreaNotFound) {
		return err
	}

	if isCorrect {
		if area == nil {
			return nil
		}
		area.MistakeCount--
		if area.MistakeCount <= 0 {
			return t.repo.Delete(ctx, userID, areaType, identifier)
		}
		area.NeedsFocus = area.MistakeCount >= FocusThreshold
		return t.repo.Save(ctx, area)
	}

	if area == nil {
		area = &models.WeakArea{
			UserID:         userID,
			AreaType:       areaType,
			AreaIdentifier: identifier,
			MistakeCount:   1,
			NeedsFocus:     false,
			LastMistakeAt:  now,
		}
	} else {
		area.MistakeCount++
		area.NeedsFocus = true
		area.LastMistakeAt = now
	}
	if err := t.repo.Save(ctx, area); err != nil {
		return fmt.Errorf("failed to record mistake: %w", err)
	}
	return nil
}

// ListNeedingFocus returns flagged areas, most mistakes first
func (t *WeakAreaTracker) ListNeedingFocus(ctx context.Context, userID int64) ([]models.WeakArea, error) {
	return t.repo.ListNeedingFocus(ctx, userID)
}
