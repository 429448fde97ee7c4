package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

const vocabularyColumns = "v.id, v.greek, v.english, v.pronunciation, v.word_type, v.category, v.difficulty, v.created_at"

// VocabularyRepository handles database operations for vocabulary items
type VocabularyRepository struct {
	q sqlx.ExtContext
}

// NewVocabularyRepository creates a new repository instance
func NewVocabularyRepository(q sqlx.ExtContext) *VocabularyRepository {
	return &VocabularyRepository{q: q}
}

// GetByID returns a vocabulary item by ID
func (r *VocabularyRepository) GetByID(ctx context.Context, id int64) (*models.VocabularyItem, error) {
	var item models.VocabularyItem
	query := r.q.Rebind("SELECT " + vocabularyColumns + " FROM vocabulary_items v WHERE v.id = ?")
	err := sqlx.GetContext(ctx, r.q, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVocabularyItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary item by ID: %w", err)
	}
	return &item, nil
}

// GetByGreekAndCategory finds the item with the given headword inside a category
func (r *VocabularyRepository) GetByGreekAndCategory(ctx context.Context, greek, category string) (*models.VocabularyItem, error) {
	var item models.VocabularyItem
	query := r.q.Rebind("SELECT " + vocabularyColumns + " FROM vocabulary_items v WHERE v.greek = ? AND v.category = ?")
	err := sqlx.GetContext(ctx, r.q, &item, query, greek, category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVocabularyItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary item: %w", err)
	}
	return &item, nil
}

// Create inserts a new vocabulary item
func (r *VocabularyRepository) Create(ctx context.Context, item *models.VocabularyItem) error {
	id, err := insertReturningID(ctx, r.q, `
		INSERT INTO vocabulary_items (greek, english, pronunciation, word_type, category, difficulty, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.Greek,
		item.English,
		item.Pronunciation,
		item.WordType,
		item.Category,
		item.Difficulty,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary item: %w", err)
	}
	item.ID = id
	return nil
}

// Update modifies an existing vocabulary item
func (r *VocabularyRepository) Update(ctx context.Context, item *models.VocabularyItem) error {
	query := r.q.Rebind(`
		UPDATE vocabulary_items SET
			english = ?,
			pronunciation = ?,
			word_type = ?,
			difficulty = ?
		WHERE id = ?`)
	result, err := r.q.ExecContext(ctx, query,
		item.English,
		item.Pronunciation,
		item.WordType,
		item.Difficulty,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vocabulary item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrVocabularyItemNotFound
	}
	return nil
}

// Count returns the total number of vocabulary items
func (r *VocabularyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, "SELECT COUNT(*) FROM vocabulary_items"); err != nil {
		return 0, fmt.Errorf("failed to count vocabulary items: %w", err)
	}
	return count, nil
}
