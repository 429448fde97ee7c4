package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
)

// UserRepository handles database operations for users
type UserRepository struct {
	q sqlx.ExtContext
}

// NewUserRepository creates a new repository instance
func NewUserRepository(q sqlx.ExtContext) *UserRepository {
	return &UserRepository{q: q}
}

// GetByID returns a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	query := r.q.Rebind("SELECT id, code, display_name, created_at FROM users WHERE id = ?")
	err := sqlx.GetContext(ctx, r.q, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

// GetByCode returns a user by registration code
func (r *UserRepository) GetByCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	query := r.q.Rebind("SELECT id, code, display_name, created_at FROM users WHERE code = ?")
	err := sqlx.GetContext(ctx, r.q, &user, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by code: %w", err)
	}
	return &user, nil
}

// Create inserts a new user, rejecting a code that is already registered
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if _, err := r.GetByCode(ctx, user.Code); err == nil {
		return ErrDuplicateUserCode
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	id, err := insertReturningID(ctx, r.q,
		"INSERT INTO users (code, display_name, created_at) VALUES (?, ?, ?)",
		user.Code, user.DisplayName, user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateUserCode
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id
	return nil
}

// insertReturningID runs an INSERT and returns the generated id.
// PostgreSQL reports it through RETURNING, SQLite through LastInsertId.
func insertReturningID(ctx context.Context, q sqlx.ExtContext, query string, args ...interface{}) (int64, error) {
	if q.DriverName() == DriverPostgres {
		var id int64
		err := q.QueryRowxContext(ctx, q.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	result, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}
