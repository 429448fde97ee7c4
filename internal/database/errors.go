package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert would violate a uniqueness rule
	ErrDuplicate = errors.New("entity already exists")

	ErrUserNotFound           = fmt.Errorf("%w: user", ErrNotFound)
	ErrVocabularyItemNotFound = fmt.Errorf("%w: vocabulary item", ErrNotFound)
	ErrSkillRecordNotFound    = fmt.Errorf("%w: skill record", ErrNotFound)
	ErrWeakAreaNotFound       = fmt.Errorf("%w: weak area", ErrNotFound)
	ErrSessionNotFound        = fmt.Errorf("%w: practice session", ErrNotFound)

	// ErrDuplicateUserCode indicates a user with the same registration code exists
	ErrDuplicateUserCode = fmt.Errorf("%w: user code", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure from either driver
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
