package models

import "time"

// User represents a learner
type User struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"` // Unique registration code
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
