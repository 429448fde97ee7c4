package models

import "time"

// PracticeSession is a single drill run.
// A session is open while CompletedAt is nil and immutable once closed.
type PracticeSession struct {
	ID             string     `json:"id" db:"id"`
	UserID         int64      `json:"user_id" db:"user_id"`
	SessionType    string     `json:"session_type" db:"session_type"` // e.g., "vocabulary", "conjugation", "declension"
	Category       *string    `json:"category,omitempty" db:"category"`
	Focus          *string    `json:"focus,omitempty" db:"focus"`
	TotalQuestions int        `json:"total_questions" db:"total_questions"`
	CorrectAnswers int        `json:"correct_answers" db:"correct_answers"`
	StartedAt      time.Time  `json:"started_at" db:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// IsOpen reports whether the session has not been completed yet
func (s *PracticeSession) IsOpen() bool {
	return s.CompletedAt == nil
}
