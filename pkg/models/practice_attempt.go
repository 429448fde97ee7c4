package models

import "time"

// PracticeAttempt is one answered question. Attempts are append-only.
type PracticeAttempt struct {
	ID               string    `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	SessionID        *string   `json:"session_id,omitempty" db:"session_id"`
	VocabularyItemID *int64    `json:"vocabulary_item_id,omitempty" db:"vocabulary_item_id"`
	QuestionText     string    `json:"question_text" db:"question_text"`
	CorrectAnswer    string    `json:"correct_answer" db:"correct_answer"`
	UserAnswer       string    `json:"user_answer" db:"user_answer"`
	IsCorrect        bool      `json:"is_correct" db:"is_correct"`
	TimeTakenMs      int       `json:"time_taken_ms" db:"time_taken_ms"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
