package models

import "time"

// VocabularyItem represents a Greek word or phrase to be learned.
// Items are reference data: the scheduler reads them but never writes them.
type VocabularyItem struct {
	ID            int64     `json:"id" db:"id"`
	Greek         string    `json:"greek" db:"greek"`
	English       string    `json:"english" db:"english"`
	Pronunciation *string   `json:"pronunciation,omitempty" db:"pronunciation"`
	WordType      string    `json:"word_type" db:"word_type"` // e.g., "noun", "verb", "adjective"
	Category      string    `json:"category" db:"category"`
	Difficulty    int       `json:"difficulty" db:"difficulty"` // 1-5 scale of difficulty
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
