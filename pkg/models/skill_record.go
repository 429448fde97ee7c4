package models

import "time"

// SkillType distinguishes the independently scheduled ways an item is tested
type SkillType string

const (
	// SkillRecognition tests recognizing an item's meaning
	SkillRecognition SkillType = "recognition"
	// SkillProduction tests producing the item from memory
	SkillProduction SkillType = "production"
)

// Valid reports whether s is a known skill type
func (s SkillType) Valid() bool {
	return s == SkillRecognition || s == SkillProduction
}

// SkillRecord tracks a user's scheduling state for one vocabulary item and skill type.
// At most one record exists per (user, item, skill type); it is created on the first
// attempt and never deleted.
type SkillRecord struct {
	UserID           int64      `json:"user_id" db:"user_id"`
	VocabularyItemID int64      `json:"vocabulary_item_id" db:"vocabulary_item_id"`
	SkillType        SkillType  `json:"skill_type" db:"skill_type"`
	EaseFactor       float64    `json:"ease_factor" db:"ease_factor"`       // SM-2 EF parameter
	IntervalDays     int        `json:"interval_days" db:"interval_days"`   // Current interval in days
	NextReviewAt     time.Time  `json:"next_review_at" db:"next_review_at"`
	ReviewCount      int        `json:"review_count" db:"review_count"`     // Number of attempts, never reset
	LastReviewedAt   *time.Time `json:"last_reviewed_at,omitempty" db:"last_reviewed_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}
