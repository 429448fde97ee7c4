package models

import "time"

// AreaType is a grammatical category in which mistakes are counted
type AreaType string

const (
	AreaCase       AreaType = "case"
	AreaGender     AreaType = "gender"
	AreaVerbFamily AreaType = "verb_family"
)

// Valid reports whether a is a known area type
func (a AreaType) Valid() bool {
	switch a {
	case AreaCase, AreaGender, AreaVerbFamily:
		return true
	}
	return false
}

// WeakArea accumulates mistakes for a grammatical area independent of any single word,
// e.g. (case, "genitive") or (verb_family, "-άω").
type WeakArea struct {
	UserID         int64     `json:"user_id" db:"user_id"`
	AreaType       AreaType  `json:"area_type" db:"area_type"`
	AreaIdentifier string    `json:"area_identifier" db:"area_identifier"`
	MistakeCount   int       `json:"mistake_count" db:"mistake_count"`
	NeedsFocus     bool      `json:"needs_focus" db:"needs_focus"`
	LastMistakeAt  time.Time `json:"last_mistake_at" db:"last_mistake_at"`
}
