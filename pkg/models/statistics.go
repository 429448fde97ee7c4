package models

// PracticeStats summarizes a learner's progress for one skill type
type PracticeStats struct {
	Streak        int `json:"streak"`         // Consecutive days with a completed session
	ItemsMastered int `json:"items_mastered"` // Records with a long enough interval
	DueCount      int `json:"due_count"`
	TotalLearned  int `json:"total_learned"`
	NewAvailable  int `json:"new_available"`
}
