package spaced_repetition

import (
	"math"
	"time"
)

const (
	// DefaultEaseFactor is the ease factor fed to the calculator for an item never seen before
	DefaultEaseFactor = 2.3
	// MinEaseFactor is the floor below which the ease factor never drops
	MinEaseFactor = 1.3
	// MasteryIntervalDays is the interval at which an item counts as mastered
	MasteryIntervalDays = 21
)

// SM2 implements the SuperMemo-2 algorithm for spaced repetition
type SM2 struct {
	// Threshold of a successful answer
	PassThreshold Quality
	// Maximum interval in days, 0 means no cap
	MaxInterval int
}

// NewSM2 creates an SM2 with default settings
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold: QualityCorrectDifficult,
	}
}

// Result holds the scheduling fields produced by a review
type Result struct {
	EaseFactor   float64
	IntervalDays int
	NextReviewAt time.Time
}

// Calculate computes the next ease factor, interval and due time.
// reviewCount is the number of reviews before this one. The function never fails:
// out-of-range inputs are clamped so that a usable next review date is always produced.
func (sm *SM2) Calculate(quality Quality, easeFactor float64, intervalDays, reviewCount int, now time.Time) Result {
	quality = quality.clamp()
	if intervalDays < 1 {
		intervalDays = 1
	}

	newEF := nextEaseFactor(easeFactor, quality)

	var nextInterval int
	switch {
	case quality < sm.PassThreshold:
		// Lapse: back to daily review
		nextInterval = 1
	case reviewCount <= 0:
		nextInterval = 1
	case reviewCount == 1:
		nextInterval = 6
	default:
		nextInterval = int(math.Round(float64(intervalDays) * newEF))
	}

	if nextInterval < 1 {
		nextInterval = 1
	}
	if sm.MaxInterval > 0 && nextInterval > sm.MaxInterval {
		nextInterval = sm.MaxInterval
	}

	return Result{
		EaseFactor:   newEF,
		IntervalDays: nextInterval,
		NextReviewAt: now.AddDate(0, 0, nextInterval),
	}
}

// nextEaseFactor applies the SM-2 ease update, floored at MinEaseFactor
func nextEaseFactor(ef float64, quality Quality) float64 {
	q := float64(quality)
	newEF := ef + (0.1 - (5.0-q)*(0.08+(5.0-q)*0.02))
	if newEF < MinEaseFactor || math.IsNaN(newEF) {
		newEF = MinEaseFactor
	}
	return newEF
}

// IsMastered reports whether an interval is long enough to count the item as mastered
func IsMastered(intervalDays int) bool {
	return intervalDays >= MasteryIntervalDays
}
