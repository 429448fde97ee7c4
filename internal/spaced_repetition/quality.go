package spaced_repetition

import "time"

// Quality represents the quality of response in SM-2
type Quality int

const (
	// Complete blackout, unable to recall
	QualityBlackout Quality = 0
	// Incorrect response but remembered upon seeing the correct answer
	QualityIncorrect Quality = 1
	// Correct but very slow, still distinct from a wrong answer
	QualityCorrectSlow Quality = 2
	// Correct response but required significant effort
	QualityCorrectDifficult Quality = 3
	// Correct response after some hesitation
	QualityCorrectHesitation Quality = 4
	// Perfect response with no hesitation
	QualityPerfect Quality = 5
)

func (q Quality) clamp() Quality {
	if q < QualityBlackout {
		return QualityBlackout
	}
	if q > QualityPerfect {
		return QualityPerfect
	}
	return q
}

// QualityBands are the response time limits for correct answers.
// An answer at or under Perfect scores 5, under Good 4, under Hesitant 3, anything slower 2.
type QualityBands struct {
	Perfect  time.Duration
	Good     time.Duration
	Hesitant time.Duration
}

// DefaultQualityBands returns the standard latency bands
func DefaultQualityBands() QualityBands {
	return QualityBands{
		Perfect:  2 * time.Second,
		Good:     5 * time.Second,
		Hesitant: 10 * time.Second,
	}
}

// Quality maps an attempt to a quality score. Wrong answers are always a full lapse.
func (b QualityBands) Quality(isCorrect bool, timeTaken time.Duration) Quality {
	if !isCorrect {
		return QualityBlackout
	}
	switch {
	case timeTaken <= b.Perfect:
		return QualityPerfect
	case timeTaken <= b.Good:
		return QualityCorrectHesitation
	case timeTaken <= b.Hesitant:
		return QualityCorrectDifficult
	default:
		return QualityCorrectSlow
	}
}

// CalculateQuality maps an attempt using the default bands
func CalculateQuality(isCorrect bool, timeTakenMs int) Quality {
	return DefaultQualityBands().Quality(isCorrect, time.Duration(timeTakenMs)*time.Millisecond)
}
