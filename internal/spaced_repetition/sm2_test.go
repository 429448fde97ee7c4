package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestCalculateLapseResetsInterval(t *testing.T) {
	sm := NewSM2()
	for _, q := range []Quality{QualityBlackout, QualityIncorrect, QualityCorrectSlow} {
		for _, interval := range []int{1, 6, 15, 120} {
			res := sm.Calculate(q, 2.5, interval, 7, fixedNow)
			assert.Equal(t, 1, res.IntervalDays, "quality %d interval %d", q, interval)
			assert.Equal(t, fixedNow.AddDate(0, 0, 1), res.NextReviewAt)
		}
	}
}

func TestCalculateEarlyIntervals(t *testing.T) {
	sm := NewSM2()
	for _, q := range []Quality{QualityCorrectDifficult, QualityCorrectHesitation, QualityPerfect} {
		first := sm.Calculate(q, DefaultEaseFactor, 1, 0, fixedNow)
		assert.Equal(t, 1, first.IntervalDays, "quality %d first review", q)

		second := sm.Calculate(q, first.EaseFactor, first.IntervalDays, 1, fixedNow)
		assert.Equal(t, 6, second.IntervalDays, "quality %d second review", q)
	}
}

func TestCalculateGrowsByEaseFactor(t *testing.T) {
	sm := NewSM2()

	res := sm.Calculate(QualityPerfect, 2.5, 6, 2, fixedNow)

	assert.InDelta(t, 2.6, res.EaseFactor, 1e-9)
	assert.Equal(t, 16, res.IntervalDays) // round(6 * 2.6) = 15.6 -> 16
	assert.Equal(t, fixedNow.AddDate(0, 0, 16), res.NextReviewAt)
}

func TestEaseFactorUpdate(t *testing.T) {
	tests := []struct {
		quality Quality
		delta   float64
	}{
		{QualityPerfect, 0.10},
		{QualityCorrectHesitation, 0.0},
		{QualityCorrectDifficult, -0.14},
		{QualityCorrectSlow, -0.32},
		{QualityIncorrect, -0.54},
		{QualityBlackout, -0.80},
	}
	for _, tt := range tests {
		res := NewSM2().Calculate(tt.quality, 2.5, 1, 3, fixedNow)
		want := 2.5 + tt.delta
		if want < MinEaseFactor {
			want = MinEaseFactor
		}
		assert.InDelta(t, want, res.EaseFactor, 1e-9, "quality %d", tt.quality)
	}
}

func TestEaseFactorNeverBelowFloor(t *testing.T) {
	sm := NewSM2()
	ef := DefaultEaseFactor
	interval := 1
	for i := 0; i < 50; i++ {
		res := sm.Calculate(QualityBlackout, ef, interval, i, fixedNow)
		require.GreaterOrEqual(t, res.EaseFactor, MinEaseFactor)
		ef, interval = res.EaseFactor, res.IntervalDays
	}
	assert.Equal(t, MinEaseFactor, ef)

	// Mixed sequence
	for i, q := range []Quality{5, 0, 3, 0, 0, 2, 4, 1, 0, 3} {
		res := sm.Calculate(q, ef, interval, i, fixedNow)
		require.GreaterOrEqual(t, res.EaseFactor, MinEaseFactor)
		ef, interval = res.EaseFactor, res.IntervalDays
	}
}

func TestCalculateClampsInputs(t *testing.T) {
	sm := NewSM2()

	res := sm.Calculate(Quality(9), 2.5, 0, 0, fixedNow)
	assert.Equal(t, 1, res.IntervalDays)
	assert.InDelta(t, 2.6, res.EaseFactor, 1e-9)

	res = sm.Calculate(Quality(-4), 0, -3, 5, fixedNow)
	assert.Equal(t, 1, res.IntervalDays)
	assert.Equal(t, MinEaseFactor, res.EaseFactor)
}

func TestCalculateMaxInterval(t *testing.T) {
	sm := NewSM2()
	sm.MaxInterval = 30

	res := sm.Calculate(QualityPerfect, 2.5, 100, 10, fixedNow)
	assert.Equal(t, 30, res.IntervalDays)

	sm.MaxInterval = 0
	res = sm.Calculate(QualityPerfect, 2.5, 100, 10, fixedNow)
	assert.Equal(t, 260, res.IntervalDays)
}

func TestCalculateIsDeterministic(t *testing.T) {
	sm := NewSM2()
	a := sm.Calculate(QualityCorrectHesitation, 2.1, 9, 4, fixedNow)
	b := sm.Calculate(QualityCorrectHesitation, 2.1, 9, 4, fixedNow)
	assert.Equal(t, a, b)
}

func TestIsMastered(t *testing.T) {
	assert.False(t, IsMastered(20))
	assert.True(t, IsMastered(21))
	assert.True(t, IsMastered(90))
}
