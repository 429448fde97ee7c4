package practice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreak(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day := func(offset int, hour int) time.Time {
		return time.Date(2024, 3, 10+offset, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		completions []time.Time
		want        int
	}{
		{"no sessions", nil, 0},
		{"today only", []time.Time{day(0, 8)}, 1},
		{"yesterday only", []time.Time{day(-1, 20)}, 1},
		{"today and yesterday", []time.Time{day(0, 8), day(-1, 8)}, 2},
		{"two days ago only", []time.Time{day(-2, 8)}, 0},
		{"gap breaks the run", []time.Time{day(0, 8), day(-1, 8), day(-3, 8), day(-4, 8)}, 2},
		{"several per day", []time.Time{day(0, 8), day(0, 9), day(-1, 23), day(-2, 0)}, 3},
		{"unordered input", []time.Time{day(-2, 8), day(0, 8), day(-1, 8)}, 3},
		{"older run is ignored", []time.Time{day(-1, 8), day(-9, 8), day(-10, 8)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.completions, now, time.UTC))
		})
	}
}

func TestStreakCrossesMonth(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, Streak(completions, now, time.UTC))
}

func TestStreakUsesLocation(t *testing.T) {
	athens := time.FixedZone("EET", 2*60*60)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	// 23:00 UTC on the 8th is already the 9th in Athens
	completions := []time.Time{time.Date(2024, 3, 8, 23, 0, 0, 0, time.UTC)}

	assert.Equal(t, 0, Streak(completions, now, time.UTC))
	assert.Equal(t, 1, Streak(completions, now, athens))
}
