package practice

import "time"

// StreakLookbackDays bounds how far back completed sessions are read
const StreakLookbackDays = 365

// Streak counts consecutive calendar days, ending today or yesterday, on which
// at least one session was completed. Days are taken in loc.
func Streak(completions []time.Time, now time.Time, loc *time.Location) int {
	if len(completions) == 0 {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[time.Time]struct{}, len(completions))
	for _, t := range completions {
		days[calendarDay(t, loc)] = struct{}{}
	}

	day := calendarDay(now, loc)
	if _, ok := days[day]; !ok {
		// Yesterday still counts as an unbroken streak
		day = day.AddDate(0, 0, -1)
		if _, ok := days[day]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// calendarDay maps t to midnight UTC of its date in loc, so days compare with ==
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
