package domain

import (
	"sort"
	"time"
)

const (
	DefaultPostureScore = 60
	MaxPostureScore     = 100
	PostureScoreStep    = 2
	DaysPerWeek         = 7
)

type Stats struct {
	CurrentStreak  int              `json:"currentStreak"`
	PostureScore   int              `json:"postureScore"`
	WeeklyActivity [DaysPerWeek]int `json:"weeklyActivity"`
}

func DefaultStats() Stats {
	return Stats{PostureScore: DefaultPostureScore}
}

// civilDay returns midnight UTC of the calendar date t falls on in loc.
// Working on UTC midnights keeps day arithmetic exact across DST changes.
func civilDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func distinctDaysDesc(log []CompletedExercise, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, e := range log {
		day := civilDay(e.CompletedAt, loc)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}

func consecutive(later, earlier time.Time) bool {
	return later.Sub(earlier) == 24*time.Hour
}

// CalculateStreak counts the run of consecutive calendar days with at least
// one completion, ending today or yesterday. Completions after today are ignored.
func CalculateStreak(log []CompletedExercise, now time.Time, loc *time.Location) int {
	today := civilDay(now, loc)

	var days []time.Time
	for _, d := range distinctDaysDesc(log, loc) {
		if !d.After(today) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return 0
	}

	if latest := days[0]; !latest.Equal(today) && !consecutive(today, latest) {
		return 0
	}

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		if !consecutive(days[i], days[i+1]) {
			break
		}
		streak++
	}
	return streak
}

// CalculateLongestStreak returns the longest run of consecutive days anywhere in the log.
func CalculateLongestStreak(log []CompletedExercise, loc *time.Location) int {
	days := distinctDaysDesc(log, loc)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 0; i < len(days)-1; i++ {
		if consecutive(days[i], days[i+1]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CalculateWeeklyActivity marks, by weekday (0 = Sunday), every day of the
// trailing seven-day window ending today that has at least one completion.
func CalculateWeeklyActivity(log []CompletedExercise, now time.Time, loc *time.Location) [DaysPerWeek]int {
	var activity [DaysPerWeek]int

	today := civilDay(now, loc)
	windowStart := today.AddDate(0, 0, -(DaysPerWeek - 1))

	for _, e := range log {
		day := civilDay(e.CompletedAt, loc)
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		activity[day.Weekday()] = 1
	}
	return activity
}

// DeriveStats recomputes streak and weekly activity from the full log and
// carries the posture score over from prev.
func DeriveStats(log []CompletedExercise, prev Stats, now time.Time, loc *time.Location) Stats {
	return Stats{
		CurrentStreak:  CalculateStreak(log, now, loc),
		PostureScore:   ClampPostureScore(prev.PostureScore),
		WeeklyActivity: CalculateWeeklyActivity(log, now, loc),
	}
}

func ClampPostureScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > MaxPostureScore:
		return MaxPostureScore
	default:
		return score
	}
}

func PostureLabel(score int) string {
	switch {
	case score > 80:
		return "Excellent"
	case score > 60:
		return "Good"
	default:
		return "Needs Work"
	}
}

// CountTodayByCategory groups today's completions by category. Completions
// without a category count as "other".
func CountTodayByCategory(log []CompletedExercise, now time.Time, loc *time.Location) map[string]int {
	today := civilDay(now, loc)
	counts := make(map[string]int)
	for _, e := range log {
		if !civilDay(e.CompletedAt, loc).Equal(today) {
			continue
		}
		category := e.Category
		if category == "" {
			category = CategoryOther
		}
		counts[category]++
	}
	return counts
}
