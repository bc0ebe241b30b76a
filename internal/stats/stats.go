// Package stats derives completion-rate and cross-habit aggregates from
// the schedule and tracker building blocks. Every query recomputes from
// scratch over its inputs; nothing here caches.
package stats

import (
	"math"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/limbo/cadence/internal/schedule"
	"github.com/limbo/cadence/internal/streak"
	"github.com/limbo/cadence/internal/tracker"
	"github.com/limbo/cadence/pkg/dateutil"
	"github.com/limbo/cadence/pkg/entity"
)

// Range is an inclusive span of calendar dates.
type Range struct {
	From civil.Date `json:"from"`
	To   civil.Date `json:"to"`
}

func DayRange(today civil.Date) Range {
	return Range{From: today, To: today}
}

// WeekRange spans the Mon-Sun calendar week containing today.
func WeekRange(today civil.Date) Range {
	return Range{From: dateutil.WeekStart(today), To: dateutil.WeekEnd(today)}
}

func MonthRange(today civil.Date) Range {
	return Range{From: dateutil.MonthStart(today), To: dateutil.MonthEnd(today)}
}

func AllTimeRange(h *entity.Habit, today civil.Date) Range {
	return Range{From: h.StartDate, To: today}
}

// CompletionRate returns the rounded percentage of due days inside r the
// habit was completed on. A range with no due days yields 0.
func CompletionRate(h *entity.Habit, rec tracker.Source, r Range) int {
	total, completed := dueCounts(h, rec, r)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func dueCounts(h *entity.Habit, rec tracker.Source, r Range) (total, completed int) {
	for day := r.From; !day.After(r.To); day = day.AddDays(1) {
		if !schedule.IsDue(h, day) {
			continue
		}
		total++
		if rec.IsCompleted(h.ID, day) {
			completed++
		}
	}
	return total, completed
}

// PerfectDays counts the dates in r on which at least one habit was due
// and every due habit was completed. A day with nothing due is skipped,
// not counted as perfect.
func PerfectDays(habits []*entity.Habit, rec tracker.Source, r Range) int {
	perfect := 0
	for day := r.From; !day.After(r.To); day = day.AddDays(1) {
		due := 0
		allDone := true
		for _, h := range habits {
			if !schedule.IsDue(h, day) {
				continue
			}
			due++
			if !rec.IsCompleted(h.ID, day) {
				allDone = false
				break
			}
		}
		if due > 0 && allDone {
			perfect++
		}
	}
	return perfect
}

type StreakEntry struct {
	Habit  *entity.Habit `json:"habit"`
	Streak int           `json:"streak"`
}

// TopStreaks returns up to n habits with the highest positive current
// streaks, best first.
func TopStreaks(habits []*entity.Habit, rec tracker.Source, today civil.Date, n int) []StreakEntry {
	entries := make([]StreakEntry, 0, len(habits))
	for _, h := range habits {
		if s := streak.Current(h, rec, today); s > 0 {
			entries = append(entries, StreakEntry{Habit: h, Streak: s})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Streak > entries[j].Streak
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

type HabitRate struct {
	Habit *entity.Habit `json:"habit"`
	Rate  int           `json:"rate"`
}

// BestHabit returns the habit with the highest completion rate over r.
// Habits with no due days inside r are excluded; nil when none qualify.
func BestHabit(habits []*entity.Habit, rec tracker.Source, r Range) *HabitRate {
	return pickHabit(habits, rec, r, func(candidate, current int) bool {
		return candidate > current
	})
}

// WorstHabit is the mirror of BestHabit for the lowest rate.
func WorstHabit(habits []*entity.Habit, rec tracker.Source, r Range) *HabitRate {
	return pickHabit(habits, rec, r, func(candidate, current int) bool {
		return candidate < current
	})
}

func pickHabit(habits []*entity.Habit, rec tracker.Source, r Range, better func(candidate, current int) bool) *HabitRate {
	var pick *HabitRate
	for _, h := range habits {
		total, completed := dueCounts(h, rec, r)
		if total == 0 {
			continue
		}
		rate := int(math.Round(100 * float64(completed) / float64(total)))
		if pick == nil || better(rate, pick.Rate) {
			pick = &HabitRate{Habit: h, Rate: rate}
		}
	}
	return pick
}
