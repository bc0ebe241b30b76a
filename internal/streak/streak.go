// Package streak computes consecutive-completion runs for a habit over
// a completion record, with due-day filtering from the schedule package.
package streak

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/cadence/internal/schedule"
	"github.com/limbo/cadence/internal/tracker"
	"github.com/limbo/cadence/pkg/entity"
)

const (
	// maxWalkDays bounds the backward walk so corrupt start dates can
	// never hang a request. Hitting the bound returns the count so far.
	maxWalkDays = 1000

	// DefaultWindowDays is the trailing window scanned by Longest when
	// the caller passes no explicit window.
	DefaultWindowDays = 365
)

// Current counts consecutive due-and-completed days walking backward
// from today. An unfinished "today" does not break the run: the user
// still has the rest of the day, so the walk starts at yesterday
// instead. Any earlier due day left incomplete ends the run.
func Current(h *entity.Habit, rec tracker.Source, today civil.Date) int {
	if h.StartDate.After(today) {
		return 0
	}
	cursor := today
	if schedule.IsDue(h, cursor) && !rec.IsCompleted(h.ID, cursor) {
		cursor = cursor.AddDays(-1)
	}
	count := 0
	for i := 0; i < maxWalkDays; i++ {
		if cursor.Before(h.StartDate) {
			break
		}
		if schedule.IsDue(h, cursor) {
			if !rec.IsCompleted(h.ID, cursor) {
				break
			}
			count++
		}
		cursor = cursor.AddDays(-1)
	}
	return count
}

// Longest returns the best run of consecutive due-and-completed days in
// the trailing window of windowDays ending today. windowDays <= 0 scans
// the habit's whole lifetime. Non-due days neither extend nor reset a run.
func Longest(h *entity.Habit, rec tracker.Source, today civil.Date, windowDays int) int {
	if h.StartDate.After(today) {
		return 0
	}
	from := h.StartDate
	if windowDays > 0 {
		if start := today.AddDays(-(windowDays - 1)); start.After(from) {
			from = start
		}
	}
	running, best := 0, 0
	for day := from; !day.After(today); day = day.AddDays(1) {
		if !schedule.IsDue(h, day) {
			continue
		}
		if !rec.IsCompleted(h.ID, day) {
			running = 0
			continue
		}
		running++
		if running > best {
			best = running
		}
	}
	return best
}
