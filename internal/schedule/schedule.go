// Package schedule decides on which calendar dates a habit is due.
package schedule

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/limbo/cadence/pkg/dateutil"
	"github.com/limbo/cadence/pkg/entity"
)

// IsDue reports whether the habit is scheduled to occur on day.
// A habit is never due before its start date. A custom habit with an
// empty day set, or an unknown frequency value, is never due.
func IsDue(h *entity.Habit, day civil.Date) bool {
	if day.Before(h.StartDate) {
		return false
	}
	switch h.Frequency {
	case entity.FrequencyDaily:
		return true
	case entity.FrequencyWeekly:
		// Weekly habits fire on Mondays regardless of the start weekday.
		return dateutil.Weekday(day) == time.Monday
	case entity.FrequencyCustom:
		return slices.Contains(h.CustomDays, dateutil.DayLabel(day))
	default:
		return false
	}
}

// DueOn filters habits down to those due on day. When tag is non-empty
// only habits carrying that hashtag are kept.
func DueOn(habits []*entity.Habit, day civil.Date, tag string) []*entity.Habit {
	due := make([]*entity.Habit, 0, len(habits))
	for _, h := range habits {
		if !IsDue(h, day) {
			continue
		}
		if tag != "" && !slices.Contains(h.Hashtags, tag) {
			continue
		}
		due = append(due, h)
	}
	return due
}
