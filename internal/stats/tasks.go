package stats

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/cadence/pkg/entity"
)

// TaskStats are plain filter-and-count aggregates over the task list;
// no recurrence is involved.
type TaskStats struct {
	Open               int `json:"open"`
	Overdue            int `json:"overdue"`
	CompletedToday     int `json:"completed_today"`
	CompletedThisWeek  int `json:"completed_this_week"`
	CompletedThisMonth int `json:"completed_this_month"`
}

func Tasks(tasks []*entity.Task, today civil.Date) TaskStats {
	week := WeekRange(today)
	month := MonthRange(today)
	var ts TaskStats
	for _, t := range tasks {
		if !t.Done {
			ts.Open++
			if t.Deadline.Before(today) {
				ts.Overdue++
			}
			continue
		}
		if t.CompletedAt == nil {
			continue
		}
		done := civil.DateOf(*t.CompletedAt)
		if done == today {
			ts.CompletedToday++
		}
		if inRange(done, week) {
			ts.CompletedThisWeek++
		}
		if inRange(done, month) {
			ts.CompletedThisMonth++
		}
	}
	return ts
}

func inRange(d civil.Date, r Range) bool {
	return !d.Before(r.From) && !d.After(r.To)
}
