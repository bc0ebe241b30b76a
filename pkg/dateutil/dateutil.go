// Package dateutil provides weekday labels and range helpers over
// timezone-free calendar dates. All date math in the project goes through
// civil.Date; time.Time appears only at storage and clock boundaries.
package dateutil

import (
	"time"

	"cloud.google.com/go/civil"
)

// Mon-first day labels, matching the labels stored in habit custom-day sets.
var dayLabels = [7]string{"Pon", "Wt", "Śr", "Czw", "Pt", "Sob", "Nd"}

func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// DayLabel returns the Mon-first label for the date's weekday.
func DayLabel(d civil.Date) string {
	return dayLabels[mondayIndex(Weekday(d))]
}

// IsDayLabel reports whether s is one of the seven recognized labels.
func IsDayLabel(s string) bool {
	for _, l := range dayLabels {
		if l == s {
			return true
		}
	}
	return false
}

func DayLabels() []string {
	return dayLabels[:]
}

// WeekStart returns the Monday of the calendar week containing d.
func WeekStart(d civil.Date) civil.Date {
	return d.AddDays(-mondayIndex(Weekday(d)))
}

// WeekEnd returns the Sunday of the calendar week containing d.
func WeekEnd(d civil.Date) civil.Date {
	return WeekStart(d).AddDays(6)
}

func MonthStart(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

func MonthEnd(d civil.Date) civil.Date {
	// day 0 of the next month normalizes to the last day of this month
	return civil.DateOf(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates a wall-clock instant to its local calendar date.
func FromTime(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// mondayIndex maps time.Weekday (Sunday = 0) to a Mon-first index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
