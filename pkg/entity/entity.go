package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

type Habit struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	StartDate   civil.Date `json:"start_date"`
	Frequency   Frequency  `json:"frequency"`
	// Mon-first day labels, meaningful only for FrequencyCustom
	CustomDays []string  `json:"custom_days,omitempty"`
	Hashtags   []string  `json:"hashtags,omitempty"`
	Color      string    `json:"color,omitempty"`
	Icon       string    `json:"icon,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type HabitCheck struct {
	ID        int        `json:"id"`
	HabitID   uuid.UUID  `json:"habit_id"`
	CheckDate civil.Date `json:"check_date"`
	CreatedAt time.Time  `json:"created_at"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Deadline    civil.Date `json:"deadline"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type HabitStats struct {
	ID            uuid.UUID  `json:"habit_id"`
	TotalChecks   int        `json:"total_checks"`
	CurrentStreak int        `json:"current_streak"`
	MaxStreak     int        `json:"max_streak"`
	DayRate       int        `json:"day_rate"`
	WeekRate      int        `json:"week_rate"`
	MonthRate     int        `json:"month_rate"`
	AllTimeRate   int        `json:"all_time_rate"`
	LastCheck     civil.Date `json:"last_check"`
}
