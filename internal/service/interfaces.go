package service

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/cadence/internal/stats"
	"github.com/limbo/cadence/pkg/entity"
)

type CreateHabitRequest struct {
	Title       string           `validate:"required,min=1,max=200"`
	Description string           `validate:"max=1000"`
	StartDate   civil.Date       `validate:"required"`
	Frequency   entity.Frequency `validate:"required,oneof=daily weekly custom"`
	CustomDays  []string         `validate:"required_if=Frequency custom,dive,daylabel"`
	Hashtags    []string
	Color       string
	Icon        string
}

// UpdateHabitRequest carries partial field replacement: nil means "keep".
type UpdateHabitRequest struct {
	Title       *string
	Description *string
	StartDate   *civil.Date
	Frequency   *entity.Frequency
	CustomDays  *[]string
	Hashtags    *[]string
	Color       *string
	Icon        *string
}

type CreateTaskRequest struct {
	Title    string     `validate:"required,min=1,max=200"`
	Deadline civil.Date `validate:"required"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type HabitsServiceI interface {
	// Validates the request and creates the habit. Returns habit with assigned ID
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	// Lists habits due on day, optionally narrowed to one hashtag
	GetDueHabits(ctx context.Context, uid uuid.UUID, day civil.Date, tag string) ([]*entity.Habit, error)
	// Applies non-nil request fields onto the stored habit
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type ChecksServiceI interface {
	// Flips completion of (habit, day) and reports the new state.
	// Future days are rejected; the reward sink gets the matching delta
	ToggleCheck(ctx context.Context, habitID, userID uuid.UUID, day civil.Date) (bool, error)
	GetChecks(ctx context.Context, habitID, userID uuid.UUID, from, to civil.Date) ([]entity.HabitCheck, error)
}

type Summary struct {
	Range       stats.Range         `json:"range"`
	PerfectDays int                 `json:"perfect_days"`
	TopStreaks  []stats.StreakEntry `json:"top_streaks"`
	Best        *stats.HabitRate    `json:"best,omitempty"`
	Worst       *stats.HabitRate    `json:"worst,omitempty"`
}

type StatsServiceI interface {
	// Recomputes streaks and period completion rates for one habit
	GetHabitStats(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitStats, error)
	// Cross-habit aggregates over the current week or month
	GetSummary(ctx context.Context, uid uuid.UUID, period string) (*Summary, error)
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	GetUserTasks(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	SetTaskDone(ctx context.Context, taskID, userID uuid.UUID, done bool) error
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
	GetTaskStats(ctx context.Context, uid uuid.UUID) (*stats.TaskStats, error)
}

// StatsCache memoizes computed stats keyed by habit, date and completion
// version. Implementations must be safe to skip: every method may fail
// without affecting correctness.
type StatsCache interface {
	// Get returns the cached payload or nil on miss
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Version returns the current completion version of the habit
	Version(ctx context.Context, habitID uuid.UUID) (int64, error)
	// Bump invalidates cached stats after a toggle
	Bump(ctx context.Context, habitID uuid.UUID) error
}
