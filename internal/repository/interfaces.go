package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/cadence/pkg/entity"
)

type HabitsRepositoryI interface {
	// Creates new habit in database. Returns generated id
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Lists every habit owned by user with uid, for whole-account computations
	GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChecksRepositoryI interface {
	// Creates new check on habit with habitID
	Create(ctx context.Context, habitID uuid.UUID, day civil.Date) error
	// Deletes check on habit with habitID (uncheck)
	Delete(ctx context.Context, habitID uuid.UUID, day civil.Date) error
	// Inspects if check exists
	Exists(ctx context.Context, habitID uuid.UUID, day civil.Date) (bool, error)
	// Provides checks of habitID for a period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to civil.Date) ([]entity.HabitCheck, error)
	// Returns date of last check on habitID, nil when habit was never checked
	GetLastCheckDate(ctx context.Context, habitID uuid.UUID) (*civil.Date, error)
	// Returns count of checks for habitID
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
}

type TasksRepositoryI interface {
	// Creates new task in database. Returns generated id
	Create(ctx context.Context, task *entity.Task) (uuid.UUID, error)
	// Searches task with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists tasks owned by user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	// Flips task done flag and stamps completion time
	SetDone(ctx context.Context, id uuid.UUID, done bool) error
	// Deletes task with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
