package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/dateutil"
	"github.com/limbo/cadence/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.StartDate.In(time.UTC),
		habit.Frequency,
		habit.CustomDays,
		habit.Hashtags,
		habit.Color,
		habit.Icon,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrHabitExists
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	var startDate time.Time
	row := hr.conn.QueryRow(ctx,
		`SELECT user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon, created_at, updated_at
		FROM habits WHERE id = $1;`, id)
	err := row.Scan(
		&habit.UserID, &habit.Title, &habit.Description, &startDate, &habit.Frequency,
		&habit.CustomDays, &habit.Hashtags, &habit.Color, &habit.Icon, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	habit.StartDate = dateutil.FromTime(startDate)
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	return scanHabits(rows)
}

func (hr *HabitsRepository) GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting all habits by uid error: " + err.Error())
	}
	return scanHabits(rows)
}

func scanHabits(rows pgx.Rows) ([]*entity.Habit, error) {
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h := entity.Habit{}
		var startDate time.Time
		err := rows.Scan(
			&h.ID, &h.UserID, &h.Title, &h.Description, &startDate, &h.Frequency,
			&h.CustomDays, &h.Hashtags, &h.Color, &h.Icon, &h.CreatedAt, &h.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		h.StartDate = dateutil.FromTime(startDate)
		habits = append(habits, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx,
		`UPDATE habits SET title = $1, description = $2, start_date = $3, frequency = $4,
		custom_days = $5, hashtags = $6, color = $7, icon = $8, updated_at = NOW() WHERE id = $9;`,
		habit.Title, habit.Description, habit.StartDate.In(time.UTC), habit.Frequency,
		habit.CustomDays, habit.Hashtags, habit.Color, habit.Icon, habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
