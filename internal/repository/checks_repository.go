package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/dateutil"
	"github.com/limbo/cadence/pkg/entity"
)

type ChecksRepository struct {
	conn PgConnection
}

func NewChecksRepo(cfg DBConfig) *ChecksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for checksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChecksRepository{
		conn: pool,
	}
}

func NewChecksRepoWithConn(conn PgConnection) *ChecksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checksRepo: " + err.Error())
	}
	return &ChecksRepository{
		conn: conn,
	}
}

func (cr *ChecksRepository) Create(ctx context.Context, habitID uuid.UUID, day civil.Date) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO habit_checks (habit_id, check_date) VALUES ($1, $2);`,
		habitID,
		day.In(time.UTC),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrCheckExist
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating check error: " + err.Error())
	}
	return nil
}

func (cr *ChecksRepository) Delete(ctx context.Context, habitID uuid.UUID, day civil.Date) error {
	ct, err := cr.conn.Exec(
		ctx,
		`DELETE FROM habit_checks WHERE habit_id = $1 AND check_date = $2;`,
		habitID,
		day.In(time.UTC),
	)
	if err != nil {
		return errors.New("deleting check error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCheckNotFound
	}
	return nil
}

func (cr *ChecksRepository) Exists(ctx context.Context, habitID uuid.UUID, day civil.Date) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM habit_checks WHERE habit_id = $1 AND check_date = $2);`,
		habitID,
		day.In(time.UTC),
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if check exists error: " + err.Error())
	}
	return exists, nil
}

func (cr *ChecksRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to civil.Date) ([]entity.HabitCheck, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, habit_id, check_date, created_at FROM habit_checks
		WHERE habit_id = $1 AND check_date >= $2 AND check_date <= $3;`,
		habitID,
		from.In(time.UTC),
		to.In(time.UTC),
	)
	if err != nil {
		return nil, errors.New("getting checks for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitCheck, 0)
	for rows.Next() {
		check := entity.HabitCheck{}
		var checkDate time.Time
		err = rows.Scan(&check.ID, &check.HabitID, &checkDate, &check.CreatedAt)
		if err != nil {
			return nil, errors.New("check row parsing error: " + err.Error())
		}
		check.CheckDate = dateutil.FromTime(checkDate)
		result = append(result, check)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected check rows error: " + err.Error())
	}
	return result, nil
}

func (cr *ChecksRepository) GetLastCheckDate(ctx context.Context, habitID uuid.UUID) (*civil.Date, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT check_date FROM habit_checks WHERE habit_id = $1 ORDER BY check_date DESC LIMIT 1;`,
		habitID,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last check date error: " + err.Error())
	}
	day := dateutil.FromTime(date)
	return &day, nil
}

func (cr *ChecksRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM habit_checks WHERE habit_id = $1;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting checks: " + err.Error())
	}
	return count, nil
}
