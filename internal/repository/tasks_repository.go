package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/dateutil"
	"github.com/limbo/cadence/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for tasksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TasksRepository{
		conn: pool,
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (uuid.UUID, error) {
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, deadline) VALUES ($1, $2, $3) RETURNING id;`,
		task.UserID,
		task.Title,
		task.Deadline.In(time.UTC),
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	var deadline time.Time
	row := tr.conn.QueryRow(ctx,
		`SELECT user_id, title, deadline, done, completed_at, created_at FROM tasks WHERE id = $1;`, id)
	err := row.Scan(&task.UserID, &task.Title, &deadline, &task.Done, &task.CompletedAt, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	task.Deadline = dateutil.FromTime(deadline)
	return &task, nil
}

func (tr *TasksRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, user_id, title, deadline, done, completed_at, created_at
		FROM tasks WHERE user_id = $1 ORDER BY deadline;`, uid)
	if err != nil {
		return nil, errors.New("getting tasks by uid error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		var deadline time.Time
		err = rows.Scan(&t.ID, &t.UserID, &t.Title, &deadline, &t.Done, &t.CompletedAt, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		t.Deadline = dateutil.FromTime(deadline)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) SetDone(ctx context.Context, id uuid.UUID, done bool) error {
	ct, err := tr.conn.Exec(ctx,
		`UPDATE tasks SET done = $1, completed_at = CASE WHEN $1 THEN NOW() ELSE NULL END WHERE id = $2;`,
		done, id,
	)
	if err != nil {
		return errors.New("error updating task state: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
