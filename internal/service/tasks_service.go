package service

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/stats"
	"github.com/limbo/cadence/pkg/entity"
)

type TasksService struct {
	repo repository.TasksRepositoryI
	now  func() time.Time
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, now func() time.Time) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	if now == nil {
		now = time.Now
	}
	return &TasksService{
		repo: tasksRepo,
		now:  now,
	}
}

func (ts *TasksService) CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	t := entity.Task{
		UserID:   uid,
		Title:    req.Title,
		Deadline: req.Deadline,
	}
	id, err := ts.repo.Create(ctx, &t)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	task, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) GetUserTasks(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	tasks, err := ts.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) SetTaskDone(ctx context.Context, taskID, userID uuid.UUID, done bool) error {
	task, err := ts.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	if task.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = ts.repo.SetDone(ctx, taskID, done)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	task, err := ts.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	if task.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = ts.repo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) GetTaskStats(ctx context.Context, uid uuid.UUID) (*stats.TaskStats, error) {
	tasks, err := ts.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	taskStats := stats.Tasks(tasks, civil.DateOf(ts.now()))
	return &taskStats, nil
}
