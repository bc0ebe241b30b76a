package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var habitStartDate = civil.Date{Year: 2025, Month: time.January, Day: 1}

func testHabit(id, userID uuid.UUID) *entity.Habit {
	return &entity.Habit{
		ID:          id,
		UserID:      userID,
		Title:       "test_habit",
		Description: "test_description",
		StartDate:   habitStartDate,
		Frequency:   entity.FrequencyDaily,
		CustomDays:  []string{},
		Hashtags:    []string{"health"},
		Color:       "#00FF00",
		Icon:        "run",
	}
}

func TestCreateHabitRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon)`)
	habitID := uuid.New()
	userID := uuid.New()
	habit := testHabit(habitID, userID)
	args := []any{
		habit.UserID, habit.Title, habit.Description, habit.StartDate.In(time.UTC),
		habit.Frequency, habit.CustomDays, habit.Hashtags, habit.Color, habit.Icon,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(args...).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(habitID))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrHabitExists,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating habit db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(args...).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := habitsRepo.Create(ctx, habit)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, habitID, id)
			}
		})
	}
}

func TestGetHabitByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon, created_at, updated_at`)
	habitID := uuid.New()
	userID := uuid.New()
	habit := testHabit(habitID, userID)
	testCases := []struct {
		Desc         string
		Error        error
		Result       *entity.Habit
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Error:  nil,
			Result: habit,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(habitID).
					WillReturnRows(pgxmock.NewRows([]string{
						"user_id", "title", "description", "start_date", "frequency",
						"custom_days", "hashtags", "color", "icon", "created_at", "updated_at",
					}).AddRow(
						habit.UserID, habit.Title, habit.Description, habit.StartDate.In(time.UTC),
						habit.Frequency, habit.CustomDays, habit.Hashtags, habit.Color, habit.Icon,
						habit.CreatedAt, habit.UpdatedAt,
					))
			},
		},
		{
			Desc:  "habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(habitID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting habit by id error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(habitID).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := habitsRepo.GetByID(ctx, habitID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Result, result)
		})
	}
}

func TestGetHabitsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, title, description, start_date, frequency, custom_days, hashtags, color, icon, created_at, updated_at`)
	userID := uuid.New()
	habits := []*entity.Habit{
		testHabit(uuid.New(), userID),
		testHabit(uuid.New(), userID),
	}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []*entity.Habit
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Error:  nil,
			Result: habits,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{
					"id", "user_id", "title", "description", "start_date", "frequency",
					"custom_days", "hashtags", "color", "icon", "created_at", "updated_at",
				})
				for _, h := range habits {
					rows.AddRow(
						h.ID, h.UserID, h.Title, h.Description, h.StartDate.In(time.UTC),
						h.Frequency, h.CustomDays, h.Hashtags, h.Color, h.Icon,
						h.CreatedAt, h.UpdatedAt,
					)
				}
				mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnRows(rows)
			},
		},
		{
			Desc:   "no habits yields empty slice",
			Error:  nil,
			Result: []*entity.Habit{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnRows(pgxmock.NewRows([]string{
					"id", "user_id", "title", "description", "start_date", "frequency",
					"custom_days", "hashtags", "color", "icon", "created_at", "updated_at",
				}))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting habits by uid error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := habitsRepo.GetByUserID(ctx, userID, 10, 0)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Result, result)
		})
	}
}

func TestUpdateHabitRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE habits SET title = $1, description = $2, start_date = $3, frequency = $4,`)
	habit := testHabit(uuid.New(), uuid.New())
	args := []any{
		habit.Title, habit.Description, habit.StartDate.In(time.UTC), habit.Frequency,
		habit.CustomDays, habit.Hashtags, habit.Color, habit.Icon, habit.ID,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error updating habit: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := habitsRepo.Update(ctx, habit)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteHabitRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habitID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habitID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error deleting habit: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habitID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := habitsRepo.Delete(ctx, habitID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
