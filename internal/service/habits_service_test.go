package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/repository/mocks"
	"github.com/limbo/cadence/internal/service"
	"github.com/limbo/cadence/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

var testStartDate = civil.Date{Year: 2025, Month: time.January, Day: 1}

func TestCreateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)

	userID := uuid.New()
	habitID := uuid.New()
	storedHabit := &entity.Habit{
		ID:        habitID,
		UserID:    userID,
		Title:     "test_habit",
		StartDate: testStartDate,
		Frequency: entity.FrequencyDaily,
	}
	testCases := []struct {
		Desc         string
		Request      *service.CreateHabitRequest
		WantErr      bool
		MockPrepFunc func()
	}{
		{
			Desc: "success daily habit",
			Request: &service.CreateHabitRequest{
				Title:     "test_habit",
				StartDate: testStartDate,
				Frequency: entity.FrequencyDaily,
			},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(habitID, nil)
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(storedHabit, nil)
			},
		},
		{
			Desc: "success custom habit with day labels",
			Request: &service.CreateHabitRequest{
				Title:      "test_habit",
				StartDate:  testStartDate,
				Frequency:  entity.FrequencyCustom,
				CustomDays: []string{"Pon", "Czw"},
			},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(habitID, nil)
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(storedHabit, nil)
			},
		},
		{
			Desc: "validation error on empty title",
			Request: &service.CreateHabitRequest{
				StartDate: testStartDate,
				Frequency: entity.FrequencyDaily,
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "validation error on unknown frequency",
			Request: &service.CreateHabitRequest{
				Title:     "test_habit",
				StartDate: testStartDate,
				Frequency: entity.Frequency("hourly"),
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "validation error on custom habit without days",
			Request: &service.CreateHabitRequest{
				Title:     "test_habit",
				StartDate: testStartDate,
				Frequency: entity.FrequencyCustom,
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "validation error on unknown day label",
			Request: &service.CreateHabitRequest{
				Title:      "test_habit",
				StartDate:  testStartDate,
				Frequency:  entity.FrequencyCustom,
				CustomDays: []string{"Monday"},
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			habit, err := serv.CreateHabit(ctx, userID, tc.Request)
			if tc.WantErr {
				assert.Error(t, err)
				assert.Nil(t, habit)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, storedHabit, habit)
		})
	}
}

func TestGetHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)

	userID := uuid.New()
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: userID,
				}, nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: uuid.New(),
				}, nil)
			},
		},
		{
			Desc:  "error habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.GetHabit(ctx, habitID, userID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestGetDueHabits(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)

	userID := uuid.New()
	daily := &entity.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: testStartDate,
		Frequency: entity.FrequencyDaily,
		Hashtags:  []string{"health"},
	}
	weekly := &entity.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: testStartDate,
		Frequency: entity.FrequencyWeekly,
	}
	habitsRepo.EXPECT().
		GetAllByUserID(gomock.Any(), userID).
		Return([]*entity.Habit{daily, weekly}, nil).
		Times(3)

	ctx := context.Background()
	// Thursday: only the daily habit fires
	thursday := civil.Date{Year: 2025, Month: time.January, Day: 9}
	due, err := serv.GetDueHabits(ctx, userID, thursday, "")
	require.NoError(t, err)
	assert.Equal(t, []*entity.Habit{daily}, due)

	// Monday: both fire
	monday := civil.Date{Year: 2025, Month: time.January, Day: 6}
	due, err = serv.GetDueHabits(ctx, userID, monday, "")
	require.NoError(t, err)
	assert.Len(t, due, 2)

	// hashtag filter narrows the Monday list
	due, err = serv.GetDueHabits(ctx, userID, monday, "health")
	require.NoError(t, err)
	assert.Equal(t, []*entity.Habit{daily}, due)
}

func TestUpdateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)

	userID := uuid.New()
	habitID := uuid.New()
	newTitle := "renamed"
	customFreq := entity.FrequencyCustom

	t.Run("success patching title", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:        habitID,
			UserID:    userID,
			Title:     "old",
			Frequency: entity.FrequencyDaily,
		}, nil)
		habitsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		habit, err := serv.UpdateHabit(context.Background(), habitID, userID, &service.UpdateHabitRequest{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, newTitle, habit.Title)
		assert.Equal(t, entity.FrequencyDaily, habit.Frequency)
	})

	t.Run("error switching to custom without days", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:        habitID,
			UserID:    userID,
			Frequency: entity.FrequencyDaily,
		}, nil)

		_, err := serv.UpdateHabit(context.Background(), habitID, userID, &service.UpdateHabitRequest{Frequency: &customFreq})
		assert.ErrorContains(t, err, "validation error")
	})

	t.Run("error wrong owner", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: uuid.New(),
		}, nil)

		_, err := serv.UpdateHabit(context.Background(), habitID, userID, &service.UpdateHabitRequest{Title: &newTitle})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestDeleteHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)

	userID := uuid.New()
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: userID,
				}, nil)
				habitsRepo.EXPECT().Delete(gomock.Any(), habitID).Return(nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: uuid.New(),
				}, nil)
			},
		},
		{
			Desc:  "error habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteHabit(ctx, habitID, userID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}
