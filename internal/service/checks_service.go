package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/tracker"
	"github.com/limbo/cadence/pkg/entity"
)

type ChecksService struct {
	habitsRepo  repository.HabitsRepositoryI
	checksRepo  repository.ChecksRepositoryI
	sink        tracker.RewardSink
	cache       StatsCache
	rewardDelta int
	now         func() time.Time
}

func NewChecksService(habitsRepo repository.HabitsRepositoryI, checksRepo repository.ChecksRepositoryI, sink tracker.RewardSink, cache StatsCache, now func() time.Time) *ChecksService {
	if habitsRepo == nil || checksRepo == nil {
		log.Fatal("on checks service provided nil repos")
	}
	if sink == nil {
		sink = tracker.NopSink{}
	}
	if now == nil {
		now = time.Now
	}
	return &ChecksService{
		habitsRepo:  habitsRepo,
		checksRepo:  checksRepo,
		sink:        sink,
		cache:       cache,
		rewardDelta: tracker.DefaultRewardDelta,
		now:         now,
	}
}

// ToggleCheck flips the completion of (habit, day). A set flag is
// removed, an absent one is created. The reward sink and the stats cache
// are notified best-effort: their failures never undo the flip.
func (serv *ChecksService) ToggleCheck(ctx context.Context, habitID, userID uuid.UUID, day civil.Date) (bool, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return false, errorvalues.ErrWrongOwner
	}
	if day.After(civil.DateOf(serv.now())) {
		return false, errorvalues.ErrCheckDateNotAllowed
	}
	exist, err := serv.checksRepo.Exists(ctx, habitID, day)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	delta := serv.rewardDelta
	if exist {
		if err := serv.checksRepo.Delete(ctx, habitID, day); err != nil {
			return false, errors.New("repository error: " + err.Error())
		}
		delta = -delta
	} else {
		if err := serv.checksRepo.Create(ctx, habitID, day); err != nil {
			return false, errors.New("repository error: " + err.Error())
		}
	}
	if err := serv.sink.Award(ctx, habitID, delta); err != nil {
		slog.Warn("reward sink failed", slog.String("habit_id", habitID.String()), slog.String("error", err.Error()))
	}
	if serv.cache != nil {
		if err := serv.cache.Bump(ctx, habitID); err != nil {
			slog.Warn("stats cache bump failed", slog.String("habit_id", habitID.String()), slog.String("error", err.Error()))
		}
	}
	return !exist, nil
}

func (serv *ChecksService) GetChecks(ctx context.Context, habitID, userID uuid.UUID, from, to civil.Date) ([]entity.HabitCheck, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	checks, err := serv.checksRepo.GetByHabitAndDateRange(ctx, habitID, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return checks, nil
}
