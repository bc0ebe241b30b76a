package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/stats"
	"github.com/limbo/cadence/internal/streak"
	"github.com/limbo/cadence/internal/tracker"
	"github.com/limbo/cadence/pkg/entity"
)

const (
	statsCacheTTL      = 5 * time.Minute
	topStreaksLimit    = 3
	SummaryPeriodWeek  = "week"
	SummaryPeriodMonth = "month"
)

type StatsService struct {
	habitsRepo repository.HabitsRepositoryI
	checksRepo repository.ChecksRepositoryI
	cache      StatsCache
	now        func() time.Time
}

func NewStatsService(habitsRepo repository.HabitsRepositoryI, checksRepo repository.ChecksRepositoryI, cache StatsCache, now func() time.Time) *StatsService {
	if habitsRepo == nil || checksRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{
		habitsRepo: habitsRepo,
		checksRepo: checksRepo,
		cache:      cache,
		now:        now,
	}
}

// GetHabitStats recomputes streaks and period completion rates for the
// habit from its full check history. Results are memoized per
// (habit, today, completion version) when a cache is wired.
func (ss *StatsService) GetHabitStats(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitStats, error) {
	habit, err := ss.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	today := civil.DateOf(ss.now())

	key := ""
	if ss.cache != nil {
		ver, err := ss.cache.Version(ctx, habitID)
		if err != nil {
			slog.Warn("stats cache version failed", slog.String("error", err.Error()))
		} else {
			key = fmt.Sprintf("habit_stats:%s:%s:%d", habitID, today, ver)
			if cached, err := ss.cache.Get(ctx, key); err == nil && cached != nil {
				var st entity.HabitStats
				if err := sonic.Unmarshal(cached, &st); err == nil {
					return &st, nil
				}
			}
		}
	}

	checks, err := ss.checksRepo.GetByHabitAndDateRange(ctx, habitID, habit.StartDate, today)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	rec := tracker.FromChecks(checks)
	st := &entity.HabitStats{
		ID:            habit.ID,
		TotalChecks:   len(checks),
		CurrentStreak: streak.Current(habit, rec, today),
		MaxStreak:     streak.Longest(habit, rec, today, 0),
		DayRate:       stats.CompletionRate(habit, rec, stats.DayRange(today)),
		WeekRate:      stats.CompletionRate(habit, rec, stats.WeekRange(today)),
		MonthRate:     stats.CompletionRate(habit, rec, stats.MonthRange(today)),
		AllTimeRate:   stats.CompletionRate(habit, rec, stats.AllTimeRange(habit, today)),
	}
	lastCheck, err := ss.checksRepo.GetLastCheckDate(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if lastCheck != nil {
		st.LastCheck = *lastCheck
	}

	if ss.cache != nil && key != "" {
		if payload, err := sonic.Marshal(st); err == nil {
			if err := ss.cache.Set(ctx, key, payload, statsCacheTTL); err != nil {
				slog.Warn("stats cache set failed", slog.String("error", err.Error()))
			}
		}
	}
	return st, nil
}

// GetSummary computes cross-habit aggregates for the calendar week or
// month containing today. Unknown periods default to the week view.
func (ss *StatsService) GetSummary(ctx context.Context, uid uuid.UUID, period string) (*Summary, error) {
	habits, err := ss.habitsRepo.GetAllByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	today := civil.DateOf(ss.now())
	r := stats.WeekRange(today)
	if period == SummaryPeriodMonth {
		r = stats.MonthRange(today)
	}
	rec := tracker.NewRecord(nil, 0)
	for _, h := range habits {
		checks, err := ss.checksRepo.GetByHabitAndDateRange(ctx, h.ID, h.StartDate, today)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		for _, c := range checks {
			rec.Mark(c.HabitID, c.CheckDate, true)
		}
	}
	return &Summary{
		Range:       r,
		PerfectDays: stats.PerfectDays(habits, rec, r),
		TopStreaks:  stats.TopStreaks(habits, rec, today, topStreaksLimit),
		Best:        stats.BestHabit(habits, rec, r),
		Worst:       stats.WorstHabit(habits, rec, r),
	}, nil
}
