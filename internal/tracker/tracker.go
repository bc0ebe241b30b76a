// Package tracker holds the sparse in-memory completion record the
// streak and stats engines read. A missing entry means "not completed",
// so every lookup is total and consumers never null-check.
package tracker

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/cadence/pkg/entity"
)

// DefaultRewardDelta is the point magnitude emitted on each toggle.
const DefaultRewardDelta = 10

// Source is the read side consumed by the streak and stats engines.
type Source interface {
	IsCompleted(habitID uuid.UUID, day civil.Date) bool
}

// RewardSink receives a +delta when a completion flips on and a -delta
// when it flips back off.
type RewardSink interface {
	Award(ctx context.Context, habitID uuid.UUID, delta int) error
}

// NopSink discards reward deltas. Used in tests and snapshot-only records.
type NopSink struct{}

func (NopSink) Award(ctx context.Context, habitID uuid.UUID, delta int) error {
	return nil
}

type Record struct {
	days  map[uuid.UUID]map[civil.Date]bool
	sink  RewardSink
	delta int
}

func NewRecord(sink RewardSink, delta int) *Record {
	if sink == nil {
		sink = NopSink{}
	}
	if delta <= 0 {
		delta = DefaultRewardDelta
	}
	return &Record{
		days:  make(map[uuid.UUID]map[civil.Date]bool),
		sink:  sink,
		delta: delta,
	}
}

// FromChecks builds a read-only snapshot record out of persisted check rows.
func FromChecks(checks []entity.HabitCheck) *Record {
	rec := NewRecord(NopSink{}, DefaultRewardDelta)
	for _, c := range checks {
		rec.Mark(c.HabitID, c.CheckDate, true)
	}
	return rec
}

// Toggle flips the completion flag for (habitID, day) and reports the new
// value. The reward sink receives the matching delta; a sink failure does
// not undo the flip.
func (rec *Record) Toggle(ctx context.Context, habitID uuid.UUID, day civil.Date) (bool, error) {
	next := !rec.IsCompleted(habitID, day)
	rec.Mark(habitID, day, next)
	delta := rec.delta
	if !next {
		delta = -delta
	}
	if err := rec.sink.Award(ctx, habitID, delta); err != nil {
		return next, err
	}
	return next, nil
}

func (rec *Record) IsCompleted(habitID uuid.UUID, day civil.Date) bool {
	return rec.days[habitID][day]
}

// Mark sets the flag directly without touching the reward sink.
func (rec *Record) Mark(habitID uuid.UUID, day civil.Date, done bool) {
	byDay, ok := rec.days[habitID]
	if !ok {
		byDay = make(map[civil.Date]bool)
		rec.days[habitID] = byDay
	}
	if done {
		byDay[day] = true
	} else {
		delete(byDay, day)
	}
}
