// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package nutrition tracks daily consumed macros against user goals.
package nutrition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/wandb/parallel"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

var (
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrNegativeValue = errors.New("values must not be negative")
)

// Store persists nutrition data.
type Store interface {
	// Load returns the goals and daily consumed totals of a user.
	Load(ctx context.Context, uid string) (peakplatesdb.Goals, map[string]peakplatesdb.Macros, error)

	// SaveDay overwrites the consumed totals of one day.
	SaveDay(ctx context.Context, uid string, date string, totals peakplatesdb.Macros) error

	// SaveGoals overwrites the goals of a user.
	SaveGoals(ctx context.Context, uid string, goals peakplatesdb.Goals) error
}

// Options configures a Tracker.
type Options struct {
	// Workers bounds the number of concurrent background writes.
	Workers int

	// MaxRetries bounds the attempts of each background write.
	MaxRetries uint
}

// Tracker caches consumed totals per user and day and writes changes to the
// Store in the background.
type Tracker struct {
	store      Store
	exec       parallel.Executor
	maxRetries uint

	mu    sync.Mutex
	users map[string]*userState
}

type userState struct {
	// mu serializes background writes for the user so the most recent totals
	// are always written last.
	mu sync.Mutex

	goals peakplatesdb.Goals
	daily map[string]peakplatesdb.Macros

	// pending counts unsaved changes per date. Reloads keep the cached totals
	// of these dates.
	pending map[string]int

	// edits counts local changes. editedAt and goalsEditedAt hold its value at
	// the last change of a date and of the goals, so a reload that started
	// earlier does not overwrite them.
	edits         uint64
	editedAt      map[string]uint64
	goalsEditedAt uint64
}

// NewTracker returns a Tracker. Background writes stop when ctx is done.
func NewTracker(ctx context.Context, store Store, opts Options) *Tracker {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	retries := opts.MaxRetries
	if retries == 0 {
		retries = 5
	}
	return &Tracker{
		store:      store,
		exec:       parallel.Limited(ctx, workers),
		maxRetries: retries,
		users:      map[string]*userState{},
	}
}

// Summary is a user's goals and consumption for one day.
type Summary struct {
	Date     string
	Goals    peakplatesdb.Goals
	Consumed peakplatesdb.Macros
}

// Load refreshes the cached state of uid from the Store and returns the summary
// for date.
func (t *Tracker) Load(ctx context.Context, uid string, date string) (Summary, error) {
	if err := validateDate(date); err != nil {
		return Summary{}, err
	}
	if _, err := t.load(ctx, uid); err != nil {
		return Summary{}, err
	}
	return t.summary(uid, date), nil
}

// load reads the state of uid from the Store into the cache. Dates with unsaved
// changes, and anything changed locally while the read was in flight, keep
// their cached values.
func (t *Tracker) load(ctx context.Context, uid string) (*userState, error) {
	t.mu.Lock()
	st, ok := t.users[uid]
	if !ok {
		st = &userState{
			daily:    map[string]peakplatesdb.Macros{},
			pending:  map[string]int{},
			editedAt: map[string]uint64{},
		}
		t.users[uid] = st
	}
	seen := st.edits
	var dirty []string
	for date, n := range st.pending {
		if n > 0 {
			dirty = append(dirty, date)
		}
	}
	t.mu.Unlock()

	goals, daily, err := t.store.Load(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("nutrition: loading user: %w", err)
	}
	if daily == nil {
		daily = map[string]peakplatesdb.Macros{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, date := range dirty {
		daily[date] = st.daily[date]
	}
	for date, at := range st.editedAt {
		if at > seen {
			daily[date] = st.daily[date]
		}
	}
	if st.goalsEditedAt <= seen {
		st.goals = goals
	}
	st.daily = daily
	return st, nil
}

func (t *Tracker) summary(uid string, date string) Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.users[uid]
	return Summary{
		Date:     date,
		Goals:    st.goals,
		Consumed: st.daily[date],
	}
}

// LogMeal adds meal to the totals of date and returns the updated summary. The
// totals are first refreshed from the Store so changes made by other server
// instances are not overwritten. The change is written to the Store in the
// background.
func (t *Tracker) LogMeal(ctx context.Context, uid string, date string, meal peakplatesdb.Macros) (Summary, error) {
	if err := validateDate(date); err != nil {
		return Summary{}, err
	}
	if meal.Negative() {
		return Summary{}, ErrNegativeValue
	}
	st, err := t.load(ctx, uid)
	if err != nil {
		return Summary{}, err
	}

	t.mu.Lock()
	st.daily[date] = st.daily[date].Add(meal)
	st.pending[date]++
	st.edits++
	st.editedAt[date] = st.edits
	t.mu.Unlock()

	t.exec.Go(func(ctx context.Context) {
		t.persistDay(ctx, uid, st, date)
	})

	return t.summary(uid, date), nil
}

func (t *Tracker) persistDay(ctx context.Context, uid string, st *userState, date string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	t.mu.Lock()
	totals := st.daily[date]
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		st.pending[date]--
		t.mu.Unlock()
	}()

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, t.store.SaveDay(ctx, uid, date, totals)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(t.maxRetries))
	if err != nil {
		slog.ErrorContext(ctx, "nutrition: saving daily totals", "user", uid, "date", date, "error", err)
	}
}

// SetGoals replaces the goals of uid.
func (t *Tracker) SetGoals(ctx context.Context, uid string, goals peakplatesdb.Goals) error {
	if goals.Negative() {
		return ErrNegativeValue
	}
	if err := t.store.SaveGoals(ctx, uid, goals); err != nil {
		return fmt.Errorf("nutrition: saving goals: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.users[uid]; ok {
		st.goals = goals
		st.edits++
		st.goalsEditedAt = st.edits
	}
	return nil
}

// Close waits for background writes to finish.
func (t *Tracker) Close() {
	t.exec.Wait()
}

// Today returns the current date in loc formatted for use as a day key.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(peakplatesdb.DateLayout)
}

func validateDate(date string) error {
	if _, err := time.Parse(peakplatesdb.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
