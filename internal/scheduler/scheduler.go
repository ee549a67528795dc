// Package scheduler fires one daily callback per subscribed user.
package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
)

// Callback is the work executed at each daily trigger.
type Callback func()

// job is one live recurring trigger. Closing stop cancels it; the channel is
// never reused, so a replaced job can never fire again.
type job struct {
	at   domain.ClockTime
	stop chan struct{}
}

// Scheduler owns at most one recurring daily job per user. Install replaces
// any existing job for the user atomically: the old trigger is cancelled
// before the new one exists, under one lock.
type Scheduler struct {
	log *zap.Logger

	mu   sync.Mutex
	jobs map[int64]*job

	// nextDelay computes how long to wait until the next occurrence of the
	// given wall-clock time. Overridden in tests.
	nextDelay func(at domain.ClockTime) time.Duration
}

func New(log *zap.Logger) *Scheduler {
	return NewWithDelay(log, func(at domain.ClockTime) time.Duration {
		now := time.Now()
		return NextOccurrence(now, at).Sub(now)
	})
}

// NewWithDelay creates a Scheduler whose wait before each fire comes from
// delayFn instead of the wall clock. Tests use it to compress days into
// milliseconds.
func NewWithDelay(log *zap.Logger, delayFn func(at domain.ClockTime) time.Duration) *Scheduler {
	return &Scheduler{
		log:       log,
		jobs:      make(map[int64]*job),
		nextDelay: delayFn,
	}
}

// NextOccurrence returns the next time hh:mm comes around after now, in now's
// location: later today if the moment has not passed yet, otherwise tomorrow.
func NextOccurrence(now time.Time, at domain.ClockTime) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour, at.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Install registers a daily job for the user, cancelling any previous one
// first. Replacement is retargeting the single job a user may have, not
// adding a second one.
func (s *Scheduler) Install(userID int64, at domain.ClockTime, cb Callback) {
	s.mu.Lock()
	if old, ok := s.jobs[userID]; ok {
		close(old.stop)
	}
	j := &job{at: at, stop: make(chan struct{})}
	s.jobs[userID] = j
	s.mu.Unlock()

	s.log.Info("daily job installed",
		zap.Int64("userID", userID),
		zap.String("at", at.String()),
	)
	go s.run(userID, j, cb)
}

// Cancel removes the user's job if present. Cancelling a missing job is a
// no-op, not an error.
func (s *Scheduler) Cancel(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[userID]; ok {
		close(j.stop)
		delete(s.jobs, userID)
		s.log.Info("daily job cancelled", zap.Int64("userID", userID))
	}
}

// Has reports whether the user currently has an active job.
func (s *Scheduler) Has(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[userID]
	return ok
}

// Stop cancels all jobs. Used at shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, j := range s.jobs {
		close(j.stop)
		delete(s.jobs, id)
	}
	s.log.Info("scheduler stopped")
}

// run waits for each occurrence of j.at and fires cb, forever, until j.stop
// closes. A fire already past the stop re-check may complete; it will never
// start after cancellation.
func (s *Scheduler) run(userID int64, j *job, cb Callback) {
	for {
		timer := time.NewTimer(s.nextDelay(j.at))
		select {
		case <-j.stop:
			timer.Stop()
			return
		case <-timer.C:
		}

		// The timer and a concurrent cancel can both be ready; re-check so a
		// replaced job never fires with its stale binding.
		select {
		case <-j.stop:
			return
		default:
		}

		s.fire(userID, cb)
	}
}

// fire runs the callback, isolating failures: a panic in one user's
// notification must cancel neither its own future recurrences nor anyone
// else's job.
func (s *Scheduler) fire(userID int64, cb Callback) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("notification job panicked",
				zap.Int64("userID", userID),
				zap.Any("panic", r),
			)
		}
	}()
	cb()
}
