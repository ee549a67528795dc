// Package prefs holds per-user settings for the lifetime of the process.
package prefs

import (
	"sync"

	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
)

// Registry is a concurrency-safe in-memory store of user preferences.
// Records are created lazily on first touch and never removed; every read
// returns a snapshot taken under the lock, so callers never observe a
// half-written record.
type Registry struct {
	mu    sync.RWMutex
	users map[int64]*domain.Preferences
}

func NewRegistry() *Registry {
	return &Registry{users: make(map[int64]*domain.Preferences)}
}

// Get returns a copy of the user's preferences, creating the default record
// if the user has not been seen before.
func (r *Registry) Get(userID int64) domain.Preferences {
	r.mu.RLock()
	if p, ok := r.users[userID]; ok {
		snapshot := *p
		r.mu.RUnlock()
		return snapshot
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.ensureLocked(userID)
	return *p
}

// SetCity sets the user's default city.
func (r *Registry) SetCity(userID int64, city string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLocked(userID).City = city
}

// SetUnits sets the user's unit system.
func (r *Registry) SetUnits(userID int64, units domain.Units) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLocked(userID).Units = units
}

// ToggleUnits flips metric/imperial and returns the new value.
func (r *Registry) ToggleUnits(userID int64) domain.Units {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.ensureLocked(userID)
	p.Units = p.Units.Toggle()
	return p.Units
}

// SetAwaiting marks whether the next clock-shaped message from the user is a
// subscription time reply.
func (r *Registry) SetAwaiting(userID int64, awaiting bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLocked(userID).AwaitingSubscriptionTime = awaiting
}

// ensureLocked returns the live record for userID, creating it if absent.
// Caller must hold the write lock.
func (r *Registry) ensureLocked(userID int64) *domain.Preferences {
	if p, ok := r.users[userID]; ok {
		return p
	}
	p := domain.DefaultPreferences(userID)
	r.users[userID] = &p
	return &p
}
