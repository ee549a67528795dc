// Package dialog tracks the per-user subscription conversation.
package dialog

import (
	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
	"github.com/Heosam0/TelegramWeatherBot/internal/prefs"
)

// Outcome tells the caller what the machine decided about a message.
type Outcome int

const (
	// OutcomeNone: the message is not part of a subscription flow; other
	// handlers should deal with it.
	OutcomeNone Outcome = iota
	// OutcomeNeedCity: the user tried to subscribe without a default city.
	OutcomeNeedCity
	// OutcomeAskTime: subscription flow started; prompt for HH:MM.
	OutcomeAskTime
	// OutcomeBadTime: clock-shaped reply that is not a valid time; re-prompt.
	OutcomeBadTime
	// OutcomeSubscribed: a valid time arrived and the job was installed.
	OutcomeSubscribed
)

// Event carries the outcome plus the subscription details on success.
type Event struct {
	Outcome Outcome
	City    string
	Time    domain.ClockTime
}

// SubscribeFunc installs a daily subscription once the flow completes.
type SubscribeFunc func(userID int64, city string, at domain.ClockTime)

// Machine is the two-state conversation machine: Idle and
// AwaitingSubscriptionTime, per user, independent across users. The state tag
// lives in the preference registry, so command handling and scheduled fires
// share one consistent view.
type Machine struct {
	prefs     *prefs.Registry
	subscribe SubscribeFunc
}

func NewMachine(reg *prefs.Registry, subscribe SubscribeFunc) *Machine {
	return &Machine{prefs: reg, subscribe: subscribe}
}

// Begin starts the subscription flow. A subscription must never be installed
// for a user without a city, so the precondition is checked here; the machine
// stays Idle when it fails.
func (m *Machine) Begin(userID int64) Outcome {
	if m.prefs.Get(userID).City == "" {
		return OutcomeNeedCity
	}
	m.prefs.SetAwaiting(userID, true)
	return OutcomeAskTime
}

// HandleText inspects an inbound free-text message. The per-user state tag is
// consulted first, then the clock-shape filter, so unrelated numeric chatter
// from users outside the flow is never captured. An invalid-but-clock-shaped
// reply keeps the user in the flow (unlimited retries).
func (m *Machine) HandleText(userID int64, text string) Event {
	p := m.prefs.Get(userID)
	if !p.AwaitingSubscriptionTime {
		return Event{Outcome: OutcomeNone}
	}
	if !domain.LooksLikeClock(text) {
		return Event{Outcome: OutcomeNone}
	}

	at, err := domain.ParseClock(text)
	if err != nil {
		return Event{Outcome: OutcomeBadTime}
	}

	m.prefs.SetAwaiting(userID, false)
	m.subscribe(userID, p.City, at)
	return Event{Outcome: OutcomeSubscribed, City: p.City, Time: at}
}
