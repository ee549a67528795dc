// Package notify delivers scheduled daily weather messages.
package notify

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Heosam0/TelegramWeatherBot/internal/prefs"
	"github.com/Heosam0/TelegramWeatherBot/internal/scheduler"
	"github.com/Heosam0/TelegramWeatherBot/internal/weather"
)

// Sender is the minimal transport interface the dispatcher needs.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Dispatcher builds and sends the daily notification for one (user, city)
// pair at fire time. Unit and language preferences are re-read on every fire,
// so settings changed after subscribing take effect without re-subscribing.
type Dispatcher struct {
	prefs   *prefs.Registry
	fetcher weather.Fetcher
	sender  Sender
	log     *zap.Logger
	timeout time.Duration
}

func NewDispatcher(reg *prefs.Registry, fetcher weather.Fetcher, sender Sender, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		prefs:   reg,
		fetcher: fetcher,
		sender:  sender,
		log:     log,
		timeout: 10 * time.Second,
	}
}

// Job returns the scheduler callback bound to (userID, city) at install time.
func (d *Dispatcher) Job(userID int64, city string) scheduler.Callback {
	return func() { d.Notify(userID, city) }
}

// Notify performs one delivery. Every failure is logged and swallowed: a bad
// fetch or a blocked bot must not crash the scheduler or cancel the job, the
// user is simply retried at the next occurrence.
func (d *Dispatcher) Notify(userID int64, city string) {
	p := d.prefs.Get(userID)

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	cur, err := d.fetcher.Current(ctx, city, p.Units, p.Lang)

	var text string
	switch {
	case err == nil:
		text = "Daily weather for " + city + ":\n" + weather.FormatCurrent(cur, p.Units)
	case errors.Is(err, weather.ErrCityNotFound):
		// Still worth telling the user; the city they subscribed with no
		// longer resolves.
		text = weather.ErrorText(city, err)
	default:
		d.log.Error("scheduled weather fetch failed",
			zap.Int64("userID", userID),
			zap.String("city", city),
			zap.Error(err),
		)
		return
	}

	if err := d.sender.SendMessage(userID, text); err != nil {
		d.log.Error("scheduled notification delivery failed",
			zap.Int64("userID", userID),
			zap.Error(err),
		)
	}
}
