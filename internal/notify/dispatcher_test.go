package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
	"github.com/Heosam0/TelegramWeatherBot/internal/prefs"
	"github.com/Heosam0/TelegramWeatherBot/internal/weather"
)

type mockFetcher struct {
	currentFn func(ctx context.Context, city string, units domain.Units, lang string) (weather.Current, error)
}

func (m *mockFetcher) Current(ctx context.Context, city string, units domain.Units, lang string) (weather.Current, error) {
	if m.currentFn != nil {
		return m.currentFn(ctx, city, units, lang)
	}
	return weather.Current{City: city}, nil
}

func (m *mockFetcher) Forecast(context.Context, string, domain.Units, string) ([]weather.ForecastSample, error) {
	return nil, nil
}

type mockSender struct {
	sent   []string
	sendFn func(chatID int64, text string) error
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	if m.sendFn != nil {
		if err := m.sendFn(chatID, text); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, text)
	return nil
}

func TestNotify_SendsFormattedWeather(t *testing.T) {
	reg := prefs.NewRegistry()
	fetcher := &mockFetcher{
		currentFn: func(_ context.Context, city string, _ domain.Units, _ string) (weather.Current, error) {
			return weather.Current{City: city, Temperature: 5, Description: "clear sky"}, nil
		},
	}
	sender := &mockSender{}
	d := NewDispatcher(reg, fetcher, sender, zap.NewNop())

	d.Notify(1, "Paris")

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0], "Daily weather for Paris") {
		t.Fatalf("unexpected message: %s", sender.sent[0])
	}
}

func TestNotify_UsesCurrentPreferences(t *testing.T) {
	reg := prefs.NewRegistry()
	var seenUnits domain.Units
	var seenLang string
	fetcher := &mockFetcher{
		currentFn: func(_ context.Context, city string, units domain.Units, lang string) (weather.Current, error) {
			seenUnits, seenLang = units, lang
			return weather.Current{City: city}, nil
		},
	}
	d := NewDispatcher(reg, fetcher, &mockSender{}, zap.NewNop())

	// Preferences drift after subscribe time; the fire must see the new ones.
	reg.SetUnits(1, domain.UnitsImperial)
	d.Notify(1, "Paris")

	if seenUnits != domain.UnitsImperial {
		t.Fatalf("fetch used units %q, want imperial", seenUnits)
	}
	if seenLang != "ru" {
		t.Fatalf("fetch used lang %q, want ru", seenLang)
	}
}

func TestNotify_DeliveryFailureIsSwallowed(t *testing.T) {
	reg := prefs.NewRegistry()
	sender := &mockSender{
		sendFn: func(int64, string) error { return errors.New("forbidden: bot was blocked by the user") },
	}
	d := NewDispatcher(reg, &mockFetcher{}, sender, zap.NewNop())

	// Must not panic; the scheduler keeps the job either way.
	d.Notify(1, "Paris")

	if len(sender.sent) != 0 {
		t.Fatal("send reported failure but message recorded")
	}
}

func TestNotify_CityNotFoundStillInformsUser(t *testing.T) {
	reg := prefs.NewRegistry()
	fetcher := &mockFetcher{
		currentFn: func(context.Context, string, domain.Units, string) (weather.Current, error) {
			return weather.Current{}, weather.ErrCityNotFound
		},
	}
	sender := &mockSender{}
	d := NewDispatcher(reg, fetcher, sender, zap.NewNop())

	d.Notify(1, "Atlantis")

	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "not found") {
		t.Fatalf("expected a not-found notice, got %v", sender.sent)
	}
}

func TestNotify_TransientFetchErrorSkipsDelivery(t *testing.T) {
	reg := prefs.NewRegistry()
	fetcher := &mockFetcher{
		currentFn: func(context.Context, string, domain.Units, string) (weather.Current, error) {
			return weather.Current{}, &weather.ProviderError{Status: 500, Body: "boom"}
		},
	}
	sender := &mockSender{}
	d := NewDispatcher(reg, fetcher, sender, zap.NewNop())

	d.Notify(1, "Paris")

	if len(sender.sent) != 0 {
		t.Fatalf("transient provider failure should skip that day's message, sent %v", sender.sent)
	}
}
