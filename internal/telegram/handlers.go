package telegram

import (
	"context"
	"crypto/md5"
	"encoding/hex"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Heosam0/TelegramWeatherBot/internal/dialog"
	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
	"github.com/Heosam0/TelegramWeatherBot/internal/weather"
)

func (r *Router) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, startText)
	msg.ReplyMarkup = mainMenuKeyboard()
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

// resolveCity picks the command argument or the user's stored default.
func (r *Router) resolveCity(chatID int64, arg string) string {
	if arg != "" {
		return arg
	}
	return r.prefs.Get(chatID).City
}

func (r *Router) handleWeather(ctx context.Context, chatID int64, arg string) {
	city := r.resolveCity(chatID, arg)
	if city == "" {
		r.sendText(chatID, noCityArgText)
		return
	}
	p := r.prefs.Get(chatID)

	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	cur, err := r.fetcher.Current(ctx, city, p.Units, p.Lang)
	if err != nil {
		r.sendText(chatID, weather.ErrorText(city, err))
		return
	}
	r.sendText(chatID, weather.FormatCurrent(cur, p.Units))
}

func (r *Router) handleForecast(ctx context.Context, chatID int64, arg string) {
	city := r.resolveCity(chatID, arg)
	if city == "" {
		r.sendText(chatID, "Please specify a city. For example: /forecast Paris")
		return
	}
	p := r.prefs.Get(chatID)

	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	samples, err := r.fetcher.Forecast(ctx, city, p.Units, p.Lang)
	if err != nil {
		r.sendText(chatID, weather.ErrorText(city, err))
		return
	}

	summaries := weather.AggregateDaily(samples, r.forecastDays)
	if len(summaries) == 0 {
		r.sendText(chatID, "No forecast data available for "+city+".")
		return
	}
	r.sendText(chatID, weather.FormatForecast(city, summaries, p.Units))
}

func (r *Router) handleSetCity(chatID int64, arg string) {
	if arg == "" {
		r.sendText(chatID, setCityUsageText)
		return
	}
	r.prefs.SetCity(chatID, arg)
	r.sendText(chatID, "Your city is set: "+arg)
}

func (r *Router) handleUnits(chatID int64) {
	units := r.prefs.ToggleUnits(chatID)
	name := "Celsius"
	if units == domain.UnitsImperial {
		name = "Fahrenheit"
	}
	r.sendText(chatID, "Units switched to "+name+".")
}

func (r *Router) handleSubscribe(chatID int64) {
	switch r.machine.Begin(chatID) {
	case dialog.OutcomeNeedCity:
		r.sendText(chatID, needCityText)
	case dialog.OutcomeAskTime:
		r.sendText(chatID, askTimeText)
	}
}

func (r *Router) handleUnsubscribe(chatID int64) {
	if !r.sched.Has(chatID) {
		r.sendText(chatID, noSubscriptionText)
		return
	}
	r.sched.Cancel(chatID)
	r.sendText(chatID, unsubscribedText)
}

// handleInlineQuery answers inline "@bot city" queries with current weather.
func (r *Router) handleInlineQuery(ctx context.Context, q *tgbotapi.InlineQuery) {
	city := q.Query
	answer := tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		CacheTime:     1,
	}
	if city == "" {
		if _, err := r.bot.Request(answer); err != nil {
			r.log.Error("inline answer failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	var text string
	cur, err := r.fetcher.Current(ctx, city, domain.DefaultUnits, domain.DefaultLang)
	if err != nil {
		text = weather.ErrorText(city, err)
	} else {
		text = weather.FormatCurrent(cur, domain.DefaultUnits)
	}

	sum := md5.Sum([]byte(city))
	result := tgbotapi.NewInlineQueryResultArticle(hex.EncodeToString(sum[:]), "Weather in "+city, text)
	answer.Results = []interface{}{result}

	if _, err := r.bot.Request(answer); err != nil {
		r.log.Error("inline answer failed", zap.Error(err))
	}
}
