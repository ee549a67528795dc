package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Heosam0/TelegramWeatherBot/internal/dialog"
	"github.com/Heosam0/TelegramWeatherBot/internal/prefs"
	"github.com/Heosam0/TelegramWeatherBot/internal/scheduler"
	"github.com/Heosam0/TelegramWeatherBot/internal/weather"
)

// Router wires Telegram updates to handlers.
type Router struct {
	bot     *tgbotapi.BotAPI
	log     *zap.Logger
	prefs   *prefs.Registry
	fetcher weather.Fetcher
	machine *dialog.Machine
	sched   *scheduler.Scheduler

	forecastDays int
	fetchTimeout time.Duration
}

func NewRouter(
	bot *tgbotapi.BotAPI,
	log *zap.Logger,
	reg *prefs.Registry,
	fetcher weather.Fetcher,
	machine *dialog.Machine,
	sched *scheduler.Scheduler,
	forecastDays int,
) *Router {
	return &Router{
		bot:          bot,
		log:          log,
		prefs:        reg,
		fetcher:      fetcher,
		machine:      machine,
		sched:        sched,
		forecastDays: forecastDays,
		fetchTimeout: 10 * time.Second,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		msg := upd.Message
		chatID := msg.Chat.ID

		if msg.IsCommand() {
			r.handleCommand(ctx, chatID, msg.Command(), strings.TrimSpace(msg.CommandArguments()))
			return
		}
		r.handleFreeForm(ctx, chatID, strings.TrimSpace(msg.Text))
		return
	}

	if upd.InlineQuery != nil {
		r.handleInlineQuery(ctx, upd.InlineQuery)
	}
}

func (r *Router) handleCommand(ctx context.Context, chatID int64, command, args string) {
	switch command {
	case "start":
		r.handleStart(chatID)
	case "help":
		r.sendText(chatID, helpText)
	case "weather":
		r.handleWeather(ctx, chatID, args)
	case "forecast":
		r.handleForecast(ctx, chatID, args)
	case "setcity":
		r.handleSetCity(chatID, args)
	case "units":
		r.handleUnits(chatID)
	case "subscribe":
		r.handleSubscribe(chatID)
	case "unsubscribe":
		r.handleUnsubscribe(chatID)
	default:
		r.sendText(chatID, unknownCommandText)
	}
}

// handleFreeForm deals with non-command text: a pending subscription time
// reply first, then the reply-keyboard buttons. Anything else is ignored.
func (r *Router) handleFreeForm(ctx context.Context, chatID int64, text string) {
	ev := r.machine.HandleText(chatID, text)
	switch ev.Outcome {
	case dialog.OutcomeBadTime:
		r.sendText(chatID, badTimeText)
		return
	case dialog.OutcomeSubscribed:
		r.sendText(chatID, "You are subscribed to daily weather for "+ev.City+" at "+ev.Time.String()+".")
		return
	}

	switch text {
	case buttonGetWeather:
		r.sendText(chatID, getWeatherHintText)
	case buttonSettings:
		r.sendText(chatID, settingsHintText)
	}
}

// sendText sends a plain text message, logging (not propagating) failures.
func (r *Router) sendText(chatID int64, text string) {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
