package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Heosam0/TelegramWeatherBot/internal/config"
	"github.com/Heosam0/TelegramWeatherBot/internal/dialog"
	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
	"github.com/Heosam0/TelegramWeatherBot/internal/notify"
	"github.com/Heosam0/TelegramWeatherBot/internal/prefs"
	"github.com/Heosam0/TelegramWeatherBot/internal/scheduler"
	"github.com/Heosam0/TelegramWeatherBot/internal/telegram"
	"github.com/Heosam0/TelegramWeatherBot/internal/weather"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	sched   *scheduler.Scheduler
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting weather bot",
		zap.String("http", a.cfg.HTTPAddr),
		zap.Int("forecastDays", a.cfg.ForecastDays),
	)

	registry := prefs.NewRegistry()
	client := weather.NewClient(&http.Client{Timeout: a.cfg.HTTPTimeout}, a.cfg.OpenWeatherAPIKey)

	a.sched = scheduler.New(a.log)
	dispatcher := notify.NewDispatcher(registry, client, telegram.NewSender(a.bot), a.log)

	// Completing the subscription flow retargets the user's single daily job,
	// binding the dispatcher to the city chosen at subscribe time.
	machine := dialog.NewMachine(registry, func(userID int64, city string, at domain.ClockTime) {
		a.sched.Install(userID, at, dispatcher.Job(userID, city))
	})

	a.router = telegram.NewRouter(a.bot, a.log, registry, client, machine, a.sched, a.cfg.ForecastDays)

	if _, err := a.bot.Request(tgbotapi.NewSetMyCommands(telegram.BotCommands()...)); err != nil {
		a.log.Warn("set bot commands failed", zap.Error(err))
	}

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()
			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}

			a.sched.Stop()
			return nil

		case upd := <-updCh:
			// Each update on its own goroutine so a slow provider call never
			// blocks other users' commands.
			go a.router.HandleUpdate(ctx, upd)
		}
	}
}
