package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken          string        `envconfig:"TELEGRAM_TOKEN" required:"true"`
	OpenWeatherAPIKey string        `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	ForecastDays      int           `envconfig:"FORECAST_DAYS" default:"3"`
	HTTPTimeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8080"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
