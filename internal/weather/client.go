package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
)

// ErrCityNotFound signals an unknown city (provider 404). Surfaced to the
// user as an informational message, never as a system failure.
var ErrCityNotFound = errors.New("city not found")

// ProviderError carries the raw diagnostic text of a failed provider request.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather provider error (status %d): %s", e.Status, e.Body)
}

// Fetcher is the weather-fetch collaborator contract consumed by the command
// handlers and the notification dispatcher.
type Fetcher interface {
	Current(ctx context.Context, city string, units domain.Units, lang string) (Current, error)
	Forecast(ctx context.Context, city string, units domain.Units, lang string) ([]ForecastSample, error)
}

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches weather from OpenWeatherMap. Outbound calls go through a
// circuit breaker; there is no in-request retry, a failed request is reported
// back for that one request.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

var _ Fetcher = (*Client)(nil)

func NewClient(httpClient *http.Client, apiKey string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		// An unknown city is a user error, not provider trouble; it must not
		// open the circuit.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrCityNotFound)
		},
	})
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		circuit:    cb,
	}
}

// Current fetches current conditions for a city.
func (c *Client) Current(ctx context.Context, city string, units domain.Units, lang string) (Current, error) {
	body, err := c.get(ctx, "/weather", city, units, lang)
	if err != nil {
		return Current{}, err
	}

	var payload struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64  `json:"speed"`
			Deg   *float64 `json:"deg"`
		} `json:"wind"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Current{}, fmt.Errorf("decode current weather: %w", err)
	}

	cur := Current{
		City:        city,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		cur.Description = payload.Weather[0].Description
	}
	if payload.Wind.Deg != nil {
		cur.WindDeg = *payload.Wind.Deg
		cur.HasWindDeg = true
	}
	return cur, nil
}

// Forecast fetches the ordered 3-hour sample sequence for a city.
func (c *Client) Forecast(ctx context.Context, city string, units domain.Units, lang string) ([]ForecastSample, error) {
	body, err := c.get(ctx, "/forecast", city, units, lang)
	if err != nil {
		return nil, err
	}

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Rain struct {
				ThreeH float64 `json:"3h"`
			} `json:"rain"`
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}

	samples := make([]ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		ts, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			ts = time.Unix(item.Dt, 0).UTC()
		}
		samples = append(samples, ForecastSample{
			Timestamp:   ts,
			Temperature: item.Main.Temp,
			WindSpeed:   item.Wind.Speed,
			PrecipMm:    item.Rain.ThreeH,
		})
	}
	return samples, nil
}

// get performs one provider request through the circuit breaker and maps
// provider status codes onto the error taxonomy.
func (c *Client) get(ctx context.Context, path, city string, units domain.Units, lang string) ([]byte, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	values.Set("units", string(units))
	values.Set("lang", lang)

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
		default:
			return nil, &ProviderError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		}
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}
