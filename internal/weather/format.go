package weather

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
)

// windDirections are the 8 compass sectors, 45 degrees each, starting north.
var windDirections = [8]string{
	"northern", "northeastern", "eastern", "southeastern",
	"southern", "southwestern", "western", "northwestern",
}

// WindDirection buckets degrees into a compass sector name.
// 0 and 360 both land on "northern".
func WindDirection(deg float64) string {
	idx := int(math.Round(deg/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return windDirections[idx]
}

// FormatCurrent renders a current-conditions record as a chat message.
func FormatCurrent(c Current, units domain.Units) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather in %s:\n", capitalize(c.City))
	fmt.Fprintf(&b, "Temperature: %.1f°%s\n", c.Temperature, units.TempLabel())
	fmt.Fprintf(&b, "Feels like: %.1f°%s\n", c.FeelsLike, units.TempLabel())
	fmt.Fprintf(&b, "Description: %s\n", capitalize(c.Description))
	fmt.Fprintf(&b, "Humidity: %d%%\n", c.Humidity)
	if c.HasWindDeg {
		fmt.Fprintf(&b, "Wind: %.1f %s, %s", c.WindSpeed, units.WindLabel(), WindDirection(c.WindDeg))
	} else {
		fmt.Fprintf(&b, "Wind: %.1f %s", c.WindSpeed, units.WindLabel())
	}
	return b.String()
}

// FormatForecast renders per-day summaries as a chat message.
func FormatForecast(city string, summaries []DailySummary, units domain.Units) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s:\n", capitalize(city))
	for _, s := range summaries {
		fmt.Fprintf(&b, "%s:\n", s.Date)
		fmt.Fprintf(&b, "- Average temperature: %.1f°%s\n", s.AvgTemp, units.TempLabel())
		fmt.Fprintf(&b, "- Precipitation: %.1f mm\n", s.TotalPrecipMm)
		fmt.Fprintf(&b, "- Average wind speed: %.1f %s\n", s.AvgWindSpeed, units.WindLabel())
	}
	return b.String()
}

// ErrorText renders a fetch error as a user-facing informational message.
// Not-found and provider errors are shown verbatim; nothing here is fatal.
func ErrorText(city string, err error) string {
	var provErr *ProviderError
	switch {
	case errors.Is(err, ErrCityNotFound):
		return fmt.Sprintf("City %s not found. Check the spelling.", capitalize(city))
	case errors.As(err, &provErr):
		return "Error requesting weather data: " + provErr.Body
	default:
		return "Error requesting weather data: " + err.Error()
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
