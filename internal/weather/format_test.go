package weather

import (
	"errors"
	"strings"
	"testing"

	"github.com/Heosam0/TelegramWeatherBot/internal/domain"
)

func TestWindDirection(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "northern"},
		{360, "northern"},
		{22, "northern"},     // just below the 22.5° N/NE boundary
		{23, "northeastern"}, // just above it
		{45, "northeastern"},
		{90, "eastern"},
		{135, "southeastern"},
		{180, "southern"},
		{225, "southwestern"},
		{270, "western"},
		{315, "northwestern"},
		{337, "northwestern"},
		{338, "northern"}, // wraps past NW back to N
	}
	for _, tc := range cases {
		if got := WindDirection(tc.deg); got != tc.want {
			t.Errorf("WindDirection(%v) = %q, want %q", tc.deg, got, tc.want)
		}
	}
	if WindDirection(22) == WindDirection(23) {
		t.Error("22 and 23 degrees must fall on opposite sides of the boundary")
	}
}

func TestFormatCurrent(t *testing.T) {
	c := Current{
		City:        "paris",
		Temperature: 12.34,
		FeelsLike:   11.0,
		Description: "light rain",
		Humidity:    78,
		WindSpeed:   4.2,
		WindDeg:     90,
		HasWindDeg:  true,
	}
	msg := FormatCurrent(c, domain.UnitsMetric)
	for _, want := range []string{"Weather in Paris", "12.3°C", "11.0°C", "Light rain", "78%", "4.2 m/s", "eastern"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	imperial := FormatCurrent(c, domain.UnitsImperial)
	if !strings.Contains(imperial, "°F") || !strings.Contains(imperial, "mph") {
		t.Errorf("imperial labels missing:\n%s", imperial)
	}

	c.HasWindDeg = false
	msg = FormatCurrent(c, domain.UnitsMetric)
	if strings.Contains(msg, "eastern") {
		t.Error("direction shown even though the provider sent no degrees")
	}
}

func TestFormatForecast(t *testing.T) {
	sums := []DailySummary{
		{Date: "2025-05-05", AvgTemp: 10, TotalPrecipMm: 4, AvgWindSpeed: 2},
		{Date: "2025-05-06", AvgTemp: 20, TotalPrecipMm: 0, AvgWindSpeed: 3},
	}
	msg := FormatForecast("lyon", sums, domain.UnitsMetric)
	for _, want := range []string{"Weather forecast for Lyon", "2025-05-05", "10.0°C", "4.0 mm", "2025-05-06"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestErrorText(t *testing.T) {
	msg := ErrorText("atlantis", ErrCityNotFound)
	if !strings.Contains(msg, "Atlantis") || !strings.Contains(msg, "not found") {
		t.Errorf("unexpected not-found message: %s", msg)
	}

	msg = ErrorText("paris", &ProviderError{Status: 500, Body: `{"cod":500}`})
	if !strings.Contains(msg, `{"cod":500}`) {
		t.Errorf("provider diagnostic text not surfaced: %s", msg)
	}

	msg = ErrorText("paris", errors.New("dial tcp: timeout"))
	if !strings.Contains(msg, "timeout") {
		t.Errorf("generic error text not surfaced: %s", msg)
	}
}
