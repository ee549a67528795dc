package weather

import "time"

// Current is a normalized current-conditions record for one city.
type Current struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Description string
	Humidity    int
	WindSpeed   float64
	WindDeg     float64
	HasWindDeg  bool
}

// ForecastSample is one fine-grained provider data point (3-hour resolution
// for OpenWeatherMap). PrecipMm covers the sample's window; absent
// precipitation decodes to 0.
type ForecastSample struct {
	Timestamp   time.Time
	Temperature float64
	WindSpeed   float64
	PrecipMm    float64
}

// DailySummary is the reduction of one calendar day's samples. Derived and
// ephemeral, recomputed per request.
type DailySummary struct {
	Date          string // "2006-01-02"
	AvgTemp       float64
	TotalPrecipMm float64
	AvgWindSpeed  float64
}
