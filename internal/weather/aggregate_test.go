package weather

import (
	"testing"
	"time"
)

// samplesForDays builds perDay samples for each of the given temperatures,
// one calendar date per temperature, at 3-hour steps starting midnight UTC.
func samplesForDays(temps []float64, perDay int) []ForecastSample {
	var out []ForecastSample
	base := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
	for day, temp := range temps {
		for i := 0; i < perDay; i++ {
			out = append(out, ForecastSample{
				Timestamp:   base.AddDate(0, 0, day).Add(time.Duration(i) * 3 * time.Hour),
				Temperature: temp,
				WindSpeed:   2,
				PrecipMm:    0.5,
			})
		}
	}
	return out
}

func TestAggregateDaily_ThreeFullDays(t *testing.T) {
	samples := samplesForDays([]float64{10, 20, 30}, SamplesPerDay)

	got := AggregateDaily(samples, 3)
	if len(got) != 3 {
		t.Fatalf("got %d summaries, want 3", len(got))
	}
	wantTemps := []float64{10, 20, 30}
	for i, s := range got {
		if s.AvgTemp != wantTemps[i] {
			t.Errorf("day %d avg temp = %v, want %v", i, s.AvgTemp, wantTemps[i])
		}
		if s.TotalPrecipMm != 4 { // 8 samples * 0.5 mm
			t.Errorf("day %d precipitation = %v, want 4", i, s.TotalPrecipMm)
		}
		if s.AvgWindSpeed != 2 {
			t.Errorf("day %d wind = %v, want 2", i, s.AvgWindSpeed)
		}
	}
	if got[0].Date != "2025-05-05" || got[2].Date != "2025-05-07" {
		t.Fatalf("unexpected dates: %v / %v", got[0].Date, got[2].Date)
	}
}

func TestAggregateDaily_TruncatesToHorizon(t *testing.T) {
	// 5 dates of data but a 2-day horizon: only the first 16 samples count.
	samples := samplesForDays([]float64{10, 20, 30, 40, 50}, SamplesPerDay)

	got := AggregateDaily(samples, 2)
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}
	if got[0].AvgTemp != 10 || got[1].AvgTemp != 20 {
		t.Fatalf("truncation kept the wrong samples: %+v", got)
	}
}

func TestAggregateDaily_PartialDaysSpillOver(t *testing.T) {
	// Data starts mid-day: 4 samples on the first date, then full days.
	// A 1-day horizon keeps 8 samples, which span two calendar dates.
	base := time.Date(2025, time.May, 5, 12, 0, 0, 0, time.UTC)
	var samples []ForecastSample
	for i := 0; i < 24; i++ {
		samples = append(samples, ForecastSample{
			Timestamp:   base.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: float64(i),
		})
	}

	got := AggregateDaily(samples, 1)
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2 (truncated window spans two dates)", len(got))
	}
	if got[0].Date != "2025-05-05" || got[1].Date != "2025-05-06" {
		t.Fatalf("unexpected dates: %+v", got)
	}
	// First bucket averages samples 0..3, second 4..7.
	if got[0].AvgTemp != 1.5 {
		t.Fatalf("first bucket avg = %v, want 1.5", got[0].AvgTemp)
	}
	if got[1].AvgTemp != 5.5 {
		t.Fatalf("second bucket avg = %v, want 5.5", got[1].AvgTemp)
	}
}

func TestAggregateDaily_FirstSeenOrder(t *testing.T) {
	// Samples deliberately out of calendar order; output follows input order.
	day1 := time.Date(2025, time.May, 6, 9, 0, 0, 0, time.UTC)
	day0 := time.Date(2025, time.May, 5, 9, 0, 0, 0, time.UTC)
	samples := []ForecastSample{
		{Timestamp: day1, Temperature: 20},
		{Timestamp: day0, Temperature: 10},
	}

	got := AggregateDaily(samples, 3)
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}
	if got[0].Date != "2025-05-06" || got[1].Date != "2025-05-05" {
		t.Fatalf("want first-seen order, got %v then %v", got[0].Date, got[1].Date)
	}
}

func TestAggregateDaily_EdgeCases(t *testing.T) {
	if got := AggregateDaily(nil, 3); len(got) != 0 {
		t.Fatalf("empty input produced %d summaries", len(got))
	}
	samples := samplesForDays([]float64{10}, SamplesPerDay)
	if got := AggregateDaily(samples, 0); len(got) != 0 {
		t.Fatalf("zero-day horizon produced %d summaries", len(got))
	}
}
