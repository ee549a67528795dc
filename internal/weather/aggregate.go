package weather

// SamplesPerDay is how many 3-hour forecast samples cover one calendar day.
const SamplesPerDay = 8

// AggregateDaily reduces fine-grained forecast samples into per-day summaries.
// The input is truncated to the first days*SamplesPerDay samples, which bounds
// the horizon without date arithmetic; remaining samples are bucketed by the
// calendar date of their timestamp. Summaries come out in first-seen order,
// matching the source sample order. Empty input or days <= 0 yields nil.
func AggregateDaily(samples []ForecastSample, days int) []DailySummary {
	if days <= 0 || len(samples) == 0 {
		return nil
	}
	if limit := days * SamplesPerDay; len(samples) > limit {
		samples = samples[:limit]
	}

	type bucket struct {
		tempSum float64
		windSum float64
		precip  float64
		count   int
	}

	buckets := make(map[string]*bucket)
	var order []string

	for _, s := range samples {
		date := s.Timestamp.Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
			order = append(order, date)
		}
		b.tempSum += s.Temperature
		b.windSum += s.WindSpeed
		b.precip += s.PrecipMm
		b.count++
	}

	out := make([]DailySummary, 0, len(order))
	for _, date := range order {
		b := buckets[date]
		n := float64(b.count)
		out = append(out, DailySummary{
			Date:          date,
			AvgTemp:       b.tempSum / n,
			TotalPrecipMm: b.precip,
			AvgWindSpeed:  b.windSum / n,
		})
	}
	return out
}
