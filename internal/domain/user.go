package domain

// Units selects the measurement system passed through to the weather provider.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Toggle returns the other unit system.
func (u Units) Toggle() Units {
	if u == UnitsImperial {
		return UnitsMetric
	}
	return UnitsImperial
}

// TempLabel returns the temperature unit letter for display.
func (u Units) TempLabel() string {
	if u == UnitsImperial {
		return "F"
	}
	return "C"
}

// WindLabel returns the wind speed unit for display.
func (u Units) WindLabel() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

const (
	DefaultUnits = UnitsMetric
	DefaultLang  = "ru"
)

// Preferences holds per-user settings. One record per user, created lazily,
// never deleted while the process lives.
type Preferences struct {
	UserID int64
	City   string // empty until /setcity
	Units  Units
	Lang   string
	// AwaitingSubscriptionTime is true only between a /subscribe request and
	// the next clock-shaped reply from the same user.
	AwaitingSubscriptionTime bool
}

// DefaultPreferences returns a fresh record for a user seen for the first time.
func DefaultPreferences(userID int64) Preferences {
	return Preferences{
		UserID: userID,
		Units:  DefaultUnits,
		Lang:   DefaultLang,
	}
}
