package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("invalid time, expected HH:MM")

// ClockTime is a wall-clock time of day for a daily subscription.
type ClockTime struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// String returns the zero-padded HH:MM form.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// LooksLikeClock reports whether s is plausibly a clock value: non-empty and
// composed only of digits and ':'. Anything else belongs to other handlers.
func LooksLikeClock(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ':' {
			return false
		}
	}
	return true
}

// ParseClock parses a strict zero-padded 24-hour "HH:MM" value.
// "8:00", "24:00" and "09:60" are all rejected.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("%w: bad minute in %q", ErrInvalidClock, s)
	}
	// strconv.Atoi accepts "+1" and "-1"; both have the wrong shape anyway,
	// but keep the check explicit.
	if !isAllDigits(parts[0]) || !isAllDigits(parts[1]) {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
