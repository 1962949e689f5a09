package utils

import (
	"fmt"
	"time"
)

// DateLayout is the canonical wire format for calendar dates.
const DateLayout = "2006-01-02"

// MinutesPerDay bounds the minute-of-day range [0, 1440).
const MinutesPerDay = 1440

// FormatMinutes renders a minute-of-day value as "HH:MM". 1440 renders as
// "24:00" so a full-day interval end stays printable.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseHHMM parses "HH:MM" into a minute-of-day value.
func ParseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > MinutesPerDay {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// ParseDate parses a "2006-01-02" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NextDate returns the date string one day after the given date.
func NextDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 1).Format(DateLayout), nil
}

// PrevDate returns the date string one day before the given date.
func PrevDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(DateLayout), nil
}

// DatesBetween returns every date from start through end inclusive. An end
// before start yields an empty slice.
func DatesBetween(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}
