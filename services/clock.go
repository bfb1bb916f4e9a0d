package services

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in "YYYY-MM-DD" form.
func ParseDate(value string) (time.Time, error) {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, value)
	}
	return day, nil
}

// ParseClock converts a zero-padded 24-hour "HH:MM" string to a
// minute-of-day. Range checks work on the returned integer, never on
// the raw string, so the engine does not depend on lexicographic
// ordering of clock strings.
func ParseClock(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, value)
	}
	hour, err := strconv.Atoi(value[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, value)
	}
	minute, err := strconv.Atoi(value[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: time out of range, got %q", ErrInvalidInput, value)
	}
	return hour*60 + minute, nil
}

// Weekday maps a date to ISO weekday numbering, Monday=0 through
// Sunday=6, matching ScheduleEntry.Weekday.
func Weekday(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}
