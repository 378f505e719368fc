package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString is returned for anything that does not parse as HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrNotWholeHour is returned when a time is not aligned to an hour boundary
	ErrNotWholeHour = errors.New("time is not aligned to a whole hour")
)

// TimeString represents a time of day in "HH:MM" format.
// QuickCourt slots live on a whole-hour grid, so most callers go through
// Hour/FromHour, but the string form is kept for the wire format.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (truncating seconds)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromHour creates a TimeString for a whole hour (e.g. 9 -> "09:00").
// Hour 24 renders as "24:00", the exclusive end-of-window marker.
func NewTimeStringFromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// String returns the string representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for an empty TimeString
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format
func (t TimeString) Validate() error {
	_, _, err := t.parts()
	return err
}

// Hour returns the hour component; fails unless minutes are exactly 00
func (t TimeString) Hour() (int, error) {
	h, m, err := t.parts()
	if err != nil {
		return 0, err
	}
	if m != 0 {
		return 0, ErrNotWholeHour
	}
	return h, nil
}

// AddHours returns the TimeString shifted by the given number of whole hours
func (t TimeString) AddHours(hours int) (TimeString, error) {
	h, m, err := t.parts()
	if err != nil {
		return "", err
	}
	h += hours
	if h < 0 || h > 24 {
		return "", fmt.Errorf("%w: result %d:00 out of range", ErrInvalidTimeString, h)
	}
	// 24:00 is allowed as an exclusive end-of-window marker
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes() < other.minutes()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes() > other.minutes()
}

// parts splits "HH:MM" into hour and minute components
func (t TimeString) parts() (int, int, error) {
	s := string(t)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, 0, ErrInvalidTimeString
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, 0, ErrInvalidTimeString
	}

	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, ErrInvalidTimeString
	}

	return h, m, nil
}

// minutes converts the time to minutes since midnight; invalid values sort first
func (t TimeString) minutes() int {
	h, m, err := t.parts()
	if err != nil {
		return -1
	}
	return h*60 + m
}
