package dates

import (
	"errors"
	"time"
)

// ISOLayout is the calendar date format used everywhere in the API.
const ISOLayout = "2006-01-02"

// DefaultRangeDays is the trailing window used when no explicit range is given.
const DefaultRangeDays = 14

var (
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrMissingRangeBound = errors.New("start and end must be provided together")
	ErrInvalidRange      = errors.New("start must not be after end")
	ErrInvalidRangeDays  = errors.New("days must be a positive number")
)

// ValidateISODate checks that s is a calendar-valid date in YYYY-MM-DD form.
// time.Parse alone accepts some normalized inputs, so the parsed date is
// formatted back and compared to catch values like 2024-02-30.
func ValidateISODate(s string) error {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return ErrInvalidDate
	}
	if t.Format(ISOLayout) != s {
		return ErrInvalidDate
	}
	return nil
}

// TodayLocal returns the current local calendar date as YYYY-MM-DD.
// Local rather than UTC, to match the user-facing notion of "today".
func TodayLocal() string {
	return time.Now().Format(ISOLayout)
}

// ResolveRange computes the inclusive [start, end] date range for entry
// queries. Both bounds must be given together; when absent the range covers
// the trailing days window ending today.
func ResolveRange(start, end *string, days *int) (string, string, error) {
	if (start == nil) != (end == nil) {
		return "", "", ErrMissingRangeBound
	}

	if start != nil {
		if err := ValidateISODate(*start); err != nil {
			return "", "", err
		}
		if err := ValidateISODate(*end); err != nil {
			return "", "", err
		}
		if *start > *end {
			return "", "", ErrInvalidRange
		}
		return *start, *end, nil
	}

	n := DefaultRangeDays
	if days != nil {
		n = *days
	}
	if n <= 0 {
		return "", "", ErrInvalidRangeDays
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(n - 1))
	return startDay.Format(ISOLayout), endDay.Format(ISOLayout), nil
}
