package types

import (
	"errors"
	"fmt"
	"time"
)

// Timeframe is a reporting window anchored to the current time.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

var ErrInvalidTimeframe = errors.New("timeframe must be one of week, month, year")

// ParseTimeframe parses a timeframe. The empty string defaults to month.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "":
		return TimeframeMonth, nil
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return Timeframe(s), nil
	}

	return "", fmt.Errorf("%w, got '%s'", ErrInvalidTimeframe, s)
}

// Start returns the first instant of the current calendar week (starting on
// Sunday), month or year relative to now, in now's location.
func (tf Timeframe) Start(now time.Time) time.Time {
	year, month, day := now.Date()

	switch tf {
	case TimeframeWeek:
		return time.Date(year, month, day-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	case TimeframeYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	}
}

// Range returns the window from Start(now) up to and including now.
func (tf Timeframe) Range(now time.Time) DateRange {
	return DateRange{StartDate: tf.Start(now), EndDate: now}
}

// TrendMonths is the number of calendar months shown in the income and
// expense trend for the timeframe, including the current one.
func (tf Timeframe) TrendMonths() int {
	if tf == TimeframeYear {
		return 12
	}

	return 6
}
