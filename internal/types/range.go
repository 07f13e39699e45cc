package types

import "time"

// DateRange is a closed interval of time.
type DateRange struct {
	StartDate time.Time `json:"startDate" example:"2024-03-01T00:00:00Z"`
	EndDate   time.Time `json:"endDate" example:"2024-03-31T23:59:59.999999999Z"`
}

// Contains reports whether t lies within the range. Both bounds are inclusive.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.StartDate) && !t.After(r.EndDate)
}
