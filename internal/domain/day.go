package domain

import "time"

// DayID identifies a calendar day in the device's local timezone. It carries
// no time-of-day component, so two DayIDs are equal iff they name the same day.
type DayID string

const dayLayout = "2006-01-02"

// Today returns the DayID for the given instant in its location.
func Today(now time.Time) DayID {
	return DayID(now.Format(dayLayout))
}

func (d DayID) String() string { return string(d) }
