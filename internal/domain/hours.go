package domain

import "fmt"

// ReminderHours returns the daily trigger hours for a reminder window:
// startHour, startHour+everyHours, ... up to and including endHour when the
// step lands on it. An endHour before startHour yields an empty plan.
func ReminderHours(startHour, endHour, everyHours int) ([]int, error) {
	if startHour < 0 || startHour > 23 {
		return nil, fmt.Errorf("%w: start hour %d out of range", ErrInvalidInput, startHour)
	}
	if endHour < 0 || endHour > 23 {
		return nil, fmt.Errorf("%w: end hour %d out of range", ErrInvalidInput, endHour)
	}
	if everyHours <= 0 {
		return nil, fmt.Errorf("%w: interval %dh must be positive", ErrInvalidInput, everyHours)
	}

	var hours []int
	for h := startHour; h <= endHour; h += everyHours {
		hours = append(hours, h)
	}
	return hours, nil
}
