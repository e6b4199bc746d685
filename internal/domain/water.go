package domain

import "errors"

// Defaults used when no value has been persisted yet.
const (
	DefaultDailyGoalML = 2000
	DefaultServingML   = 250
)

// ErrInvalidInput reports a user-supplied value that fails validation.
var ErrInvalidInput = errors.New("invalid input")

// AddWater applies one serving to the current intake and reports whether this
// add crosses the daily goal. The crossing is decided from the pre-add value:
// it fires iff current < goal and current+amount >= goal, so a user who keeps
// adding past the goal sees the event exactly once.
func AddWater(current, amount, goal int) (total int, goalReached bool) {
	total = current + amount
	goalReached = current < goal && total >= goal
	return total, goalReached
}
