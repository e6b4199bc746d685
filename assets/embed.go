package assets

import (
	_ "embed"
	"strings"
)

//go:embed reminder_messages.txt
var reminderMessages string

// ReminderMessages returns the rotation of hydration nudge texts, one per
// line of the embedded file. Blank lines are skipped.
func ReminderMessages() []string {
	var out []string
	for _, line := range strings.Split(reminderMessages, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
