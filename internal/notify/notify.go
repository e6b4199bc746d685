// Package notify wraps the platform notification service: permission state
// and the set of scheduled reminder triggers.
package notify

import (
	"context"
	"errors"

	"github.com/axelldev/simple-water/internal/domain"
)

// ErrNotAuthorized is returned when scheduling is attempted without an
// effective notification permission.
var ErrNotAuthorized = errors.New("notifications not authorized")

// Trigger describes one scheduled reminder: a daily firing time and content.
type Trigger struct {
	ID      string
	Hour    int
	Minute  int
	Repeats bool
	Title   string
	Body    string
}

// Service is the notification scheduler surface the app talks to. The whole
// scheduled set is treated as replaceable: callers cancel all and reinstall.
type Service interface {
	// Permissions reports the current authorization without side effects.
	Permissions(ctx context.Context) (domain.PermissionStatus, error)
	// RequestPermission prompts the user unless the outcome is already
	// settled: an authorized status returns granted without prompting, and
	// denied is terminal (the platform forbids re-prompting).
	RequestPermission(ctx context.Context) (domain.PermissionStatus, error)
	Schedule(ctx context.Context, t Trigger) (id string, err error)
	CancelAll(ctx context.Context) error
	// Scheduled enumerates installed triggers, for diagnostics.
	Scheduled(ctx context.Context) ([]Trigger, error)
}

// Sender delivers one notification to the user.
type Sender interface {
	Send(title, body string) error
}

// Prompter answers the system permission prompt: true means the user granted.
type Prompter interface {
	Prompt(ctx context.Context) (bool, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context) (bool, error)

func (f PrompterFunc) Prompt(ctx context.Context) (bool, error) { return f(ctx) }
