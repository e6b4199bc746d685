package store

import "context"

// Persisted keys. Every entity is read and written whole under one key.
const (
	KeyCurrentIntake  = "water:current_intake"
	KeyLastResetDate  = "water:last_reset_date"
	KeyMaxIntake      = "water:max_intake"
	KeyIntakeAmount   = "water:intake_amount"
	KeyAllowReminders = "water:allow_reminders"
)

// KV is a durable string key-value store. An absent key is reported through
// the ok flag, not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany persists all entries or none of them.
	SetMany(ctx context.Context, entries map[string]string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
