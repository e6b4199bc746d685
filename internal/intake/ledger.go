// Package intake owns the daily water counter: day-boundary resets, reads,
// writes, and the add-water goal rule.
package intake

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/store"
)

// Ledger tracks today's intake against the key-value store.
type Ledger struct {
	kv  store.KV
	log *zap.Logger
	now func() time.Time
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithNow overrides the clock. Tests use it to cross day boundaries.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a Ledger over the given store.
func New(kv store.KV, log *zap.Logger, opts ...Option) *Ledger {
	l := &Ledger{kv: kv, log: log, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckAndResetIfNewDay zeroes the counter when the stored last-reset day is
// absent or differs from today, and stamps today as the last-reset day. Both
// writes land together. Calling it again within the same day is a no-op, so
// callers may invoke it before every read of today's value.
func (l *Ledger) CheckAndResetIfNewDay(ctx context.Context) error {
	today := domain.Today(l.now())

	last, ok, err := l.kv.Get(ctx, store.KeyLastResetDate)
	if err != nil {
		return fmt.Errorf("read last reset date: %w", err)
	}
	if ok && domain.DayID(last) == today {
		return nil
	}

	err = l.kv.SetMany(ctx, map[string]string{
		store.KeyCurrentIntake: "0",
		store.KeyLastResetDate: today.String(),
	})
	if err != nil {
		return fmt.Errorf("reset for new day: %w", err)
	}

	l.log.Info("daily intake reset",
		zap.String("day", today.String()),
		zap.String("previous", last),
	)
	return nil
}

// Intake returns today's recorded intake in milliliters, defaulting to 0 when
// nothing has been stored. It does not perform the day check; sequence
// CheckAndResetIfNewDay first when the value must reflect the current day.
func (l *Ledger) Intake(ctx context.Context) (int, error) {
	raw, ok, err := l.kv.Get(ctx, store.KeyCurrentIntake)
	if err != nil {
		return 0, fmt.Errorf("read intake: %w", err)
	}
	if !ok {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		// Corrupted value; treat as never set rather than failing reads.
		l.log.Warn("stored intake is not a non-negative integer", zap.String("value", raw))
		return 0, nil
	}
	return v, nil
}

// SetIntake persists the counter. No clamping happens here; display clamping
// is the presentation layer's concern.
func (l *Ledger) SetIntake(ctx context.Context, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: intake %d must not be negative", domain.ErrInvalidInput, value)
	}
	if err := l.kv.Set(ctx, store.KeyCurrentIntake, strconv.Itoa(value)); err != nil {
		return fmt.Errorf("write intake: %w", err)
	}
	return nil
}

// Add records one serving and reports whether this add crossed the daily
// goal. The crossing is decided before the write, so it fires exactly once
// per day no matter how far past the goal the user keeps adding.
func (l *Ledger) Add(ctx context.Context, amount, goal int) (total int, goalReached bool, err error) {
	if amount <= 0 {
		return 0, false, fmt.Errorf("%w: serving %d must be positive", domain.ErrInvalidInput, amount)
	}
	if goal <= 0 {
		return 0, false, fmt.Errorf("%w: goal %d must be positive", domain.ErrInvalidInput, goal)
	}

	current, err := l.Intake(ctx)
	if err != nil {
		return 0, false, err
	}

	total, goalReached = domain.AddWater(current, amount, goal)
	if err := l.SetIntake(ctx, total); err != nil {
		return 0, false, err
	}

	if goalReached {
		l.log.Info("daily goal reached", zap.Int("totalML", total), zap.Int("goalML", goal))
	}
	return total, goalReached, nil
}

// Reset zeroes today's counter on explicit user request.
func (l *Ledger) Reset(ctx context.Context) error {
	return l.SetIntake(ctx, 0)
}
