package notify

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/store"
)

// keyPermissionStatus is the service's own record of the user's decision,
// the analogue of the OS remembering a grant across launches. It is private
// to this package; the app's stores never read it.
const keyPermissionStatus = "notify:permission_status"

// Cron is a local notification service driven by an in-process cron runner.
// Each trigger becomes one cron entry firing daily at its hour and minute.
type Cron struct {
	kv       store.KV
	log      *zap.Logger
	sender   Sender
	prompter Prompter

	mu       sync.Mutex
	runner   *cron.Cron
	status   domain.PermissionStatus
	entries  map[string]cron.EntryID
	triggers map[string]Trigger
}

var _ Service = (*Cron)(nil)

// NewCron builds the service, restoring the persisted permission status.
func NewCron(ctx context.Context, kv store.KV, log *zap.Logger, sender Sender, prompter Prompter) (*Cron, error) {
	status := domain.PermissionUndetermined
	raw, ok, err := kv.Get(ctx, keyPermissionStatus)
	if err != nil {
		return nil, fmt.Errorf("restore permission status: %w", err)
	}
	if ok {
		status = domain.ParsePermissionStatus(raw)
	}

	return &Cron{
		kv:       kv,
		log:      log,
		sender:   sender,
		prompter: prompter,
		runner:   cron.New(),
		status:   status,
		entries:  make(map[string]cron.EntryID),
		triggers: make(map[string]Trigger),
	}, nil
}

// Start begins firing scheduled triggers.
func (c *Cron) Start() { c.runner.Start() }

// Stop halts the runner and waits for any in-flight delivery.
func (c *Cron) Stop() {
	<-c.runner.Stop().Done()
}

// Permissions reports the current authorization. Read-only.
func (c *Cron) Permissions(_ context.Context) (domain.PermissionStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, nil
}

// RequestPermission resolves the permission state machine:
// undetermined prompts once and moves to granted or denied; granted and
// provisional return granted without prompting; denied stays denied and is
// never re-prompted.
func (c *Cron) RequestPermission(ctx context.Context) (domain.PermissionStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.status.Authorized():
		return domain.PermissionGranted, nil
	case c.status == domain.PermissionDenied:
		return domain.PermissionDenied, nil
	}

	granted, err := c.prompter.Prompt(ctx)
	if err != nil {
		return c.status, fmt.Errorf("permission prompt: %w", err)
	}

	next := domain.PermissionDenied
	if granted {
		next = domain.PermissionGranted
	}
	if err := c.kv.Set(ctx, keyPermissionStatus, next.String()); err != nil {
		// The in-memory decision still stands for this session.
		c.log.Warn("persist permission status failed", zap.Error(err))
	}
	c.status = next
	c.log.Info("notification permission resolved", zap.String("status", next.String()))
	return next, nil
}

// Schedule installs one trigger and returns its ID. Scheduling without an
// effective permission fails with ErrNotAuthorized.
func (c *Cron) Schedule(_ context.Context, t Trigger) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.status.Authorized() {
		return "", ErrNotAuthorized
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return "", fmt.Errorf("%w: trigger time %02d:%02d", domain.ErrInvalidInput, t.Hour, t.Minute)
	}

	id := uuid.NewString()
	t.ID = id

	spec := fmt.Sprintf("%d %d * * *", t.Minute, t.Hour)
	entryID, err := c.runner.AddFunc(spec, func() { c.fire(id) })
	if err != nil {
		return "", fmt.Errorf("add trigger: %w", err)
	}

	c.entries[id] = entryID
	c.triggers[id] = t
	return id, nil
}

// fire delivers one trigger and drops it if it does not repeat.
func (c *Cron) fire(id string) {
	c.mu.Lock()
	t, ok := c.triggers[id]
	if ok && !t.Repeats {
		c.removeLocked(id)
	}
	c.mu.Unlock()
	if !ok {
		return
	}

	if err := c.sender.Send(t.Title, t.Body); err != nil {
		c.log.Error("reminder delivery failed",
			zap.String("trigger", id),
			zap.Int("hour", t.Hour),
			zap.Error(err),
		)
	}
}

// CancelAll removes every installed trigger. Idempotent.
func (c *Cron) CancelAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.entries {
		c.removeLocked(id)
	}
	return nil
}

func (c *Cron) removeLocked(id string) {
	if entryID, ok := c.entries[id]; ok {
		c.runner.Remove(entryID)
	}
	delete(c.entries, id)
	delete(c.triggers, id)
}

// Scheduled returns a snapshot of installed triggers ordered by firing time.
func (c *Cron) Scheduled(_ context.Context) ([]Trigger, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Trigger, 0, len(c.triggers))
	for _, t := range c.triggers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hour != out[j].Hour {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Minute < out[j].Minute
	})
	return out, nil
}
