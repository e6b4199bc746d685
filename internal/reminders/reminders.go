// Package reminders decides whether and how the notification service gets
// engaged: the persisted user preference gates everything, then the OS-level
// permission, then the fixed-hour daily plan is installed.
package reminders

import (
	"context"

	"go.uber.org/zap"

	"github.com/axelldev/simple-water/assets"
	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/notify"
	"github.com/axelldev/simple-water/internal/prefs"
)

// Canonical reminder window defaults: a daily trigger every hour from 08:00
// through 21:00.
const (
	DefaultStartHour  = 8
	DefaultEndHour    = 21
	DefaultEveryHours = 1
)

const notificationTitle = "Water Tracker"

// Manager coordinates the reminder preference and the notification service.
// Scheduling failures are logged, never propagated: the reminder feature
// degrades silently and the rest of the app keeps working.
type Manager struct {
	prefs    *prefs.Store
	svc      notify.Service
	log      *zap.Logger
	messages []string
}

func New(p *prefs.Store, svc notify.Service, log *zap.Logger) *Manager {
	return &Manager{
		prefs:    p,
		svc:      svc,
		log:      log,
		messages: assets.ReminderMessages(),
	}
}

// ScheduleDaily replaces the scheduled set with one recurring trigger per
// hour in [startHour, endHour] stepped by everyHours, minute 0. Message
// bodies cycle through the embedded rotation so neighboring reminders read
// differently. Returns the number of triggers installed; zero means the
// feature stayed off (preference not allowed, permission missing, empty
// window, or service rejection).
//
// Once the gates pass, the previous set is cancelled unconditionally, even
// when the new window yields no triggers: the scheduled set is replaceable
// as a whole, so a reschedule never leaves more than the latest request
// installed.
func (m *Manager) ScheduleDaily(ctx context.Context, startHour, endHour, everyHours int) int {
	pref, err := m.prefs.Get(ctx)
	if err != nil {
		m.log.Warn("reminder preference unreadable, leaving reminders off", zap.Error(err))
		return 0
	}
	if pref != domain.PreferenceAllowed {
		m.log.Debug("reminders not scheduled", zap.String("preference", pref.String()))
		return 0
	}

	status, err := m.svc.Permissions(ctx)
	if err != nil {
		m.log.Warn("permission query failed, leaving reminders off", zap.Error(err))
		return 0
	}
	if !status.Authorized() {
		m.log.Info("reminders allowed by user but not authorized by platform",
			zap.String("status", status.String()))
		return 0
	}

	if err := m.svc.CancelAll(ctx); err != nil {
		m.log.Error("cancel previous reminders failed", zap.Error(err))
		return 0
	}

	hours, err := domain.ReminderHours(startHour, endHour, everyHours)
	if err != nil {
		m.log.Warn("invalid reminder window, previous set cancelled",
			zap.Int("startHour", startHour),
			zap.Int("endHour", endHour),
			zap.Int("everyHours", everyHours),
			zap.Error(err),
		)
		return 0
	}
	if len(hours) == 0 {
		m.log.Warn("reminder window is empty, previous set cancelled",
			zap.Int("startHour", startHour), zap.Int("endHour", endHour))
		return 0
	}

	installed := 0
	for i, hour := range hours {
		t := notify.Trigger{
			Hour:    hour,
			Minute:  0,
			Repeats: true,
			Title:   notificationTitle,
			Body:    m.messages[i%len(m.messages)],
		}
		if _, err := m.svc.Schedule(ctx, t); err != nil {
			m.log.Error("schedule reminder failed", zap.Int("hour", hour), zap.Error(err))
			continue
		}
		installed++
	}

	m.log.Info("daily reminders scheduled",
		zap.Int("installed", installed),
		zap.Int("requested", len(hours)),
	)
	return installed
}

// CancelAll removes every scheduled reminder. Idempotent; failures logged.
func (m *Manager) CancelAll(ctx context.Context) {
	if err := m.svc.CancelAll(ctx); err != nil {
		m.log.Error("cancel reminders failed", zap.Error(err))
		return
	}
	m.log.Info("all reminders cancelled")
}

// Enable requests platform permission on explicit user intent, records the
// preference from the prompt's outcome, and schedules the daily plan when
// authorized. A failed prompt leaves the stored preference untouched, so a
// dangling "allowed" is never recorded for a user who was never asked.
// Returns the resolved permission status and the number of triggers
// installed.
func (m *Manager) Enable(ctx context.Context, startHour, endHour, everyHours int) (domain.PermissionStatus, int, error) {
	status, err := m.svc.RequestPermission(ctx)
	if err != nil {
		return status, 0, err
	}

	pref := domain.PreferenceAllowed
	if !status.Authorized() {
		pref = domain.PreferenceDenied
	}
	if err := m.prefs.Set(ctx, pref); err != nil {
		return status, 0, err
	}

	if !status.Authorized() {
		return status, 0, nil
	}
	return status, m.ScheduleDaily(ctx, startHour, endHour, everyHours), nil
}

// Disable records the user's choice and tears the scheduled set down.
func (m *Manager) Disable(ctx context.Context) error {
	if err := m.prefs.Set(ctx, domain.PreferenceDenied); err != nil {
		return err
	}
	m.CancelAll(ctx)
	return nil
}
