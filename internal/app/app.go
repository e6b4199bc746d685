package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/config"
	"github.com/axelldev/simple-water/internal/intake"
	"github.com/axelldev/simple-water/internal/notify"
	"github.com/axelldev/simple-water/internal/prefs"
	"github.com/axelldev/simple-water/internal/reminders"
	"github.com/axelldev/simple-water/internal/settings"
	"github.com/axelldev/simple-water/internal/store"
)

// dayCheckInterval is how often the running daemon re-checks the day
// boundary so the counter zeroes shortly after midnight.
const dayCheckInterval = time.Minute

type App struct {
	cfg config.Config
	log *zap.Logger

	kv        store.KV
	ledger    *intake.Ledger
	settings  *settings.Store
	prefs     *prefs.Store
	notifySvc *notify.Cron
	reminders *reminders.Manager
}

func New(cfg config.Config, log *zap.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// logSender delivers reminders to the process log. A platform front end
// replaces it with a real notification sink.
type logSender struct{ log *zap.Logger }

func (s logSender) Send(title, body string) error {
	s.log.Info("reminder", zap.String("title", title), zap.String("body", body))
	return nil
}

// consentPrompter answers permission prompts for the headless daemon. The
// prompt only ever fires on explicit user intent (REMINDERS=on runs
// reminders.Enable), where the user has already said yes, so the answer is
// a grant.
type consentPrompter struct{}

func (consentPrompter) Prompt(context.Context) (bool, error) { return true, nil }

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting simple-water",
		zap.String("db", a.cfg.DBPath),
		zap.Int("reminderStartHour", a.cfg.ReminderStartHour),
		zap.Int("reminderEndHour", a.cfg.ReminderEndHour),
	)

	kv, err := store.OpenSQLite(ctx, a.cfg.DBPath)
	if err != nil {
		a.log.Error("open sqlite failed", zap.Error(err))
		return err
	}
	a.kv = kv
	a.log.Info("sqlite ready")

	a.ledger = intake.New(kv, a.log)
	a.settings = settings.New(kv, a.log)
	a.prefs = prefs.New(kv, a.log)

	svc, err := notify.NewCron(ctx, kv, a.log, logSender{log: a.log}, consentPrompter{})
	if err != nil {
		a.log.Error("notification service init failed", zap.Error(err))
		_ = kv.Close()
		return err
	}
	a.notifySvc = svc
	a.reminders = reminders.New(a.prefs, svc, a.log)

	// The counter must reflect today before anything reads it.
	if err := a.ledger.CheckAndResetIfNewDay(ctx); err != nil {
		a.log.Error("day check failed", zap.Error(err))
		_ = kv.Close()
		return err
	}

	current, err := a.ledger.Intake(ctx)
	if err != nil {
		a.log.Warn("intake read failed, showing 0", zap.Error(err))
	}
	cfgVals := a.settings.Get(ctx)
	a.log.Info("tracker state",
		zap.Int("intakeML", current),
		zap.Int("goalML", cfgVals.MaxIntakeML),
		zap.Int("servingML", cfgVals.IntakeAmountML),
	)

	svc.Start()

	switch a.cfg.Reminders {
	case "on":
		// Explicit opt-in from the environment; this is the one path that
		// may prompt for permission.
		status, installed, err := a.reminders.Enable(ctx,
			a.cfg.ReminderStartHour, a.cfg.ReminderEndHour, a.cfg.ReminderEveryHours)
		if err != nil {
			a.log.Error("enable reminders failed", zap.Error(err))
			break
		}
		a.log.Info("reminders enabled",
			zap.String("permission", status.String()),
			zap.Int("installed", installed),
		)
	case "off":
		if err := a.reminders.Disable(ctx); err != nil {
			a.log.Error("disable reminders failed", zap.Error(err))
		}
	default:
		// Re-engage the scheduler from persisted state. Only the stored
		// preference and the stored permission are consulted; no prompt.
		a.reminders.ScheduleDaily(ctx,
			a.cfg.ReminderStartHour, a.cfg.ReminderEndHour, a.cfg.ReminderEveryHours)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(dayCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")
			a.notifySvc.Stop()
			if err := a.kv.Close(); err != nil {
				a.log.Warn("store close error", zap.Error(err))
			}
			return nil

		case <-ticker.C:
			if err := a.ledger.CheckAndResetIfNewDay(ctx); err != nil {
				a.log.Error("day check failed", zap.Error(err))
			}
		}
	}
}
