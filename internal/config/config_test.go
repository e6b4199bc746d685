package config

import "testing"

func TestLoad_RemindersSwitch(t *testing.T) {
	for _, value := range []string{"on", "off", ""} {
		t.Setenv("REMINDERS", value)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Reminders != value {
			t.Fatalf("want reminders switch %q, got %q", value, cfg.Reminders)
		}
	}
}

func TestLoad_ReminderWindowOverrides(t *testing.T) {
	t.Setenv("REMINDER_START_HOUR", "9")
	t.Setenv("REMINDER_END_HOUR", "18")
	t.Setenv("REMINDER_EVERY_HOURS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReminderStartHour != 9 || cfg.ReminderEndHour != 18 || cfg.ReminderEveryHours != 3 {
		t.Fatalf("window overrides not applied: %+v", cfg)
	}
}
