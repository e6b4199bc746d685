package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds daemon configuration loaded from environment variables.
type Config struct {
	DBPath   string `envconfig:"DB_PATH" default:"./data/simple-water.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	// Default reminder window: one daily trigger per step within
	// [start, end], minute 0.
	ReminderStartHour  int `envconfig:"REMINDER_START_HOUR" default:"8"`
	ReminderEndHour    int `envconfig:"REMINDER_END_HOUR" default:"21"`
	ReminderEveryHours int `envconfig:"REMINDER_EVERY_HOURS" default:"1"`

	// Reminders switches the feature on explicit user intent at startup:
	// "on" opts in (permission prompt included), "off" opts out and cancels
	// everything. Empty keeps the stored choice.
	Reminders string `envconfig:"REMINDERS" default:""` // on|off|""
}

// Load reads an optional .env file and then the environment into Config.
func Load() (Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
