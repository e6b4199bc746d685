// Package settings owns the user-configured daily goal and serving size.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/store"
)

var validate = validator.New()

// Settings holds the two user-tunable intake values, in milliliters.
type Settings struct {
	MaxIntakeML    int `validate:"gt=0"`
	IntakeAmountML int `validate:"gt=0,ltefield=MaxIntakeML"`
}

// Preset is a trusted goal/serving pair offered as a one-tap configuration.
type Preset struct {
	Name           string
	MaxIntakeML    int
	IntakeAmountML int
}

// Presets returns the built-in configurations.
func Presets() []Preset {
	return []Preset{
		{Name: "Light", MaxIntakeML: 1500, IntakeAmountML: 200},
		{Name: "Standard", MaxIntakeML: 2000, IntakeAmountML: 250},
		{Name: "Active", MaxIntakeML: 3000, IntakeAmountML: 300},
		{Name: "Athletic", MaxIntakeML: 4000, IntakeAmountML: 400},
	}
}

// Store reads and writes Settings against the key-value store.
type Store struct {
	kv  store.KV
	log *zap.Logger
}

func New(kv store.KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Get returns the persisted settings. Absent, unreadable, or corrupted values
// fall back per field to the defaults (2000ml goal, 250ml serving).
func (s *Store) Get(ctx context.Context) Settings {
	return Settings{
		MaxIntakeML:    s.readInt(ctx, store.KeyMaxIntake, domain.DefaultDailyGoalML),
		IntakeAmountML: s.readInt(ctx, store.KeyIntakeAmount, domain.DefaultServingML),
	}
}

func (s *Store) readInt(ctx context.Context, key string, fallback int) int {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("settings read failed, using default",
			zap.String("key", key), zap.Int("default", fallback), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		s.log.Warn("stored setting is not a positive integer, using default",
			zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return v
}

// Save validates and persists both settings together. Validation failures
// return ErrInvalidInput with a corrective message and persist nothing; the
// write itself is both-or-neither.
func (s *Store) Save(ctx context.Context, in Settings) error {
	if err := validate.Struct(in); err != nil {
		return invalidInput(err)
	}
	if err := s.writeBoth(ctx, in.MaxIntakeML, in.IntakeAmountML); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.Info("settings saved",
		zap.Int("maxIntakeML", in.MaxIntakeML),
		zap.Int("intakeAmountML", in.IntakeAmountML),
	)
	return nil
}

// ApplyPreset persists a preset without validation; presets are trusted
// constants and always overwrite both stored values.
func (s *Store) ApplyPreset(ctx context.Context, p Preset) error {
	if err := s.writeBoth(ctx, p.MaxIntakeML, p.IntakeAmountML); err != nil {
		return fmt.Errorf("apply preset %s: %w", p.Name, err)
	}
	s.log.Info("preset applied",
		zap.String("preset", p.Name),
		zap.Int("maxIntakeML", p.MaxIntakeML),
		zap.Int("intakeAmountML", p.IntakeAmountML),
	)
	return nil
}

func (s *Store) writeBoth(ctx context.Context, maxIntake, intakeAmount int) error {
	return s.kv.SetMany(ctx, map[string]string{
		store.KeyMaxIntake:    strconv.Itoa(maxIntake),
		store.KeyIntakeAmount: strconv.Itoa(intakeAmount),
	})
}

// invalidInput maps a validator error to ErrInvalidInput with the message the
// user needs to correct the form.
func invalidInput(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch {
		case fe.Field() == "MaxIntakeML":
			return fmt.Errorf("%w: daily goal must be greater than 0", domain.ErrInvalidInput)
		case fe.Tag() == "ltefield":
			return fmt.Errorf("%w: serving amount cannot exceed the daily goal", domain.ErrInvalidInput)
		default:
			return fmt.Errorf("%w: serving amount must be greater than 0", domain.ErrInvalidInput)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
