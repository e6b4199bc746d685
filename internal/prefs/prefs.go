// Package prefs persists the user's tri-state reminder choice. It is pure
// storage; deciding when the state transitions belongs to the caller.
package prefs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/store"
)

type Store struct {
	kv  store.KV
	log *zap.Logger
}

func New(kv store.KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Get returns the persisted preference, defaulting to not-determined when
// nothing is stored. An unrecognized stored value also reads as
// not-determined rather than failing.
func (s *Store) Get(ctx context.Context) (domain.Preference, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyAllowReminders)
	if err != nil {
		return domain.PreferenceNotDetermined, fmt.Errorf("read reminder preference: %w", err)
	}
	if !ok {
		return domain.PreferenceNotDetermined, nil
	}

	pref, err := domain.ParsePreference(raw)
	if err != nil {
		s.log.Warn("unknown stored reminder preference", zap.String("value", raw))
		return domain.PreferenceNotDetermined, nil
	}
	return pref, nil
}

// Set persists the preference.
func (s *Store) Set(ctx context.Context, pref domain.Preference) error {
	if err := s.kv.Set(ctx, store.KeyAllowReminders, pref.String()); err != nil {
		return fmt.Errorf("write reminder preference: %w", err)
	}
	return nil
}

// Clear removes the stored preference, returning it to not-determined.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, store.KeyAllowReminders); err != nil {
		return fmt.Errorf("clear reminder preference: %w", err)
	}
	return nil
}
