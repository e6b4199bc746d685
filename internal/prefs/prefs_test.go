package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/store"
)

func TestGet_DefaultsToNotDetermined(t *testing.T) {
	s := New(store.NewMemory(), zap.NewNop())

	pref, err := s.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.PreferenceNotDetermined, pref)
}

func TestSetGetClear(t *testing.T) {
	s := New(store.NewMemory(), zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, domain.PreferenceAllowed))
	pref, err := s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.PreferenceAllowed, pref)

	assert.NoError(t, s.Set(ctx, domain.PreferenceDenied))
	pref, err = s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.PreferenceDenied, pref)

	assert.NoError(t, s.Clear(ctx))
	pref, err = s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.PreferenceNotDetermined, pref)
}

func TestGet_UnknownStoredValueReadsAsNotDetermined(t *testing.T) {
	kv := store.NewMemory()
	s := New(kv, zap.NewNop())
	ctx := context.Background()

	_ = kv.Set(ctx, store.KeyAllowReminders, "sometimes")

	pref, err := s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.PreferenceNotDetermined, pref)
}

func TestGet_StorageFailure(t *testing.T) {
	kv := store.NewMemory()
	s := New(kv, zap.NewNop())
	boom := errors.New("io error")
	kv.FailWith(boom)

	pref, err := s.Get(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.PreferenceNotDetermined, pref)
}
