package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/axelldev/simple-water/internal/domain"
	"github.com/axelldev/simple-water/internal/store"
)

func newTestStore() (*Store, *store.MemoryKV) {
	kv := store.NewMemory()
	return New(kv, zap.NewNop()), kv
}

func TestGet_Defaults(t *testing.T) {
	s, _ := newTestStore()

	got := s.Get(context.Background())
	assert.Equal(t, 2000, got.MaxIntakeML)
	assert.Equal(t, 250, got.IntakeAmountML)
}

func TestGet_FallsBackOnStorageFailure(t *testing.T) {
	s, kv := newTestStore()
	kv.FailWith(errors.New("io error"))

	got := s.Get(context.Background())
	assert.Equal(t, 2000, got.MaxIntakeML)
	assert.Equal(t, 250, got.IntakeAmountML)
}

func TestSave_Validation(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	tests := []struct {
		name string
		in   Settings
	}{
		{"zero goal", Settings{MaxIntakeML: 0, IntakeAmountML: 250}},
		{"negative goal", Settings{MaxIntakeML: -100, IntakeAmountML: 250}},
		{"zero serving", Settings{MaxIntakeML: 2000, IntakeAmountML: 0}},
		{"serving exceeds goal", Settings{MaxIntakeML: 2000, IntakeAmountML: 2500}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Save(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Nothing persisted by the failed saves.
	got := s.Get(ctx)
	assert.Equal(t, 2000, got.MaxIntakeML)
	assert.Equal(t, 250, got.IntakeAmountML)
}

func TestSave_PersistsBoth(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	err := s.Save(ctx, Settings{MaxIntakeML: 2000, IntakeAmountML: 250})
	assert.NoError(t, err)

	got := s.Get(ctx)
	assert.Equal(t, Settings{MaxIntakeML: 2000, IntakeAmountML: 250}, got)
}

func TestSave_StorageFailureIsNotInvalidInput(t *testing.T) {
	s, kv := newTestStore()
	boom := errors.New("io error")
	kv.FailWith(boom)

	err := s.Save(context.Background(), Settings{MaxIntakeML: 2000, IntakeAmountML: 250})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyPreset_OverwritesWithoutValidation(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, Settings{MaxIntakeML: 1800, IntakeAmountML: 150}))

	err := s.ApplyPreset(ctx, Preset{Name: "Active", MaxIntakeML: 3000, IntakeAmountML: 300})
	assert.NoError(t, err)

	got := s.Get(ctx)
	assert.Equal(t, 3000, got.MaxIntakeML)
	assert.Equal(t, 300, got.IntakeAmountML)
}

func TestPresets_AllPassValidation(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for _, p := range Presets() {
		err := s.Save(ctx, Settings{MaxIntakeML: p.MaxIntakeML, IntakeAmountML: p.IntakeAmountML})
		assert.NoError(t, err, "preset %s should be a valid configuration", p.Name)
	}
}

func TestRoundTrip_StringConversionIsLossless(t *testing.T) {
	s, kv := newTestStore()
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, Settings{MaxIntakeML: 2000, IntakeAmountML: 250}))

	raw, ok, err := kv.Get(ctx, store.KeyIntakeAmount)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "250", raw)
	assert.Equal(t, 250, s.Get(ctx).IntakeAmountML)
}
