package impl

import (
	"context"
	"testing"
	"time"

	"zonewatch/internal/domain/repository"
	"zonewatch/internal/infra/persistence/kv"
	"zonewatch/internal/infra/persistence/kvrepo"
	"zonewatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// muteFixture wires a mute service over an in-memory store with a controllable
// clock.
type muteFixture struct {
	svc  *muteService
	repo repository.MuteSettingsRepository
	now  time.Time
}

func newMuteFixture() *muteFixture {
	f := &muteFixture{
		repo: kvrepo.NewMuteSettingsRepository(kv.NewMemory()),
		now:  time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
	f.svc = &muteService{
		repo:   f.repo,
		logger: newTestLogger(),
		now:    func() time.Time { return f.now },
	}

	return f
}

func (f *muteFixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestMuteService_DefaultIsUnmuted(t *testing.T) {
	ctx := context.Background()
	f := newMuteFixture()

	suppressed, reason := f.svc.IsSuppressed(ctx, "zone-1")
	assert.False(t, suppressed)
	assert.Equal(t, usecase.SuppressNone, reason)
}

func TestMuteService_PermanentMuteSuppressesEverything(t *testing.T) {
	ctx := context.Background()
	f := newMuteFixture()

	require.NoError(t, f.svc.SetMuted(ctx, true))

	suppressed, reason := f.svc.IsSuppressed(ctx, "zone-1")
	assert.True(t, suppressed)
	assert.Equal(t, usecase.SuppressPermanent, reason)

	require.NoError(t, f.svc.SetMuted(ctx, false))

	suppressed, _ = f.svc.IsSuppressed(ctx, "zone-1")
	assert.False(t, suppressed)
}

func TestMuteService_PermanentAndTimedAreMutuallyExclusive(t *testing.T) {
	ctx := context.Background()
	f := newMuteFixture()

	require.NoError(t, f.svc.MuteFor(ctx, 30*time.Minute))
	require.NoError(t, f.svc.SetMuted(ctx, true))

	settings, err := f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.IsMuted)
	assert.Nil(t, settings.MutedUntil)

	require.NoError(t, f.svc.MuteFor(ctx, 30*time.Minute))

	settings, err = f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.IsMuted)
	require.NotNil(t, settings.MutedUntil)
	assert.True(t, settings.MutedUntil.Equal(f.now.Add(30*time.Minute)))
}

func TestMuteService_TimedMuteExpiresLazily(t *testing.T) {
	ctx := context.Background()
	f := newMuteFixture()

	require.NoError(t, f.svc.MuteFor(ctx, 10*time.Minute))

	suppressed, reason := f.svc.IsSuppressed(ctx, "zone-1")
	assert.True(t, suppressed)
	assert.Equal(t, usecase.SuppressTimed, reason)

	f.advance(11 * time.Minute)

	suppressed, reason = f.svc.IsSuppressed(ctx, "zone-1")
	assert.False(t, suppressed)
	assert.Equal(t, usecase.SuppressNone, reason)

	// The expired mute was cleared in storage, not just ignored.
	stored, err := f.repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored.MutedUntil)
}

func TestMuteService_PerAlertMutesAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newMuteFixture()

	require.NoError(t, f.svc.SetAlertMuted(ctx, "zone-a", true))

	suppressed, reason := f.svc.IsSuppressed(ctx, "zone-a")
	assert.True(t, suppressed)
	assert.Equal(t, usecase.SuppressPerAlert, reason)

	suppressed, _ = f.svc.IsSuppressed(ctx, "zone-b")
	assert.False(t, suppressed)

	require.NoError(t, f.svc.SetAlertMuted(ctx, "zone-a", false))

	suppressed, _ = f.svc.IsSuppressed(ctx, "zone-a")
	assert.False(t, suppressed)
}

func TestMuteService_MinutesRemaining(t *testing.T) {
	ctx := context.Background()
	f := newMuteFixture()

	minutes, err := f.svc.MinutesRemaining(ctx)
	require.NoError(t, err)
	assert.Nil(t, minutes)

	require.NoError(t, f.svc.MuteFor(ctx, 10*time.Minute))

	minutes, err = f.svc.MinutesRemaining(ctx)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	assert.Equal(t, 10, *minutes)

	// Partial minutes round up.
	f.advance(9*time.Minute + 30*time.Second)

	minutes, err = f.svc.MinutesRemaining(ctx)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	assert.Equal(t, 1, *minutes)

	// Elapsed mutes read as nil and are cleared.
	f.advance(time.Minute)

	minutes, err = f.svc.MinutesRemaining(ctx)
	require.NoError(t, err)
	assert.Nil(t, minutes)

	stored, err := f.repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored.MutedUntil)
}

func TestMuteService_FailsOpenOnUnreadableSettings(t *testing.T) {
	svc := NewMuteService(brokenMuteRepo{}, newTestLogger())

	suppressed, reason := svc.IsSuppressed(context.Background(), "zone-1")
	assert.False(t, suppressed)
	assert.Equal(t, usecase.SuppressNone, reason)
}
