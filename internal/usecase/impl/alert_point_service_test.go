package impl

import (
	"context"
	"testing"

	"zonewatch/config"
	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/service"
	"zonewatch/internal/infra/persistence/kv"
	"zonewatch/internal/infra/persistence/kvrepo"
	"zonewatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlertPointSource struct {
	points []entity.AlertPoint
	err    error
}

func (s *fakeAlertPointSource) FetchAll(context.Context) ([]entity.AlertPoint, error) {
	return s.points, s.err
}

func newAlertPointService(source *fakeAlertPointSource) usecase.AlertPointUsecase {
	store := kv.NewMemory()
	cfg := &config.Config{
		Tracker: &config.TrackerConfig{DefaultRadius: 200, MaxRadius: 5000},
	}

	// A nil *fakeAlertPointSource must stay a nil interface.
	var src service.AlertPointSource
	if source != nil {
		src = source
	}

	svc := NewAlertPointService(kvrepo.NewAlertPointRepository(store), src, cfg, newTestLogger())

	return svc
}

func TestAlertPointService_SyncReplacesStoredSet(t *testing.T) {
	ctx := context.Background()
	source := &fakeAlertPointSource{points: []entity.AlertPoint{
		{ID: "a", AlertType: "flood", Latitude: 1, Longitude: 1, Radius: 150},
		{ID: "b", AlertType: "fire", Latitude: 2, Longitude: 2, Radius: 300},
	}}
	svc := newAlertPointService(source)

	imported, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	// A second sync replaces, never merges.
	source.points = source.points[:1]
	imported, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "a", stored[0].ID)
}

func TestAlertPointService_SyncAppliesRadiusBounds(t *testing.T) {
	ctx := context.Background()
	source := &fakeAlertPointSource{points: []entity.AlertPoint{
		{ID: "defaulted", AlertType: "flood", Latitude: 1, Longitude: 1, Radius: 0},
		{ID: "capped", AlertType: "fire", Latitude: 2, Longitude: 2, Radius: 99999},
	}}
	svc := newAlertPointService(source)

	imported, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, float64(200), stored[0].Radius)
	assert.Equal(t, float64(5000), stored[1].Radius)
}

func TestAlertPointService_SyncSkipsInvalidRows(t *testing.T) {
	ctx := context.Background()
	source := &fakeAlertPointSource{points: []entity.AlertPoint{
		{ID: "", AlertType: "flood", Latitude: 1, Longitude: 1, Radius: 100},
		{ID: "bad-lat", AlertType: "fire", Latitude: 120, Longitude: 2, Radius: 100},
		{ID: "good", AlertType: "fire", Latitude: 2, Longitude: 2, Radius: 100},
	}}
	svc := newAlertPointService(source)

	imported, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "good", stored[0].ID)
}

func TestAlertPointService_SyncWithoutSource(t *testing.T) {
	svc := newAlertPointService(nil)

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotConfigured)
}

func TestAlertPointService_SyncPropagatesFetchError(t *testing.T) {
	svc := newAlertPointService(&fakeAlertPointSource{err: errors.New("sheet unreachable")})

	_, err := svc.Sync(context.Background())
	assert.ErrorContains(t, err, "sheet unreachable")
}
