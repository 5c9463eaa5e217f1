//go:build unit

package state_test

import (
	"sync"
	"testing"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/state"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(vehicleID, driverID uuid.UUID, lat, lon float64, at time.Time) tracking.VehicleState {
	return tracking.VehicleState{
		VehicleID: vehicleID,
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lon,
		Speed:     12,
		UpdatedAt: at,
		Online:    true,
	}
}

func TestStoreReadAfterWrite(t *testing.T) {
	store := state.NewStore()
	vehicleID := uuid.New()
	now := time.Now()

	want := newState(vehicleID, uuid.New(), 20.40, -99.97, now)
	store.Upsert(want)

	got, ok := store.Get(vehicleID)
	require.True(t, ok)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreArrivalOrderWins(t *testing.T) {
	store := state.NewStore()
	vehicleID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	newer := newState(vehicleID, driverID, 20.50, -99.90, now)
	older := newState(vehicleID, driverID, 20.40, -99.97, now.Add(-time.Minute))

	store.Upsert(newer)
	// The older-captured sample arrives later and still overwrites.
	store.Upsert(older)

	got, ok := store.Get(vehicleID)
	require.True(t, ok)
	assert.Equal(t, older.Latitude, got.Latitude)
	assert.Equal(t, older.UpdatedAt, got.UpdatedAt)
}

func TestStoreByRouteAndArea(t *testing.T) {
	store := state.NewStore()
	routeID := uuid.New()
	now := time.Now()

	onRoute := newState(uuid.New(), uuid.New(), 20.40, -99.97, now)
	onRoute.RouteID = &routeID
	offRoute := newState(uuid.New(), uuid.New(), 25.00, -100.50, now)

	store.Upsert(onRoute)
	store.Upsert(offRoute)

	byRoute := store.ByRoute(routeID)
	require.Len(t, byRoute, 1)
	assert.Equal(t, onRoute.VehicleID, byRoute[0].VehicleID)

	inArea := store.InArea(21, 20, -99, -100)
	require.Len(t, inArea, 1)
	assert.Equal(t, onRoute.VehicleID, inArea[0].VehicleID)

	assert.Len(t, store.Snapshot(), 2)
}

func TestStoreSetOnlineByDriver(t *testing.T) {
	store := state.NewStore()
	driverID := uuid.New()
	vehicleID := uuid.New()

	store.Upsert(newState(vehicleID, driverID, 20.40, -99.97, time.Now()))
	store.SetOnlineByDriver(driverID, false)

	got, ok := store.Get(vehicleID)
	require.True(t, ok)
	assert.False(t, got.Online)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := state.NewStore()
	vehicleID := uuid.New()
	driverID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.Upsert(newState(vehicleID, driverID, float64(i%90), 0, time.Now()))
		}(i)
		go func() {
			defer wg.Done()
			store.Get(vehicleID)
			store.Snapshot()
		}()
	}
	wg.Wait()

	_, ok := store.Get(vehicleID)
	assert.True(t, ok)
}
