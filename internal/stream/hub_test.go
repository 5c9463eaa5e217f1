//go:build unit

package stream

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(routeID *uuid.UUID) *Client {
	cfg := config.NewTestConfig().Stream
	return &Client{
		send:    make(chan []byte, cfg.SendBufferSize),
		routeID: routeID,
		cfg:     cfg,
	}
}

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case raw := <-c.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return Envelope{}
	}
}

func TestHubBroadcastAllObservers(t *testing.T) {
	hub := NewHub(slog.Default())
	a := testClient(nil)
	b := testClient(nil)
	hub.addObserver(a)
	hub.addObserver(b)

	st := tracking.VehicleState{
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Latitude:  20.40,
		Longitude: -99.97,
		UpdatedAt: time.Now(),
	}
	hub.VehicleLocationUpdated(st)

	for _, c := range []*Client{a, b} {
		env := receive(t, c)
		assert.Equal(t, EventVehicleLocationUpdate, env.Event)
	}
}

func TestHubRouteScoping(t *testing.T) {
	hub := NewHub(slog.Default())
	routeID := uuid.New()
	otherRoute := uuid.New()

	onRoute := testClient(&routeID)
	offRoute := testClient(&otherRoute)
	hub.addObserver(onRoute)
	hub.addObserver(offRoute)

	st := tracking.VehicleState{
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		RouteID:   &routeID,
		Latitude:  20.40,
		Longitude: -99.97,
		UpdatedAt: time.Now(),
	}
	hub.VehicleLocationUpdated(st)

	// Both get the all-vehicles event.
	require.Equal(t, EventVehicleLocationUpdate, receive(t, onRoute).Event)
	require.Equal(t, EventVehicleLocationUpdate, receive(t, offRoute).Event)

	// Only the subscriber of the vehicle's route gets the scoped event.
	env := receive(t, onRoute)
	assert.Equal(t, EventRouteVehicleUpdate, env.Event)
	select {
	case msg := <-offRoute.send:
		t.Fatalf("unexpected message on other route: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubSlowObserverDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub(slog.Default())
	slow := testClient(nil)
	slow.send = make(chan []byte, 1)
	hub.addObserver(slow)

	st := tracking.VehicleState{VehicleID: uuid.New(), DriverID: uuid.New()}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.VehicleLocationUpdated(st)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on slow observer")
	}
	assert.Len(t, slow.send, 1)
}

func TestHubDriverBinding(t *testing.T) {
	hub := NewHub(slog.Default())
	driverID := uuid.New()

	first := testClient(nil)
	hub.bindDriver(driverID, first)
	require.True(t, hub.DriverConnected(driverID))

	// Reconnect replaces the binding; unbinding the stale connection must
	// not evict the fresh one.
	second := testClient(nil)
	hub.bindDriver(driverID, second)
	assert.False(t, hub.unbindDriver(driverID, first))
	assert.True(t, hub.DriverConnected(driverID))

	assert.True(t, hub.unbindDriver(driverID, second))
	assert.False(t, hub.DriverConnected(driverID))
}
