// Package state holds the in-memory authoritative view of where every
// vehicle is right now. It is a rebuildable projection: the process starts
// empty and repopulates as samples arrive.
package state

import (
	"sync"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/geo"

	"github.com/google/uuid"
)

// Store maps vehicle id to its current state. Reads return copies;
// writes are serialized under one RWMutex. Vehicles are independent, so a
// single coarse lock is enough at fleet sizes this system serves.
type Store struct {
	mu     sync.RWMutex
	states map[uuid.UUID]tracking.VehicleState
}

func NewStore() *Store {
	return &Store{states: make(map[uuid.UUID]tracking.VehicleState)}
}

// Upsert applies a new state in arrival order. A late-arriving sample with
// an older captured-at still wins: ordering is by arrival, not capture time.
func (s *Store) Upsert(v tracking.VehicleState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[v.VehicleID] = v
}

// Get returns a snapshot of one vehicle's state.
func (s *Store) Get(vehicleID uuid.UUID) (tracking.VehicleState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.states[vehicleID]
	return v, ok
}

// Snapshot returns a copy of every known vehicle state.
func (s *Store) Snapshot() []tracking.VehicleState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tracking.VehicleState, 0, len(s.states))
	for _, v := range s.states {
		out = append(out, v)
	}
	return out
}

// ByRoute returns the states of vehicles currently assigned to routeID.
func (s *Store) ByRoute(routeID uuid.UUID) []tracking.VehicleState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []tracking.VehicleState
	for _, v := range s.states {
		if v.RouteID != nil && *v.RouteID == routeID {
			out = append(out, v)
		}
	}
	return out
}

// InArea returns the vehicles whose current position falls inside the
// bounding box.
func (s *Store) InArea(north, south, east, west float64) []tracking.VehicleState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []tracking.VehicleState
	for _, v := range s.states {
		if geo.InBounds(v.Point(), north, south, east, west) {
			out = append(out, v)
		}
	}
	return out
}

// SetOnlineByDriver flips connectivity for every vehicle bound to the
// driver. Called by the gate on connect/disconnect.
func (s *Store) SetOnlineByDriver(driverID uuid.UUID, online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, v := range s.states {
		if v.DriverID == driverID {
			v.Online = online
			s.states[id] = v
		}
	}
}
