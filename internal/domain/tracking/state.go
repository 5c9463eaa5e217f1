package tracking

import (
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/geo"

	"github.com/google/uuid"
)

// VehicleState is the current best-known view of one vehicle. It is a
// derived projection owned by the state store: rebuilt from scratch on
// restart as new samples arrive.
type VehicleState struct {
	VehicleID uuid.UUID  `json:"vehicleId"`
	DriverID  uuid.UUID  `json:"driverId"`
	RouteID   *uuid.UUID `json:"routeId,omitempty"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Speed     float64    `json:"speed"`
	Heading   float64    `json:"heading"`
	Accuracy  float64    `json:"accuracy"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Online    bool       `json:"online"`
}

// StateFromSample projects a sample onto a fresh state snapshot.
func StateFromSample(s PositionSample, updatedAt time.Time) VehicleState {
	return VehicleState{
		VehicleID: s.VehicleID,
		DriverID:  s.DriverID,
		RouteID:   s.RouteID,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Speed:     s.Speed,
		Heading:   s.Heading,
		Accuracy:  s.Accuracy,
		UpdatedAt: updatedAt,
		Online:    true,
	}
}

func (v VehicleState) Point() geo.Point {
	return geo.Point{Latitude: v.Latitude, Longitude: v.Longitude}
}
