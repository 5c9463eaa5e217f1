package tracking

import (
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/geo"

	"github.com/google/uuid"
)

// PositionSample is one immutable GPS report from a vehicle. Samples are
// append-only; an external batch job prunes the rolling window.
type PositionSample struct {
	ID         uuid.UUID
	VehicleID  uuid.UUID
	DriverID   uuid.UUID
	Latitude   float64
	Longitude  float64
	Speed      float64
	Heading    float64
	Accuracy   float64
	CapturedAt time.Time
	RouteID    *uuid.UUID
}

// NewPositionSample validates coordinates and builds an immutable sample.
// Late or out-of-order captured-at values are accepted; ordering is the
// state store's concern.
func NewPositionSample(vehicleID, driverID uuid.UUID, lat, lon, speed, heading, accuracy float64, capturedAt time.Time, routeID *uuid.UUID) (PositionSample, error) {
	if vehicleID == uuid.Nil || driverID == uuid.Nil {
		return PositionSample{}, errs.Mark(errs.New("vehicle id and driver id are required"), errs.ErrInvalidInput)
	}
	if !(geo.Point{Latitude: lat, Longitude: lon}).Valid() {
		return PositionSample{}, errs.Mark(errs.New("coordinates out of range"), errs.ErrInvalidInput)
	}

	return PositionSample{
		ID:         uuid.New(),
		VehicleID:  vehicleID,
		DriverID:   driverID,
		Latitude:   lat,
		Longitude:  lon,
		Speed:      speed,
		Heading:    heading,
		Accuracy:   accuracy,
		CapturedAt: capturedAt,
		RouteID:    routeID,
	}, nil
}

func (s PositionSample) Point() geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}
