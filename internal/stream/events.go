package stream

import (
	"encoding/json"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"

	"github.com/google/uuid"
)

// Event names on the wire. Inbound events come from driver connections;
// outbound events fan out to observers.
const (
	EventLocationUpdate        = "location-update"
	EventStatusChange          = "status-change"
	EventVehicleLocationUpdate = "vehicle-location-update"
	EventRouteVehicleUpdate    = "route-vehicle-update"
	EventError                 = "error"
)

// Envelope is the framing for every streamed message.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// LocationUpdate is the inbound driver position report. The driver id is
// never read from the payload; it is bound at the gate.
type LocationUpdate struct {
	VehicleID uuid.UUID  `json:"vehicleId"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Speed     float64    `json:"speed,omitempty"`
	Heading   float64    `json:"heading,omitempty"`
	Accuracy  float64    `json:"accuracy,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// StatusChange is a free-form vehicle status broadcast, inbound and
// outbound with the same shape.
type StatusChange struct {
	VehicleID uuid.UUID `json:"vehicleId"`
	Status    string    `json:"status"`
}

type locationPayload struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

type vehicleLocationUpdate struct {
	VehicleID uuid.UUID       `json:"vehicleId"`
	DriverID  uuid.UUID       `json:"driverId"`
	Location  locationPayload `json:"location"`
}

type routeVehicleUpdate struct {
	VehicleID uuid.UUID       `json:"vehicleId"`
	Location  locationPayload `json:"location"`
	RouteID   uuid.UUID       `json:"routeId"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func marshalEnvelope(event string, data any) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		return nil
	}
	return msg
}

func newVehicleLocationUpdate(st tracking.VehicleState) []byte {
	return marshalEnvelope(EventVehicleLocationUpdate, vehicleLocationUpdate{
		VehicleID: st.VehicleID,
		DriverID:  st.DriverID,
		Location: locationPayload{
			Latitude:  st.Latitude,
			Longitude: st.Longitude,
			Speed:     st.Speed,
			Heading:   st.Heading,
			Accuracy:  st.Accuracy,
			Timestamp: st.UpdatedAt,
		},
	})
}

func newRouteVehicleUpdate(st tracking.VehicleState, routeID uuid.UUID) []byte {
	return marshalEnvelope(EventRouteVehicleUpdate, routeVehicleUpdate{
		VehicleID: st.VehicleID,
		RouteID:   routeID,
		Location: locationPayload{
			Latitude:  st.Latitude,
			Longitude: st.Longitude,
			Speed:     st.Speed,
			Heading:   st.Heading,
			Accuracy:  st.Accuracy,
			Timestamp: st.UpdatedAt,
		},
	})
}

func newStatusChange(vehicleID uuid.UUID, status string) []byte {
	return marshalEnvelope(EventStatusChange, StatusChange{VehicleID: vehicleID, Status: status})
}

func newErrorEvent(message string) []byte {
	return marshalEnvelope(EventError, errorPayload{Message: message})
}
