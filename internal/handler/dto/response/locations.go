package response

import (
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleStateResponse struct {
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

func FromVehicleState(st tracking.VehicleState) VehicleStateResponse {
	return VehicleStateResponse{
		VehicleID: st.VehicleID,
		DriverID:  st.DriverID,
		RouteID:   st.RouteID,
		Latitude:  st.Latitude,
		Longitude: st.Longitude,
		Speed:     st.Speed,
		Heading:   st.Heading,
		Accuracy:  st.Accuracy,
		UpdatedAt: st.UpdatedAt,
		Online:    st.Online,
	}
}

func FromVehicleStates(states []tracking.VehicleState) []VehicleStateResponse {
	out := make([]VehicleStateResponse, len(states))
	for i, st := range states {
		out[i] = FromVehicleState(st)
	}
	return out
}

// VehicleListResponse is the envelope for the current and area queries.
type VehicleListResponse struct {
	Vehicles []VehicleStateResponse `json:"vehicles"`
}

func NewVehicleListResponse(states []tracking.VehicleState) VehicleListResponse {
	return VehicleListResponse{Vehicles: FromVehicleStates(states)}
}

type PositionSampleResponse struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicleId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      float64   `json:"speed"`
	Heading    float64   `json:"heading"`
	Accuracy   float64   `json:"accuracy"`
	CapturedAt time.Time `json:"capturedAt"`
}

type HistoryResponse struct {
	History []PositionSampleResponse `json:"history"`
}

func NewHistoryResponse(samples []tracking.PositionSample) HistoryResponse {
	out := make([]PositionSampleResponse, len(samples))
	for i, s := range samples {
		out[i] = PositionSampleResponse{
			ID:         s.ID,
			VehicleID:  s.VehicleID,
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			Speed:      s.Speed,
			Heading:    s.Heading,
			Accuracy:   s.Accuracy,
			CapturedAt: s.CapturedAt,
		}
	}
	return HistoryResponse{History: out}
}

// RouteVehiclesResponse pairs each vehicle with its last known location,
// the shape route observers consume.
type RouteVehiclesResponse struct {
	RouteID  uuid.UUID              `json:"routeId"`
	Vehicles []RouteVehicleResponse `json:"vehicles"`
}

type RouteVehicleResponse struct {
	Vehicle  RouteVehicleInfo `json:"vehicle"`
	Location LocationInfo     `json:"location"`
}

type RouteVehicleInfo struct {
	ID       uuid.UUID `json:"id"`
	DriverID uuid.UUID `json:"driverId"`
	Online   bool      `json:"online"`
}

type LocationInfo struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRouteVehiclesResponse(routeID uuid.UUID, states []tracking.VehicleState) RouteVehiclesResponse {
	out := make([]RouteVehicleResponse, len(states))
	for i, st := range states {
		out[i] = RouteVehicleResponse{
			Vehicle: RouteVehicleInfo{
				ID:       st.VehicleID,
				DriverID: st.DriverID,
				Online:   st.Online,
			},
			Location: LocationInfo{
				Latitude:  st.Latitude,
				Longitude: st.Longitude,
				Speed:     st.Speed,
				Heading:   st.Heading,
				Accuracy:  st.Accuracy,
				Timestamp: st.UpdatedAt,
			},
		}
	}
	return RouteVehiclesResponse{RouteID: routeID, Vehicles: out}
}

// ETAResponse reports duration in milliseconds and distance in meters,
// the units route collaborators expect.
type ETAResponse struct {
	VehicleID uuid.UUID `json:"vehicleId"`
	Duration  int64     `json:"duration"`
	Distance  float64   `json:"distance"`
	ArrivalAt time.Time `json:"arrivalAt"`
	Source    string    `json:"source"`
}

func FromETA(eta queries.ETA) ETAResponse {
	return ETAResponse{
		VehicleID: eta.VehicleID,
		Duration:  eta.DurationS * 1000,
		Distance:  eta.DistanceKm * 1000,
		ArrivalAt: eta.ArrivalAt,
		Source:    eta.Source,
	}
}
