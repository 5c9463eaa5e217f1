package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/clock"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/geo"
	"github.com/MAGNO9/SchoolTrack/internal/state"

	"github.com/google/uuid"
)

// FallbackSpeedKmh is the assumed urban bus speed when no routing
// provider is reachable.
const FallbackSpeedKmh = 30.0

// RouteEstimate is one routed leg between two points.
type RouteEstimate struct {
	DistanceKm float64
	Duration   time.Duration
}

// RoutingProvider is the external road-routing service. Implemented by
// internal/infra/routing.
type RoutingProvider interface {
	Route(ctx context.Context, from, to geo.Point) (RouteEstimate, error)
}

// ETA is an arrival estimate for one vehicle against one destination.
type ETA struct {
	VehicleID  uuid.UUID `json:"vehicleId"`
	DistanceKm float64   `json:"distanceKm"`
	DurationS  int64     `json:"durationSeconds"`
	ArrivalAt  time.Time `json:"arrivalAt"`
	Source     string    `json:"source"` // provider / fallback
}

type ETAQueries interface {
	// EstimateArrival estimates when the vehicle reaches the destination.
	// Provider failures degrade to a straight-line estimate; the only
	// errors are an unknown vehicle or an invalid destination.
	EstimateArrival(ctx context.Context, vehicleID uuid.UUID, destination geo.Point) (ETA, error)
}

type etaQueries struct {
	store   *state.Store
	routing RoutingProvider
	logger  *slog.Logger
	clock   clock.Clock
}

func NewETAQueries(store *state.Store, routing RoutingProvider, logger *slog.Logger, clk clock.Clock) ETAQueries {
	return &etaQueries{store: store, routing: routing, logger: logger, clock: clk}
}

func (q *etaQueries) EstimateArrival(ctx context.Context, vehicleID uuid.UUID, destination geo.Point) (ETA, error) {
	if !destination.Valid() {
		return ETA{}, errs.Mark(errs.New("destination out of range"), errs.ErrInvalidInput)
	}
	st, ok := q.store.Get(vehicleID)
	if !ok {
		return ETA{}, errs.Mark(errs.New("no known position for vehicle"), errs.ErrNotFound)
	}

	from := st.Point()
	now := q.clock.Now()

	if q.routing != nil {
		est, err := q.routing.Route(ctx, from, destination)
		if err == nil {
			return ETA{
				VehicleID:  vehicleID,
				DistanceKm: est.DistanceKm,
				DurationS:  int64(est.Duration / time.Second),
				ArrivalAt:  now.Add(est.Duration),
				Source:     "provider",
			}, nil
		}
		q.logger.Warn("routing provider unavailable, using straight-line estimate",
			"vehicle_id", vehicleID, "error", err)
	}

	distance := geo.Distance(from, destination)
	duration := time.Duration(distance / FallbackSpeedKmh * float64(time.Hour))
	return ETA{
		VehicleID:  vehicleID,
		DistanceKm: distance,
		DurationS:  int64(duration / time.Second),
		ArrivalAt:  now.Add(duration),
		Source:     "fallback",
	}, nil
}
