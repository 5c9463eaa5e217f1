package queries

import (
	"context"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/state"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 1000
)

// Persistence ports implemented by internal/infra/repository.

type SampleReader interface {
	History(ctx context.Context, vehicleID uuid.UUID, start, end *time.Time, limit int) ([]tracking.PositionSample, error)
}

type StudentReader interface {
	ListOnBoard(ctx context.Context, vehicleID uuid.UUID) ([]student.Student, error)
}

// Area is a latitude/longitude bounding box.
type Area struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Boxes never span the antimeridian, so east must not be west of west.
func (a Area) valid() bool {
	return a.North >= a.South && a.East >= a.West &&
		a.North <= 90 && a.South >= -90 &&
		a.East <= 180 && a.West >= -180
}

// LocationQueries answers the read side: current state comes from the
// in-memory store, history from the sample log.
type LocationQueries interface {
	CurrentStates(ctx context.Context) []tracking.VehicleState
	VehicleState(ctx context.Context, vehicleID uuid.UUID) (tracking.VehicleState, error)
	RouteVehicles(ctx context.Context, routeID uuid.UUID) []tracking.VehicleState
	VehiclesInArea(ctx context.Context, area Area) ([]tracking.VehicleState, error)
	History(ctx context.Context, vehicleID uuid.UUID, start, end *time.Time, limit int) ([]tracking.PositionSample, error)
	StudentsOnBoard(ctx context.Context, vehicleID uuid.UUID) ([]student.Student, error)
}

type locationQueries struct {
	store    *state.Store
	samples  SampleReader
	students StudentReader
}

func NewLocationQueries(store *state.Store, samples SampleReader, students StudentReader) LocationQueries {
	return &locationQueries{store: store, samples: samples, students: students}
}

func (q *locationQueries) CurrentStates(_ context.Context) []tracking.VehicleState {
	return q.store.Snapshot()
}

func (q *locationQueries) VehicleState(_ context.Context, vehicleID uuid.UUID) (tracking.VehicleState, error) {
	st, ok := q.store.Get(vehicleID)
	if !ok {
		return tracking.VehicleState{}, errs.Mark(errs.New("no known position for vehicle"), errs.ErrNotFound)
	}
	return st, nil
}

func (q *locationQueries) RouteVehicles(_ context.Context, routeID uuid.UUID) []tracking.VehicleState {
	return q.store.ByRoute(routeID)
}

func (q *locationQueries) VehiclesInArea(_ context.Context, area Area) ([]tracking.VehicleState, error) {
	if !area.valid() {
		return nil, errs.Mark(errs.New("invalid bounding box"), errs.ErrInvalidInput)
	}
	return q.store.InArea(area.North, area.South, area.East, area.West), nil
}

func (q *locationQueries) History(ctx context.Context, vehicleID uuid.UUID, start, end *time.Time, limit int) ([]tracking.PositionSample, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return q.samples.History(ctx, vehicleID, start, end, limit)
}

func (q *locationQueries) StudentsOnBoard(ctx context.Context, vehicleID uuid.UUID) ([]student.Student, error) {
	return q.students.ListOnBoard(ctx, vehicleID)
}
