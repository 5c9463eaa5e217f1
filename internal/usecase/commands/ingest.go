package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/clock"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/metrics"
	"github.com/MAGNO9/SchoolTrack/internal/state"

	"github.com/google/uuid"
)

// LocationReport is one raw position report from a driver stream. The
// driver identity comes from the connection, never from the payload.
type LocationReport struct {
	VehicleID  uuid.UUID
	Latitude   float64
	Longitude  float64
	Speed      float64
	Heading    float64
	Accuracy   float64
	CapturedAt time.Time
}

type LocationCommands interface {
	IngestLocation(ctx context.Context, driverID uuid.UUID, report LocationReport) (tracking.VehicleState, error)
}

type locationCommands struct {
	vehicles    VehicleReader
	samples     SampleWriter
	store       *state.Store
	broadcaster Broadcaster
	logger      *slog.Logger
	clock       clock.Clock
}

func NewLocationCommands(vehicles VehicleReader, samples SampleWriter, store *state.Store, broadcaster Broadcaster, logger *slog.Logger, clk clock.Clock) LocationCommands {
	return &locationCommands{
		vehicles:    vehicles,
		samples:     samples,
		store:       store,
		broadcaster: broadcaster,
		logger:      logger,
		clock:       clk,
	}
}

// IngestLocation runs the full pipeline for one report: verify the
// driver/vehicle binding, validate, persist, project onto the state store,
// then broadcast. A report rejected at any step updates nothing.
func (c *locationCommands) IngestLocation(ctx context.Context, driverID uuid.UUID, report LocationReport) (tracking.VehicleState, error) {
	v, err := c.vehicles.FindByID(ctx, report.VehicleID)
	if err != nil {
		metrics.SamplesRejected.WithLabelValues(rejectReason(err)).Inc()
		return tracking.VehicleState{}, err
	}
	if !v.AssignedTo(driverID) {
		metrics.SamplesRejected.WithLabelValues("unauthorized").Inc()
		// Possible spoofing attempt; keep the full identity pair in the log.
		c.logger.Warn("location report for unassigned vehicle",
			"driver_id", driverID, "vehicle_id", report.VehicleID)
		return tracking.VehicleState{}, errs.Mark(errs.New("vehicle is not assigned to this driver"), errs.ErrUnauthorized)
	}

	capturedAt := report.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = c.clock.Now()
	}

	sample, err := tracking.NewPositionSample(
		report.VehicleID, driverID,
		report.Latitude, report.Longitude,
		report.Speed, report.Heading, report.Accuracy,
		capturedAt, v.RouteID,
	)
	if err != nil {
		metrics.SamplesRejected.WithLabelValues("invalid_input").Inc()
		return tracking.VehicleState{}, err
	}

	if err := c.samples.InsertSample(ctx, sample); err != nil {
		metrics.SamplesRejected.WithLabelValues("persistence").Inc()
		return tracking.VehicleState{}, err
	}

	st := tracking.StateFromSample(sample, c.clock.Now())
	c.store.Upsert(st)
	c.broadcaster.VehicleLocationUpdated(st)
	metrics.SamplesIngested.Inc()

	return st, nil
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrInvalidInput):
		return "invalid_input"
	case errs.Is(err, errs.ErrPersistence):
		return "persistence"
	default:
		return "error"
	}
}
