package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LocationRepository persists the append-only position sample log.
type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func (r *LocationRepository) InsertSample(ctx context.Context, s tracking.PositionSample) error {
	const query = `
		INSERT INTO position_samples
			(id, vehicle_id, driver_id, latitude, longitude, speed, heading, accuracy, captured_at, route_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.VehicleID, s.DriverID, s.Latitude, s.Longitude,
		s.Speed, s.Heading, s.Accuracy, s.CapturedAt, s.RouteID,
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to insert position sample"), errs.ErrPersistence)
	}
	return nil
}

// History returns samples for one vehicle, newest first, bounded by the
// optional capture-time window and the limit.
func (r *LocationRepository) History(ctx context.Context, vehicleID uuid.UUID, start, end *time.Time, limit int) ([]tracking.PositionSample, error) {
	query := `
		SELECT id, vehicle_id, driver_id, latitude, longitude, speed, heading, accuracy, captured_at, route_id
		FROM position_samples
		WHERE vehicle_id = $1`
	args := []any{vehicleID}

	if start != nil {
		args = append(args, *start)
		query += ` AND captured_at >= $` + strconv.Itoa(len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += ` AND captured_at <= $` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY captured_at DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to query position history"), errs.ErrPersistence)
	}
	defer rows.Close()

	var samples []tracking.PositionSample
	for rows.Next() {
		var s tracking.PositionSample
		if err := rows.Scan(&s.ID, &s.VehicleID, &s.DriverID, &s.Latitude, &s.Longitude,
			&s.Speed, &s.Heading, &s.Accuracy, &s.CapturedAt, &s.RouteID); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan position sample"), errs.ErrPersistence)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read position history"), errs.ErrPersistence)
	}
	return samples, nil
}
