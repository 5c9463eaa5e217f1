package repository

import (
	"context"

	"github.com/MAGNO9/SchoolTrack/internal/domain/vehicle"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

const vehicleColumns = `id, license_plate, brand, model, status, driver_id, route_id`

func scanVehicle(row pgx.Row) (vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	err := row.Scan(&v.ID, &v.LicensePlate, &v.Brand, &v.Model, &v.Status, &v.DriverID, &v.RouteID)
	return v, err
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (vehicle.Vehicle, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return vehicle.Vehicle{}, errs.Mark(errs.Wrap(err, "vehicle not found"), errs.ErrNotFound)
		}
		return vehicle.Vehicle{}, errs.Mark(errs.Wrap(err, "failed to find vehicle"), errs.ErrPersistence)
	}
	return v, nil
}

func (r *VehicleRepository) FindByDriver(ctx context.Context, driverID uuid.UUID) (vehicle.Vehicle, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE driver_id = $1`, driverID)
	v, err := scanVehicle(row)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return vehicle.Vehicle{}, errs.Mark(errs.Wrap(err, "no vehicle assigned to driver"), errs.ErrNotFound)
		}
		return vehicle.Vehicle{}, errs.Mark(errs.Wrap(err, "failed to find vehicle by driver"), errs.ErrPersistence)
	}
	return v, nil
}

func (r *VehicleRepository) ListByRoute(ctx context.Context, routeID uuid.UUID) ([]vehicle.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE route_id = $1 ORDER BY license_plate`, routeID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list vehicles by route"), errs.ErrPersistence)
	}
	defer rows.Close()

	var vehicles []vehicle.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan vehicle"), errs.ErrPersistence)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read vehicles"), errs.ErrPersistence)
	}
	return vehicles, nil
}
