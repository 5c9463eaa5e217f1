package repository

import (
	"context"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
)

type CheckinRepository struct {
	db DB
}

func NewCheckinRepository(db DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

func (r *CheckinRepository) InsertEvent(ctx context.Context, ev student.CheckinEvent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO checkin_events (id, student_id, vehicle_id, driver_id, action, resulting_status, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.ID, ev.StudentID, ev.VehicleID, ev.DriverID, ev.Action, ev.Status, ev.OccurredAt,
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to insert check-in event"), errs.ErrPersistence)
	}
	return nil
}
