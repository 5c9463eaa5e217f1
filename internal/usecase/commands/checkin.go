package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/domain/vehicle"
	"github.com/MAGNO9/SchoolTrack/internal/notify"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/clock"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/metrics"

	"github.com/google/uuid"
)

// ScanResult is the outcome of one accepted scan.
type ScanResult struct {
	Student        student.Student
	Action         student.Action
	ResultingState student.Status
	OccurredAt     time.Time
}

type CheckinCommands interface {
	// Scan resolves a check-in token against the scanning driver's vehicle
	// and applies the pickup or drop-off transition.
	Scan(ctx context.Context, driver user.AuthorizedUser, vehicleID uuid.UUID, token string, action student.Action) (ScanResult, error)
}

type checkinCommands struct {
	students  StudentReader
	vehicles  VehicleReader
	uow       CheckinUnitOfWork
	guardians GuardianReader
	jobs      JobEnqueuer
	logger    *slog.Logger
	clock     clock.Clock
}

func NewCheckinCommands(students StudentReader, vehicles VehicleReader, uow CheckinUnitOfWork, guardians GuardianReader, jobs JobEnqueuer, logger *slog.Logger, clk clock.Clock) CheckinCommands {
	return &checkinCommands{
		students:  students,
		vehicles:  vehicles,
		uow:       uow,
		guardians: guardians,
		jobs:      jobs,
		logger:    logger,
		clock:     clk,
	}
}

func (c *checkinCommands) Scan(ctx context.Context, driver user.AuthorizedUser, vehicleID uuid.UUID, token string, action student.Action) (ScanResult, error) {
	st, err := c.students.FindByToken(ctx, token)
	if err != nil {
		metrics.CheckinScans.WithLabelValues(string(action), "error").Inc()
		return ScanResult{}, err
	}

	v, err := c.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		metrics.CheckinScans.WithLabelValues(string(action), "error").Inc()
		return ScanResult{}, err
	}
	if !v.AssignedTo(driver.ID) {
		metrics.CheckinScans.WithLabelValues(string(action), "error").Inc()
		return ScanResult{}, errs.Mark(errs.New("vehicle is not assigned to this driver"), errs.ErrForbidden)
	}

	resulting, err := student.NewStatusMachine(st.Status).Apply(ctx, action)
	if err != nil {
		metrics.CheckinScans.WithLabelValues(string(action), "error").Inc()
		return ScanResult{}, err
	}

	now := c.clock.Now()
	update := student.StatusUpdate{
		Status:    resulting,
		UpdatedAt: now,
	}
	if action == student.ActionPickup {
		update.LastSeenAt = v.Descriptor()
		update.AssignedVehicleID = &v.ID
	} else {
		update.LastSeenAt = "school"
		update.AssignedVehicleID = nil
	}

	// Status update and audit event land in one transaction; a failed
	// event insert rolls the status change back.
	ev := student.NewCheckinEvent(st.ID, v.ID, driver.ID, action, resulting, now)
	err = c.uow.Within(ctx, func(ctx context.Context, tx CheckinTx) error {
		if err := tx.ApplyStatusUpdate(ctx, st.ID, update); err != nil {
			return err
		}
		return tx.InsertEvent(ctx, ev)
	})
	if err != nil {
		metrics.CheckinScans.WithLabelValues(string(action), "error").Inc()
		return ScanResult{}, err
	}

	st.Status = resulting
	st.LastSeenAt = update.LastSeenAt
	st.AssignedVehicleID = update.AssignedVehicleID
	st.StatusUpdatedAt = now

	c.notifyGuardian(ctx, st, action, v, driver.Name, now)
	metrics.CheckinScans.WithLabelValues(string(action), "success").Inc()

	return ScanResult{Student: st, Action: action, ResultingState: resulting, OccurredAt: now}, nil
}

// notifyGuardian enqueues the guardian notice fire-and-forget. A student
// with no guardian, an opted-out guardian or a full queue never fails the
// scan.
func (c *checkinCommands) notifyGuardian(ctx context.Context, st student.Student, action student.Action, v vehicle.Vehicle, driverName string, now time.Time) {
	if st.GuardianID == nil {
		return
	}

	target, err := c.guardians.FindNotificationTarget(ctx, *st.GuardianID)
	if err != nil {
		c.logger.Warn("guardian lookup failed", "student_id", st.ID, "guardian_id", *st.GuardianID, "error", err)
		return
	}
	if !target.IsActive {
		return
	}
	if action == student.ActionPickup && !target.Settings.Pickup {
		return
	}
	if action == student.ActionDropoff && !target.Settings.Dropoff {
		return
	}

	recipients := []notification.Recipient{{
		UserID:   target.UserID,
		Channels: notification.ChannelOrder,
	}}
	job := notify.NewCheckinJob(st, action, v, driverName, recipients, now)
	if err := c.jobs.Enqueue(job); err != nil {
		c.logger.Warn("check-in notice dropped", "student_id", st.ID, "error", err)
	}
}
