package commands

import (
	"context"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Persistence ports implemented by internal/infra/repository.

type SampleWriter interface {
	InsertSample(ctx context.Context, s tracking.PositionSample) error
}

type VehicleReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (vehicle.Vehicle, error)
	FindByDriver(ctx context.Context, driverID uuid.UUID) (vehicle.Vehicle, error)
}

type StudentReader interface {
	FindByToken(ctx context.Context, token string) (student.Student, error)
}

// CheckinTx groups the writes of one accepted scan. Both succeed or
// neither is visible.
type CheckinTx interface {
	ApplyStatusUpdate(ctx context.Context, id uuid.UUID, update student.StatusUpdate) error
	InsertEvent(ctx context.Context, ev student.CheckinEvent) error
}

// CheckinUnitOfWork runs fn inside one transaction. Implemented by
// internal/infra/uow.
type CheckinUnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx CheckinTx) error) error
}

type GuardianReader interface {
	FindNotificationTarget(ctx context.Context, id uuid.UUID) (user.NotificationTarget, error)
	ListGuardianIDs(ctx context.Context) ([]uuid.UUID, error)
}

// Broadcaster fans a state change out to streaming observers. Implemented
// by the stream hub; calls must never block the caller.
type Broadcaster interface {
	VehicleLocationUpdated(st tracking.VehicleState)
}

// JobEnqueuer hands a notification job to the dispatcher queue.
type JobEnqueuer interface {
	Enqueue(job *notification.Job) error
}
