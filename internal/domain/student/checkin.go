package student

import (
	"time"

	"github.com/google/uuid"
)

// CheckinEvent is the immutable audit record of one successful scan.
type CheckinEvent struct {
	ID         uuid.UUID
	StudentID  uuid.UUID
	VehicleID  uuid.UUID
	DriverID   uuid.UUID
	Action     Action
	Status     Status
	OccurredAt time.Time
}

func NewCheckinEvent(studentID, vehicleID, driverID uuid.UUID, action Action, resulting Status, occurredAt time.Time) CheckinEvent {
	return CheckinEvent{
		ID:         uuid.New(),
		StudentID:  studentID,
		VehicleID:  vehicleID,
		DriverID:   driverID,
		Action:     action,
		Status:     resulting,
		OccurredAt: occurredAt,
	}
}
