package student

import (
	"time"

	"github.com/google/uuid"
)

// Student is the read model the check-in path works with. The check-in
// token is opaque, unique per student and stable across enrollment.
type Student struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	GuardianID        *uuid.UUID
	Token             string
	Status            Status
	LastSeenAt        string
	AssignedVehicleID *uuid.UUID
	StatusUpdatedAt   time.Time
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// StatusUpdate is the mutation applied to a student after a scan.
type StatusUpdate struct {
	Status            Status
	LastSeenAt        string
	AssignedVehicleID *uuid.UUID
	UpdatedAt         time.Time
}
