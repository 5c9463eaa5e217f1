package vehicle

import "github.com/google/uuid"

type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

// Vehicle is the read model for the fleet registry. Fleet CRUD itself
// lives upstream; this core only reads assignments.
type Vehicle struct {
	ID           uuid.UUID
	LicensePlate string
	Brand        string
	Model        string
	Status       Status
	DriverID     *uuid.UUID
	RouteID      *uuid.UUID
}

// Descriptor is the human-readable vehicle label used in notifications
// and as a student's last-seen-at marker.
func (v Vehicle) Descriptor() string {
	if v.Brand == "" && v.Model == "" {
		return v.LicensePlate
	}
	return v.Brand + " " + v.Model + " (" + v.LicensePlate + ")"
}

// AssignedTo reports whether the vehicle is assigned to the driver.
func (v Vehicle) AssignedTo(driverID uuid.UUID) bool {
	return v.DriverID != nil && *v.DriverID == driverID
}
