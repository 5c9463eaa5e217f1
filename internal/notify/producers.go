package notify

import (
	"fmt"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Job kinds produced by this core.
const (
	KindStudentPickup  = "student_pickup"
	KindStudentDropoff = "student_dropoff"
	KindRouteDelay     = "route_delay"
	KindEmergency      = "emergency"
	KindRouteChange    = "route_change"
)

// NewCheckinJob builds the guardian notice for a pickup or drop-off scan.
func NewCheckinJob(st student.Student, action student.Action, v vehicle.Vehicle, driverName string, recipients []notification.Recipient, now time.Time) *notification.Job {
	var kind, title, body string
	switch action {
	case student.ActionPickup:
		kind = KindStudentPickup
		title = "Student on the way"
		body = fmt.Sprintf("%s has boarded %s, driven by %s.", st.FullName(), v.Descriptor(), driverName)
	default:
		kind = KindStudentDropoff
		title = "Student arrived"
		body = fmt.Sprintf("%s has arrived at their destination.", st.FullName())
	}

	payload := map[string]any{
		"studentId":   st.ID,
		"studentName": st.FullName(),
		"vehicleId":   v.ID,
		"vehicleInfo": v.Descriptor(),
		"action":      string(action),
		"timestamp":   now,
	}
	return notification.NewJob(kind, title, body, payload, recipients, now)
}

// NewDelayJob builds a route delay notice.
func NewDelayJob(recipients []notification.Recipient, routeID uuid.UUID, routeName string, delayMinutes int, reason string, now time.Time) *notification.Job {
	body := fmt.Sprintf("Estimated delay of %d minutes on route %s.", delayMinutes, routeName)
	if reason != "" {
		body += " " + reason
	}
	payload := map[string]any{
		"routeId":        routeID,
		"routeName":      routeName,
		"estimatedDelay": delayMinutes,
		"reason":         reason,
		"timestamp":      now,
	}
	return notification.NewJob(KindRouteDelay, "Route delay", body, payload, recipients, now)
}

// NewEmergencyJob builds an incident notice.
func NewEmergencyJob(recipients []notification.Recipient, incidentType, location, description string, now time.Time) *notification.Job {
	body := fmt.Sprintf("Type: %s. Location: %s. %s", incidentType, location, description)
	payload := map[string]any{
		"incidentType": incidentType,
		"location":     location,
		"description":  description,
		"priority":     "high",
		"timestamp":    now,
	}
	return notification.NewJob(KindEmergency, "Incident reported", body, payload, recipients, now)
}

// NewRouteChangeJob builds a route change notice.
func NewRouteChangeJob(recipients []notification.Recipient, routeID uuid.UUID, routeName, changes, reason string, now time.Time) *notification.Job {
	body := fmt.Sprintf("Route %s has changed. Reason: %s", routeName, reason)
	payload := map[string]any{
		"routeId":   routeID,
		"routeName": routeName,
		"changes":   changes,
		"reason":    reason,
		"timestamp": now,
	}
	return notification.NewJob(KindRouteChange, "Route change", body, payload, recipients, now)
}
