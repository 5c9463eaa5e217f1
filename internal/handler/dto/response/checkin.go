package response

import (
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"github.com/google/uuid"
)

// ScanResponse is the envelope the scanning app consumes: a literal
// "success" marker plus the student's post-transition status.
type ScanResponse struct {
	Status     string              `json:"status"`
	Student    ScanStudentResponse `json:"student"`
	Action     string              `json:"action"`
	OccurredAt time.Time           `json:"occurredAt"`
}

type ScanStudentResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

func FromScanResult(res commands.ScanResult) ScanResponse {
	return ScanResponse{
		Status: "success",
		Student: ScanStudentResponse{
			ID:     res.Student.ID,
			Name:   res.Student.FullName(),
			Status: string(res.ResultingState),
		},
		Action:     string(res.Action),
		OccurredAt: res.OccurredAt,
	}
}

type StudentResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	LastSeenAt string     `json:"lastSeenAt"`
	VehicleID  *uuid.UUID `json:"vehicleId,omitempty"`
}

type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

func NewStudentListResponse(students []student.Student) StudentListResponse {
	out := make([]StudentResponse, len(students))
	for i, st := range students {
		out[i] = StudentResponse{
			ID:         st.ID,
			Name:       st.FullName(),
			Status:     string(st.Status),
			LastSeenAt: st.LastSeenAt,
			VehicleID:  st.AssignedVehicleID,
		}
	}
	return StudentListResponse{Students: out}
}
