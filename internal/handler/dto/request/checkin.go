package request

import "github.com/google/uuid"

type ScanRequest struct {
	Token     string    `json:"token" binding:"required"`
	VehicleID uuid.UUID `json:"vehicleId" binding:"required"`
	Action    string    `json:"action" binding:"required"`
}
