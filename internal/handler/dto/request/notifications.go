package request

import "github.com/google/uuid"

type DelayNoticeRequest struct {
	RouteID      uuid.UUID `json:"routeId" binding:"required"`
	RouteName    string    `json:"routeName" binding:"required"`
	DelayMinutes int       `json:"estimatedDelay" binding:"required,min=1"`
	Reason       string    `json:"reason"`
}

type EmergencyNoticeRequest struct {
	IncidentType string `json:"incidentType" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description"`
}

type RouteChangeNoticeRequest struct {
	RouteID   uuid.UUID `json:"routeId" binding:"required"`
	RouteName string    `json:"routeName" binding:"required"`
	Changes   string    `json:"changes"`
	Reason    string    `json:"reason"`
}
