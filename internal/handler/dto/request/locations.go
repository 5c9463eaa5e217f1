package request

import "time"

type HistoryRequest struct {
	VehicleID string     `form:"vehicleId" binding:"required,uuid"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit"`
}

type ETARequest struct {
	VehicleID string   `form:"vehicleId" binding:"required,uuid"`
	Lat       *float64 `form:"lat" binding:"required"`
	Lon       *float64 `form:"lon" binding:"required"`
}

type AreaRequest struct {
	North *float64 `form:"north" binding:"required"`
	South *float64 `form:"south" binding:"required"`
	East  *float64 `form:"east" binding:"required"`
	West  *float64 `form:"west" binding:"required"`
}
