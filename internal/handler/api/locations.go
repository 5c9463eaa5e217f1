package api

import (
	"net/http"

	reqdto "github.com/MAGNO9/SchoolTrack/internal/handler/dto/request"
	resdto "github.com/MAGNO9/SchoolTrack/internal/handler/dto/response"
	"github.com/MAGNO9/SchoolTrack/internal/handler/httperr"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/geo"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	locations queries.LocationQueries
	eta       queries.ETAQueries
}

func NewLocationHandler(locations queries.LocationQueries, eta queries.ETAQueries) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		eta:       eta,
	}
}

// @Summary Current vehicle positions
// @Description Latest known state of every tracked vehicle
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VehicleListResponse
// @Failure 401 {object} httperr.Response
// @Router /locations/current [get]
func (h *LocationHandler) GetCurrent(c *gin.Context) {
	states := h.locations.CurrentStates(c.Request.Context())
	c.JSON(http.StatusOK, resdto.NewVehicleListResponse(states))
}

// @Summary Position history
// @Description Recent position samples for one vehicle, newest first
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param vehicleId query string true "Vehicle ID"
// @Param startDate query string false "Window start (RFC 3339)"
// @Param endDate query string false "Window end (RFC 3339)"
// @Param limit query int false "Max samples (default 100, cap 1000)"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /locations/history [get]
func (h *LocationHandler) GetHistory(c *gin.Context) {
	var req reqdto.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}
	vehicleID := uuid.MustParse(req.VehicleID)

	samples, err := h.locations.History(c.Request.Context(), vehicleID, req.StartDate, req.EndDate, req.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewHistoryResponse(samples))
}

// @Summary Estimated time of arrival
// @Description ETA from a vehicle's current position to a destination
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param vehicleId query string true "Vehicle ID"
// @Param lat query number true "Destination latitude"
// @Param lon query number true "Destination longitude"
// @Success 200 {object} resdto.ETAResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /locations/eta [get]
func (h *LocationHandler) GetETA(c *gin.Context) {
	var req reqdto.ETARequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}
	vehicleID := uuid.MustParse(req.VehicleID)

	eta, err := h.eta.EstimateArrival(c.Request.Context(), vehicleID, geo.Point{
		Latitude:  *req.Lat,
		Longitude: *req.Lon,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromETA(eta))
}

// @Summary Vehicles on a route
// @Description Current state of every vehicle assigned to the route
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param routeId path string true "Route ID"
// @Success 200 {object} resdto.RouteVehiclesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /locations/route/{routeId} [get]
func (h *LocationHandler) GetRouteVehicles(c *gin.Context) {
	routeID, err := uuid.Parse(c.Param("routeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid route ID format")
		return
	}

	states := h.locations.RouteVehicles(c.Request.Context(), routeID)
	c.JSON(http.StatusOK, resdto.NewRouteVehiclesResponse(routeID, states))
}

// @Summary Vehicles in an area
// @Description Vehicles whose current position falls inside a bounding box
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param north query number true "North latitude bound"
// @Param south query number true "South latitude bound"
// @Param east query number true "East longitude bound"
// @Param west query number true "West longitude bound"
// @Success 200 {object} resdto.VehicleListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /locations/area [get]
func (h *LocationHandler) GetInArea(c *gin.Context) {
	var req reqdto.AreaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	states, err := h.locations.VehiclesInArea(c.Request.Context(), queries.Area{
		North: *req.North,
		South: *req.South,
		East:  *req.East,
		West:  *req.West,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewVehicleListResponse(states))
}
