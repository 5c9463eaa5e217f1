package api

import (
	"net/http"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	reqdto "github.com/MAGNO9/SchoolTrack/internal/handler/dto/request"
	resdto "github.com/MAGNO9/SchoolTrack/internal/handler/dto/response"
	"github.com/MAGNO9/SchoolTrack/internal/handler/httperr"
	"github.com/MAGNO9/SchoolTrack/internal/handler/middleware"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckinHandler struct {
	checkins  commands.CheckinCommands
	locations queries.LocationQueries
}

func NewCheckinHandler(checkins commands.CheckinCommands, locations queries.LocationQueries) *CheckinHandler {
	return &CheckinHandler{
		checkins:  checkins,
		locations: locations,
	}
}

// @Summary Scan a check-in token
// @Description Apply a pickup or drop-off scan for one student
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Scan request"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkin/scan [post]
func (h *CheckinHandler) Scan(c *gin.Context) {
	driver, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	action, err := student.ParseAction(req.Action)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Action must be pickup or dropoff")
		return
	}

	res, err := h.checkins.Scan(c.Request.Context(), driver, req.VehicleID, req.Token, action)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanResult(res))
}

// @Summary Students on board
// @Description Students currently in transport on one vehicle
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} resdto.StudentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /checkin/vehicle/{vehicleId}/students [get]
func (h *CheckinHandler) GetStudentsOnBoard(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format")
		return
	}

	students, err := h.locations.StudentsOnBoard(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewStudentListResponse(students))
}
