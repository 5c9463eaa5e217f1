package api

import (
	"net/http"

	reqdto "github.com/MAGNO9/SchoolTrack/internal/handler/dto/request"
	"github.com/MAGNO9/SchoolTrack/internal/handler/httperr"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notices commands.NoticeCommands
}

func NewNotificationHandler(notices commands.NoticeCommands) *NotificationHandler {
	return &NotificationHandler{notices: notices}
}

// @Summary Announce a route delay
// @Description Queue a delay notice to every active guardian
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DelayNoticeRequest true "Delay notice"
// @Success 202 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /notifications/delay [post]
func (h *NotificationHandler) AnnounceDelay(c *gin.Context) {
	var req reqdto.DelayNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	err := h.notices.AnnounceDelay(c.Request.Context(), req.RouteID, req.RouteName, req.DelayMinutes, req.Reason)
	h.respond(c, err)
}

// @Summary Announce an incident
// @Description Queue an emergency notice to every active guardian
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EmergencyNoticeRequest true "Emergency notice"
// @Success 202 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /notifications/emergency [post]
func (h *NotificationHandler) AnnounceEmergency(c *gin.Context) {
	var req reqdto.EmergencyNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	err := h.notices.AnnounceEmergency(c.Request.Context(), req.IncidentType, req.Location, req.Description)
	h.respond(c, err)
}

// @Summary Announce a route change
// @Description Queue a route change notice to every active guardian
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RouteChangeNoticeRequest true "Route change notice"
// @Success 202 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /notifications/route-change [post]
func (h *NotificationHandler) AnnounceRouteChange(c *gin.Context) {
	var req reqdto.RouteChangeNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	err := h.notices.AnnounceRouteChange(c.Request.Context(), req.RouteID, req.RouteName, req.Changes, req.Reason)
	h.respond(c, err)
}

func (h *NotificationHandler) respond(c *gin.Context, err error) {
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
