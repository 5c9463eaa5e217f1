//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/handler/api"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"
	commandsmock "github.com/MAGNO9/SchoolTrack/tests/mock/commands"
	queriesmock "github.com/MAGNO9/SchoolTrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckinHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckinCommands
	mockQueries  *queriesmock.MockLocationQueries
	handler      *api.CheckinHandler
	driver       user.AuthorizedUser
}

func (s *CheckinHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckinCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLocationQueries(s.mockCtrl)
	s.handler = api.NewCheckinHandler(s.mockCommands, s.mockQueries)

	s.driver = user.AuthorizedUser{
		ID:       uuid.New(),
		Name:     "Rosa Dominguez",
		Role:     user.RoleDriver,
		IsActive: true,
	}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.driver.ID)
		c.Set("user_role", s.driver.Role)
		c.Set("auth_user", s.driver)
		c.Next()
	}

	s.router.POST("/checkin/scan", authMiddleware, s.handler.Scan)
	s.router.GET("/checkin/vehicle/:vehicleId/students", authMiddleware, s.handler.GetStudentsOnBoard)
}

func (s *CheckinHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckinHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckinHandlerTestSuite))
}

func (s *CheckinHandlerTestSuite) postScan(body map[string]any, authed bool) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/checkin/scan", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func scanBody(vehicleID uuid.UUID) map[string]any {
	return map[string]any{
		"token":     "tok-luis",
		"vehicleId": vehicleID.String(),
		"action":    "pickup",
	}
}

func (s *CheckinHandlerTestSuite) TestScanSuccess() {
	vehicleID := uuid.New()
	result := commands.ScanResult{
		Student: student.Student{
			ID:        uuid.New(),
			FirstName: "Luis",
			LastName:  "Hernandez",
			Status:    student.StatusTransport,
		},
		Action:         student.ActionPickup,
		ResultingState: student.StatusTransport,
		OccurredAt:     time.Now(),
	}

	s.mockCommands.EXPECT().
		Scan(gomock.Any(), s.driver, vehicleID, "tok-luis", student.ActionPickup).
		Return(result, nil)

	w := s.postScan(scanBody(vehicleID), true)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Status  string `json:"status"`
		Student struct {
			ID     uuid.UUID `json:"id"`
			Name   string    `json:"name"`
			Status string    `json:"status"`
		} `json:"student"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("success", body.Status)
	s.Equal(result.Student.ID, body.Student.ID)
	s.Equal("Luis Hernandez", body.Student.Name)
	s.Equal("transport", body.Student.Status)
}

func (s *CheckinHandlerTestSuite) TestScanRequiresAuth() {
	w := s.postScan(scanBody(uuid.New()), false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *CheckinHandlerTestSuite) TestScanRejectsUnknownAction() {
	body := scanBody(uuid.New())
	body["action"] = "teleport"

	w := s.postScan(body, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CheckinHandlerTestSuite) TestScanRejectsMissingToken() {
	body := scanBody(uuid.New())
	delete(body, "token")

	w := s.postScan(body, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CheckinHandlerTestSuite) TestScanUnknownTokenIs404() {
	vehicleID := uuid.New()
	s.mockCommands.EXPECT().
		Scan(gomock.Any(), s.driver, vehicleID, "tok-luis", student.ActionPickup).
		Return(commands.ScanResult{}, errs.Mark(errs.New("unknown token"), errs.ErrNotFound))

	w := s.postScan(scanBody(vehicleID), true)

	s.Equal(http.StatusNotFound, w.Code)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Not found", body.Error.Message)
}

func (s *CheckinHandlerTestSuite) TestScanUnassignedVehicleIs403() {
	vehicleID := uuid.New()
	s.mockCommands.EXPECT().
		Scan(gomock.Any(), s.driver, vehicleID, "tok-luis", student.ActionPickup).
		Return(commands.ScanResult{}, errs.Mark(errs.New("not assigned"), errs.ErrForbidden))

	w := s.postScan(scanBody(vehicleID), true)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CheckinHandlerTestSuite) TestGetStudentsOnBoard() {
	vehicleID := uuid.New()
	s.mockQueries.EXPECT().
		StudentsOnBoard(gomock.Any(), vehicleID).
		Return([]student.Student{
			{ID: uuid.New(), FirstName: "Luis", LastName: "Hernandez", Status: student.StatusTransport},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/checkin/vehicle/"+vehicleID.String()+"/students", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Students []struct {
			Name string `json:"name"`
		} `json:"students"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body.Students, 1)
	s.Equal("Luis Hernandez", body.Students[0].Name)
}

func (s *CheckinHandlerTestSuite) TestGetStudentsOnBoardRejectsBadID() {
	req := httptest.NewRequest(http.MethodGet, "/checkin/vehicle/not-a-uuid/students", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}
