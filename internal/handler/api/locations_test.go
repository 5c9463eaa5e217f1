//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/handler/api"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"
	queriesmock "github.com/MAGNO9/SchoolTrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LocationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockLocation *queriesmock.MockLocationQueries
	mockETA      *queriesmock.MockETAQueries
	handler      *api.LocationHandler
}

func (s *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLocation = queriesmock.NewMockLocationQueries(s.mockCtrl)
	s.mockETA = queriesmock.NewMockETAQueries(s.mockCtrl)
	s.handler = api.NewLocationHandler(s.mockLocation, s.mockETA)

	s.router.GET("/locations/current", s.handler.GetCurrent)
	s.router.GET("/locations/history", s.handler.GetHistory)
	s.router.GET("/locations/eta", s.handler.GetETA)
	s.router.GET("/locations/route/:routeId", s.handler.GetRouteVehicles)
	s.router.GET("/locations/area", s.handler.GetInArea)
}

func (s *LocationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLocationHandlerSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}

func (s *LocationHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *LocationHandlerTestSuite) TestGetCurrent() {
	vehicleID := uuid.New()
	s.mockLocation.EXPECT().
		CurrentStates(gomock.Any()).
		Return([]tracking.VehicleState{{VehicleID: vehicleID, Latitude: 19.4, Longitude: -99.1, Online: true}})

	w := s.get("/locations/current")

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Vehicles []struct {
			VehicleID uuid.UUID `json:"vehicleId"`
		} `json:"vehicles"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body.Vehicles, 1)
	s.Equal(vehicleID, body.Vehicles[0].VehicleID)
}

func (s *LocationHandlerTestSuite) TestGetHistory() {
	vehicleID := uuid.New()
	s.mockLocation.EXPECT().
		History(gomock.Any(), vehicleID, gomock.Any(), gomock.Any(), 50).
		Return([]tracking.PositionSample{{ID: uuid.New(), VehicleID: vehicleID, CapturedAt: time.Now()}}, nil)

	w := s.get("/locations/history?vehicleId=" + vehicleID.String() + "&limit=50")

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		History []struct {
			VehicleID uuid.UUID `json:"vehicleId"`
		} `json:"history"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body.History, 1)
	s.Equal(vehicleID, body.History[0].VehicleID)
}

func (s *LocationHandlerTestSuite) TestGetHistoryRejectsMissingVehicle() {
	w := s.get("/locations/history?limit=50")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LocationHandlerTestSuite) TestGetHistoryRejectsBadVehicleID() {
	w := s.get("/locations/history?vehicleId=not-a-uuid")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LocationHandlerTestSuite) TestGetETA() {
	vehicleID := uuid.New()
	s.mockETA.EXPECT().
		EstimateArrival(gomock.Any(), vehicleID, gomock.Any()).
		Return(queries.ETA{
			VehicleID:  vehicleID,
			DistanceKm: 4.2,
			DurationS:  504,
			ArrivalAt:  time.Now().Add(504 * time.Second),
			Source:     "fallback",
		}, nil)

	w := s.get("/locations/eta?vehicleId=" + vehicleID.String() + "&lat=19.5&lon=-99.2")

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Duration int64   `json:"duration"`
		Distance float64 `json:"distance"`
		Source   string  `json:"source"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(int64(504000), body.Duration) // milliseconds
	s.Equal(4200.0, body.Distance)        // meters
	s.Equal("fallback", body.Source)
}

func (s *LocationHandlerTestSuite) TestGetETAUnknownVehicleIs404() {
	vehicleID := uuid.New()
	s.mockETA.EXPECT().
		EstimateArrival(gomock.Any(), vehicleID, gomock.Any()).
		Return(queries.ETA{}, errs.Mark(errs.New("no position"), errs.ErrNotFound))

	w := s.get("/locations/eta?vehicleId=" + vehicleID.String() + "&lat=19.5&lon=-99.2")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LocationHandlerTestSuite) TestGetETARejectsMissingCoordinates() {
	w := s.get("/locations/eta?vehicleId=" + uuid.New().String())
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LocationHandlerTestSuite) TestGetRouteVehicles() {
	routeID := uuid.New()
	vehicleID := uuid.New()
	s.mockLocation.EXPECT().
		RouteVehicles(gomock.Any(), routeID).
		Return([]tracking.VehicleState{{VehicleID: vehicleID, RouteID: &routeID, Latitude: 19.4, Longitude: -99.1}})

	w := s.get("/locations/route/" + routeID.String())

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		RouteID  uuid.UUID `json:"routeId"`
		Vehicles []struct {
			Vehicle struct {
				ID uuid.UUID `json:"id"`
			} `json:"vehicle"`
			Location struct {
				Latitude float64 `json:"latitude"`
			} `json:"location"`
		} `json:"vehicles"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(routeID, body.RouteID)
	s.Require().Len(body.Vehicles, 1)
	s.Equal(vehicleID, body.Vehicles[0].Vehicle.ID)
	s.Equal(19.4, body.Vehicles[0].Location.Latitude)
}

func (s *LocationHandlerTestSuite) TestGetRouteVehiclesRejectsBadID() {
	w := s.get("/locations/route/not-a-uuid")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LocationHandlerTestSuite) TestGetInArea() {
	s.mockLocation.EXPECT().
		VehiclesInArea(gomock.Any(), queries.Area{North: 20, South: 19, East: -98, West: -100}).
		Return([]tracking.VehicleState{}, nil)

	w := s.get("/locations/area?north=20&south=19&east=-98&west=-100")

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Vehicles []json.RawMessage `json:"vehicles"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Empty(body.Vehicles)
}

func (s *LocationHandlerTestSuite) TestGetInAreaRejectsMissingBounds() {
	w := s.get("/locations/area?north=20&south=19")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LocationHandlerTestSuite) TestGetInAreaRejectsInvalidBox() {
	s.mockLocation.EXPECT().
		VehiclesInArea(gomock.Any(), queries.Area{North: 19, South: 20, East: -98, West: -100}).
		Return(nil, errs.Mark(errs.New("invalid bounding box"), errs.ErrInvalidInput))

	w := s.get("/locations/area?north=19&south=20&east=-98&west=-100")
	s.Equal(http.StatusBadRequest, w.Code)
}
