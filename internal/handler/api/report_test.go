//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"toolshare/internal/handler/api"
	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/queries"
	"toolshare/tests/common/httptest"
	queriesmock "toolshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	handler     *api.ReportHandler
	userID      uuid.UUID
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockQueries)
	s.userID = uuid.New()

	asUser := func(c *gin.Context) { c.Set("user_id", s.userID) }
	s.router.GET("/reports/activity", asUser, s.handler.Activity)
	s.router.GET("/reports/stats", asUser, s.handler.TopOwners)
	s.router.GET("/anonymous/activity", s.handler.Activity)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestActivity() {
	s.Run("success", func() {
		items := []*queries.ReportActivityItem{
			{Type: queries.ActivityRented, ItemName: "Drill", Date: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
			{Type: queries.ActivityOwned, ItemName: "Ladder", Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		}
		s.mockQueries.EXPECT().Activity(gomock.Any(), s.userID).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/activity", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[
			{"name":"Drill","type":"Rented","date":"2024-06-20"},
			{"name":"Ladder","type":"Owned","date":"2024-06-02"}
		]`, rec.Body.String())
	})

	s.Run("empty history renders an empty list", func() {
		s.mockQueries.EXPECT().Activity(gomock.Any(), s.userID).Return([]*queries.ReportActivityItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/activity", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: no user in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/activity", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: read store failure", func() {
		s.mockQueries.EXPECT().Activity(gomock.Any(), s.userID).Return(nil, errs.New("connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/activity", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReportHandlerTestSuite) TestTopOwners() {
	owners := []*queries.TopOwner{
		{OwnerID: uuid.New(), Name: "Alice", AverageRating: 4.5, ToolCount: 2},
	}
	s.mockQueries.EXPECT().TopOwners(gomock.Any()).Return(owners, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/stats", nil, "")

	var body []resdto.TopOwnerResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("Alice", body[0].Name)
	s.Equal(4.5, body[0].AvgRating)
	s.Equal(int64(2), body[0].ToolCount)
}
