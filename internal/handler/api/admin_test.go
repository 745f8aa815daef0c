//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"toolshare/internal/handler/api"
	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/commands"
	"toolshare/internal/usecase/queries"
	"toolshare/tests/common/builder"
	"toolshare/tests/common/httptest"
	commandsmock "toolshare/tests/mock/commands"
	queriesmock "toolshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAdminQueries
	mockUsers   *commandsmock.MockUserCommands
	handler     *api.AdminHandler
	adminID     uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockQueries, s.mockUsers)
	s.adminID = uuid.New()

	asAdmin := func(c *gin.Context) { c.Set("user_id", s.adminID) }
	s.router.GET("/admin/users", asAdmin, s.handler.ListUsers)
	s.router.GET("/admin/tools", asAdmin, s.handler.ListTools)
	s.router.DELETE("/admin/users/:id", asAdmin, s.handler.DeleteUser)
	s.router.GET("/admin/stats", asAdmin, s.handler.Stats)
	s.router.GET("/admin/activity", asAdmin, s.handler.Activity)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	views := []*queries.UserView{
		builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com").BuildView(),
		builder.NewUserBuilder().WithName("Bob").WithEmail("bob@example.com").BuildView(),
	}
	s.mockQueries.EXPECT().ListUsers(gomock.Any()).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "")

	var body []resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("alice@example.com", body[0].Email)
}

func (s *AdminHandlerTestSuite) TestListTools() {
	items := []*queries.AdminToolItem{{
		ID:              uuid.New(),
		Name:            "Ladder",
		Category:        "Hand Tools",
		DailyPriceCents: 999,
		Status:          "available",
		OwnerName:       "Alice",
		OwnerEmail:      "alice@example.com",
	}}
	s.mockQueries.EXPECT().ListTools(gomock.Any()).Return(items, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/tools", nil, "")

	var body []resdto.AdminToolResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(9.99, body[0].DailyPrice)
	s.Equal("alice@example.com", body[0].OwnerEmail)
}

func (s *AdminHandlerTestSuite) TestDeleteUser() {
	targetID := uuid.New()

	s.Run("success", func() {
		s.mockUsers.EXPECT().DeleteUser(gomock.Any(), s.adminID, targetID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/users/"+targetID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: cannot delete yourself", func() {
		s.mockUsers.EXPECT().DeleteUser(gomock.Any(), s.adminID, s.adminID).Return(commands.ErrCannotDeleteSelf)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/users/"+s.adminID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cannot delete yourself")
	})

	s.Run("error: unknown user", func() {
		s.mockUsers.EXPECT().DeleteUser(gomock.Any(), s.adminID, targetID).Return(errs.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/users/"+targetID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/users/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID format")
	})
}

func (s *AdminHandlerTestSuite) TestStats() {
	s.mockQueries.EXPECT().Stats(gomock.Any()).Return(&queries.SystemStats{
		TotalUsers:        3,
		TotalTools:        5,
		TotalReservations: 7,
		TotalRevenueCents: 12345,
		SystemStatus:      "healthy",
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"total_users":3,"total_tools":5,"total_reservations":7,"total_revenue":123.45,"system_status":"healthy"}`, rec.Body.String())
}

func (s *AdminHandlerTestSuite) TestActivity() {
	at := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().RecentActivity(gomock.Any()).Return([]*queries.ActivityItem{
		{Type: "reservation", Actor: "Bob", Target: "Ladder", CreatedAt: at},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/activity", nil, "")

	var body []resdto.ActivityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("Bob", body[0].Actor)
	s.True(at.Equal(body[0].CreatedAt))
}
