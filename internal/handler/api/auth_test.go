//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"toolshare/internal/handler/api"
	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/pkg/config"
	"toolshare/internal/pkg/cookie"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase"
	"toolshare/internal/usecase/commands"
	"toolshare/tests/common/builder"
	"toolshare/tests/common/httptest"
	"toolshare/tests/common/testutil"
	commandsmock "toolshare/tests/mock/commands"
	queriesmock "toolshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	principal    *usecase.Principal
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.principal = &usecase.Principal{
		UserID:    uuid.New(),
		TokenID:   uuid.NewString(),
		ExpiresAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	// stands in for RequireAuth
	authenticated := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			return
		}
		c.Set("principal", s.principal)
		c.Set("user_id", s.principal.UserID)
		c.Set("user_role", s.principal.Role)
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authenticated, s.handler.Logout)
	s.router.GET("/auth/me", authenticated, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	ub := builder.NewUserBuilder().WithEmail("new@example.com")
	reqBody := ub.BuildRegisterDTO("password123")

	s.Run("success: 201 with token and cookie", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(&commands.AuthResult{
			User:        ub.BuildDomain(),
			AccessToken: "test-jwt-token",
			ExpiresIn:   time.Hour,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("test-jwt-token", body.AccessToken)
		s.Equal(resdto.TokenTypeBearer, body.TokenType)
		s.Equal(int64(3600), body.ExpiresIn)
		s.Equal(ub.ID, body.UserID)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: email already registered", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email already registered")
	})

	cases := []testCaseAuth{
		{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "bad email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "short password", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "unknown role", mutate: testutil.Field("role", "root"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
	}
	for _, tc := range cases {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildDomain()

	s.Run("success: 200 with token and cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(&commands.AuthResult{
			User:        returnUser,
			AccessToken: "test-jwt-token",
			ExpiresIn:   15 * time.Minute,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Test User", body.Name)
		s.Equal("user", body.Role)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Incorrect email or password")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: unexpected failure is hidden", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, errors.New("pool exhausted"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "pool exhausted")
	})

	cases := []testCaseAuth{
		{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: revokes the token and clears the cookie", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), s.principal.TokenID, s.principal.ExpiresAt).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	})

	s.Run("error: 401 without principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success", func() {
		view := builder.NewUserBuilder().WithID(s.principal.UserID).BuildView()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.principal.UserID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: user deleted since the token was issued", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.principal.UserID).Return(nil, errs.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
