//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolshare/internal/domain/user"
	"toolshare/internal/handler/middleware"
	"toolshare/internal/pkg/cookie"
	"toolshare/internal/usecase"
	usecasemock "toolshare/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	middleware    *middleware.AuthMiddleware
	router        *gin.Engine
	principal     *usecase.Principal
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.middleware = middleware.NewAuthMiddleware(s.mockValidator)
	s.principal = &usecase.Principal{UserID: uuid.New(), Role: user.RoleUser, TokenID: "jti-1"}

	echo := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	}

	s.router = gin.New()
	s.router.GET("/private", s.middleware.RequireAuth(), echo)
	s.router.GET("/admin", s.middleware.RequireAuth(), s.middleware.RequireRole(user.RoleAdmin), echo)
	s.router.GET("/public", s.middleware.OptionalAuth(), echo)
	s.router.GET("/misordered", s.middleware.RequireRole(user.RoleAdmin), echo)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path string, mutate func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) func(r *http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("missing token", func() {
		rec := s.do("/private", nil)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"error":{"message":"Access token required"}}`, rec.Body.String())
	})

	s.Run("malformed authorization header", func() {
		rec := s.do("/private", func(r *http.Request) { r.Header.Set("Authorization", "Token abc") })
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "bad").Return(nil, errors.New("signature mismatch"))

		rec := s.do("/private", bearer("bad"))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"error":{"message":"Invalid or expired token"}}`, rec.Body.String())
	})

	s.Run("valid header token sets the principal", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good").Return(s.principal, nil)

		rec := s.do("/private", bearer("good"))
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"user_id":"`+s.principal.UserID.String()+`","role":"user"}`, rec.Body.String())
	})

	s.Run("cookie wins over header", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "from-cookie").Return(s.principal, nil)

		rec := s.do("/private", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "from-cookie"})
			r.Header.Set("Authorization", "Bearer from-header")
		})
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("forbidden for regular user", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good").Return(s.principal, nil)

		rec := s.do("/admin", bearer("good"))
		s.Equal(http.StatusForbidden, rec.Code)
		s.JSONEq(`{"error":{"message":"Insufficient permissions"}}`, rec.Body.String())
	})

	s.Run("admin passes", func() {
		admin := &usecase.Principal{UserID: uuid.New(), Role: user.RoleAdmin}
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "admin").Return(admin, nil)

		rec := s.do("/admin", bearer("admin"))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("without RequireAuth the role is missing", func() {
		rec := s.do("/misordered", nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous passes through", func() {
		rec := s.do("/public", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"user_id":"`+uuid.Nil.String()+`","role":""}`, rec.Body.String())
	})

	s.Run("invalid token is ignored", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "bad").Return(nil, errors.New("expired"))

		rec := s.do("/public", bearer("bad"))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("valid token is attached", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good").Return(s.principal, nil)

		rec := s.do("/public", bearer("good"))
		s.JSONEq(`{"user_id":"`+s.principal.UserID.String()+`","role":"user"}`, rec.Body.String())
	})
}
