//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"toolshare/internal/domain/user"
	"toolshare/internal/handler/dto/request"
	"toolshare/internal/handler/dto/response"
	"toolshare/tests/common/authtest"
	"toolshare/tests/common/builder"
	"toolshare/tests/common/dbtest"
	"toolshare/tests/common/httptest"
	"toolshare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestRegister() {
	s.Run("登録するとトークンとCookieが返る", func() {
		t := s.T()

		body := builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com").BuildRegisterDTO("password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		var res response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "user", res.Role)
		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("登録済みのメールアドレスは拒否される", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "Alice", "alice@example.com", string(user.RoleUser))

		body := builder.NewUserBuilder().WithEmail("alice@example.com").BuildRegisterDTO("password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Email already registered")
	})

	s.Run("短すぎるパスワード", func() {
		t := s.T()

		body := builder.NewUserBuilder().WithEmail("short@example.com").BuildRegisterDTO("short")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			dbtest.CreateTestUser(t, s.DB, "Test User", "test@example.com", string(user.RoleUser))

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.TokenResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken, "アクセストークンが空")
				require.Greater(t, res.ExpiresIn, int64(0), "有効期限が無効")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウト後のトークンは拒否される", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Bob", "bob@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("自分の情報を取得できる", func() {
		t := s.T()
		id, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Carol", "carol@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, id, res.ID)
		require.Equal(t, "carol@example.com", res.Email)
		require.Equal(t, "admin", res.Role)
	})

	s.Run("期限切れトークン", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("削除済みユーザーのトークン", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}
