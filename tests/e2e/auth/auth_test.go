//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"dealswap/internal/handler/dto/request"
	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/pkg/cookie"
	"dealswap/tests/common/authtest"
	"dealswap/tests/common/dbtest"
	"dealswap/tests/common/httptest"
	"dealswap/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
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

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "alice")
	dbtest.CreateTestUser(s.T(), s.DB, "sleepy")
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE username = 'sleepy'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		expectedCode   string
	}{
		{name: "new account", username: "carol", password: "password123", expectedStatus: http.StatusCreated},
		{name: "taken username", username: "alice", password: "password123", expectedStatus: http.StatusConflict, expectedCode: "conflict"},
		{name: "username too short", username: "al", password: "password123", expectedStatus: http.StatusBadRequest, expectedCode: "validation"},
		{name: "password too short", username: "dave", password: "short", expectedStatus: http.StatusBadRequest, expectedCode: "validation"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL,
				request.SignupRequest{Username: tt.username, Password: tt.password}, "")

			if tt.expectedCode != "" {
				httptest.AssertErrorCode(t, w, tt.expectedStatus, tt.expectedCode)
				return
			}
			var res resdto.AuthResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &res)
			require.Equal(t, tt.username, res.Username)
			require.NotEmpty(t, res.AccessToken)
			require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		expectedCode   string
	}{
		{name: "valid credentials", username: "alice", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown user", username: "nobody", password: "password123", expectedStatus: http.StatusUnauthorized, expectedCode: "identity_required"},
		{name: "wrong password", username: "alice", password: "wrongpassword", expectedStatus: http.StatusUnauthorized, expectedCode: "identity_required"},
		{name: "inactive user", username: "sleepy", password: "password123", expectedStatus: http.StatusForbidden, expectedCode: "forbidden"},
		{name: "empty username", username: "", password: "password123", expectedStatus: http.StatusBadRequest, expectedCode: "validation"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")

			if tt.expectedCode != "" {
				httptest.AssertErrorCode(t, w, tt.expectedStatus, tt.expectedCode)
				return
			}

			var res resdto.AuthResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &res)
			require.NotEmpty(t, res.AccessToken)

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE username = $1", tt.username).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestEachLoginIsANewSession() {
	s.Run("session ids differ", func() {
		t := s.T()
		body := request.LoginRequest{Username: "alice", Password: "password123"}

		var first, second resdto.AuthResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, ""), http.StatusOK, &first)
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, ""), http.StatusOK, &second)

		require.NotEqual(t, first.SessionID, second.SessionID)
	})
}

func (s *authSuite) TestMe() {
	s.Run("with bearer token", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, userID, res.ID)
		require.Equal(t, "alice", res.Username)
	})

	s.Run("with session cookie", func() {
		t := s.T()
		body := request.LoginRequest{Username: "alice", Password: "password123"}
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(login), "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("without identity", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "identity_required")
	})

	s.Run("expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "alice")
		token := s.jwt.CreateExpiredToken(t, userID, "alice")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "identity_required")
	})

	s.Run("tampered token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "identity_required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		t := s.T()
		body := request.LoginRequest{Username: "alice", Password: "password123"}
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(login), "")

		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}
