//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"dealswap/internal/handler/api"
	"dealswap/internal/handler/httperr"
	"dealswap/internal/handler/middleware"
	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/shared"
	"dealswap/tests/common/builder"
	"dealswap/tests/common/httptest"
	"dealswap/tests/common/testutil"
	commandsmock "dealswap/tests/mock/commands"
	queriesmock "dealswap/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer header becomes the given actor.
func fakeAuth(actor shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(
				http.StatusUnauthorized, httperr.CodeIdentityRequired, "Unauthorized", nil))
			return
		}
		middleware.SetActor(c, actor)
		c.Next()
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	actor        shared.Actor
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.actor = shared.Actor{UserID: uuid.New(), Username: "alice", SessionID: uuid.New()}

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", fakeAuth(s.actor), s.handler.Logout)
	s.router.GET("/auth/me", fakeAuth(s.actor), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) authResult(username string) *commands.AuthResult {
	return &commands.AuthResult{
		UserID:    uuid.New(),
		Username:  username,
		SessionID: uuid.New(),
		Token:     "test-jwt-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := builder.NewAuthBuilder().BuildSignupDTO()

	s.Run("success: returns 201 with token and cookie", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).
			Return(s.authResult("alice"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("alice", response.Username)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseAuth{
			{name: "username too short", mutate: testutil.Field("username", "ab"), expectCode: http.StatusBadRequest},
			{name: "username too long", mutate: testutil.Field("username", strings.Repeat("a", 33)), expectCode: http.StatusBadRequest},
			{name: "password too short", mutate: testutil.Field("password", "1234567"), expectCode: http.StatusBadRequest},
			{name: "password too long", mutate: testutil.Field("password", strings.Repeat("p", 73)), expectCode: http.StatusBadRequest},
			{name: "missing field: username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidation)
			})
		}
	})

	s.Run("error: taken username is 409 conflict", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).
			Return(nil, errs.Mark(commands.ErrUsernameTaken, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeConflict)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrUsernameTaken.Error())
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(s.authResult("alice"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("test-jwt-token", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"username", "password"} {
			requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		}
	})

	s.Run("error: maps engine errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.Mark(commands.ErrInvalidCredentials, errs.ErrIdentityRequired),
				expectedStatus: http.StatusUnauthorized,
				expectedCode:   httperr.CodeIdentityRequired,
				expectedMsg:    commands.ErrInvalidCredentials.Error(),
			},
			{
				name:           "user inactive",
				commandsError:  errs.Mark(commands.ErrUserInactive, errs.ErrForbidden),
				expectedStatus: http.StatusForbidden,
				expectedCode:   httperr.CodeForbidden,
				expectedMsg:    commands.ErrUserInactive.Error(),
			},
			{
				name:           "store unavailable",
				commandsError:  errs.Mark(errors.New("dial tcp: refused"), errs.ErrUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedCode:   httperr.CodeUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   httperr.CodeInternal,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current user", func() {
		view := builder.NewUserBuilder().BuildView()
		view.ID = s.actor.UserID
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actor.UserID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.actor.UserID, response.ID)
		s.Equal("alice", response.Username)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, httperr.CodeIdentityRequired)
	})

	s.Run("error: 404 when the user is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actor.UserID).
			Return(nil, errs.Mark(errs.New("user not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}
