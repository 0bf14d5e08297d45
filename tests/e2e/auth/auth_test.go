//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/handler/dto/request"
	"hoteldesk/internal/handler/dto/response"
	"hoteldesk/tests/common/dbtest"
	commonhttp "hoteldesk/tests/common/httptest"
	"hoteldesk/tests/e2e"
	"hoteldesk/tests/e2e/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "manager@example.com", string(user.RoleManager), nil)
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff), nil)
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleManager), nil)

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "manager@example.com",
			password:       helper.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       helper.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "manager@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "deactivated user",
			email:          "inactive@example.com",
			password:       helper.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty email",
			email:          "",
			password:       helper.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "manager@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var tokens response.TokenResponse
				err := commonhttp.DecodeResponseBody(t, w.Body, &tokens)
				require.NoError(t, err)
				require.NotEmpty(t, tokens.AccessToken, "access token missing")
				require.NotEmpty(t, tokens.RefreshToken, "refresh token missing")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{
					Email:    "manager@example.com",
					Password: helper.TestPassword,
				}
				w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				var tokens response.TokenResponse
				commonhttp.DecodeResponseBody(s.T(), w.Body, &tokens)
				return tokens.RefreshToken
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "garbage refresh token",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "empty refresh token",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := gin.H{"refresh_token": tt.setupRefreshToken()}

			w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var tokens response.TokenResponse
				err := commonhttp.DecodeResponseBody(t, w.Body, &tokens)
				require.NoError(t, err)
				require.NotEmpty(t, tokens.AccessToken, "new access token missing")
				require.NotEmpty(t, tokens.RefreshToken, "new refresh token missing")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupToken     func() (string, string)
		expectedStatus int
	}{
		{
			name: "manager profile",
			setupToken: func() (string, string) {
				email := "manager@example.com"
				return email, helper.LoginUser(s.T(), s.Router, email, helper.TestPassword)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "staff profile",
			setupToken: func() (string, string) {
				email := "staff@example.com"
				return email, helper.LoginUser(s.T(), s.Router, email, helper.TestPassword)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			setupToken: func() (string, string) {
				return "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing token",
			setupToken: func() (string, string) {
				return "", ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, token := tt.setupToken()
			w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, email)
				require.NotContains(t, body, "password", "profile response leaks password data")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("logout then reuse token", func() {
		t := s.T()

		token := helper.LoginUser(t, s.Router, "manager@example.com", helper.TestPassword)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("logout without token", func() {
		t := s.T()

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRegisterRequiresAdmin() {
	s.Run("manager cannot register users", func() {
		t := s.T()

		token := helper.LoginUser(t, s.Router, "manager@example.com", helper.TestPassword)
		reqBody := request.RegisterRequest{
			Email:    "newstaff@example.com",
			Password: "supersecret1",
			Role:     string(user.RoleStaff),
		}

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("admin registers a user who can then log in", func() {
		t := s.T()

		token := helper.LoginUser(t, s.Router, "admin@hoteldesk.test", helper.TestPassword)
		reqBody := request.RegisterRequest{
			Email:    "newstaff@example.com",
			Password: "supersecret1",
			Role:     string(user.RoleStaff),
		}

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		helper.LoginUser(t, s.Router, "newstaff@example.com", "supersecret1")
	})
}
