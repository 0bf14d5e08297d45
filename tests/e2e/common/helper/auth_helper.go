//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"hoteldesk/internal/handler/dto/request"
	"hoteldesk/internal/handler/dto/response"
	"hoteldesk/tests/common/dbtest"
	commonhttp "hoteldesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const loginURL = "/api/auth/login"

// test users created by dbtest share this password
const TestPassword = "password123"

// LoginUser logs in through the real endpoint and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, loginURL, request.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed for %s", email)

	var tokens response.TokenResponse
	require.NoError(t, commonhttp.DecodeResponseBody(t, w.Body, &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	return tokens.AccessToken
}

// CreateAndLogin inserts a user directly and returns an access token for it.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, hotelID *uuid.UUID) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email, role, hotelID)
	token := LoginUser(t, router, email, TestPassword)
	return userID, token
}
