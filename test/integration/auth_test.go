package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"recruivo_backend/internal/models"
	"recruivo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())

	registerBody := map[string]interface{}{
		"name":     "Flow Student",
		"email":    email,
		"password": "super_password123",
		"role":     "student",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, "Response: "+regBodyStr)
	assert.Contains(t, regBodyStr, email)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode, "Response: "+logBodyStr)
	assert.Contains(t, logBodyStr, "access_token")
	assert.Contains(t, logBodyStr, "refresh_token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        email,
		PasswordHash: "pass12345",
		Role:         models.UserRoleStudent,
	})
	require.NoError(t, err)

	registerBody := map[string]interface{}{
		"name":     "User Two",
		"email":    email,
		"password": "pass12345",
		"role":     "student",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already in use")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	registerBody := map[string]interface{}{
		"name":     "Weak Password",
		"email":    fmt.Sprintf("weak_%d@test.com", time.Now().UnixNano()),
		"password": "short",
		"role":     "student",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	registerBody := map[string]interface{}{
		"name":     "Wannabe Admin",
		"email":    fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano()),
		"password": "password123",
		"role":     "admin",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("wrongpass_%d@test.com", time.Now().UnixNano())
	_, _ = helpers.CreateAndLoginUser(t, ts, "Wrong Pass", email, "password123", models.UserRoleStudent)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "not_the_password",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestLogin_SuspendedUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("suspended_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Suspended",
		Email:        email,
		PasswordHash: "password123",
		Role:         models.UserRoleStudent,
		Status:       models.UserStatusSuspended,
	})
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRefreshToken_Rotation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("refresh_%d@test.com", time.Now().UnixNano())

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Refresher",
		Email:        email,
		PasswordHash: "password123",
		Role:         models.UserRoleStudent,
	})
	require.NoError(t, err)

	_, loginBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	var loginResponse struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(loginBodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.RefreshToken)

	refreshBody := map[string]interface{}{"refresh_token": loginResponse.RefreshToken}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "access_token")

	// The old token was rotated out and must not work twice.
	res2, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
}

func TestMe_ReturnsProfileAndResume(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user, profile := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, profile.University)
	assert.Contains(t, bodyStr, profile.ResumeURL)
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	res, _ := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
