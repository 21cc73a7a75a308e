package integration_test

import (
	"net/http"
	"testing"

	"recruivo_backend/internal/models"
	"recruivo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, student, _ := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/admin/users?search="+student.Email, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, student.Email)
}

func TestAdminUserList_Forbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/admin/users", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminSuspendUser_RevokesSessions(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, student, _ := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+student.ID+"/status",
		adminToken, map[string]interface{}{"status": "suspended"})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", student.ID).Error)
	assert.Equal(t, models.UserStatusSuspended, updated.Status)

	// Login produced a refresh token; suspension wipes it.
	var tokenCount int64
	ts.DB.Model(&models.RefreshToken{}).Where("user_id = ?", student.ID).Count(&tokenCount)
	assert.Equal(t, int64(0), tokenCount)

	// And the suspended user cannot log in again.
	loginRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    student.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, loginRes.StatusCode)
}

func TestAnalytics_Recruiter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	_, student, _ := helpers.CreateAndLoginStudent(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Analytics Engineer")
	helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusPending)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/recruiter", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "total_jobs")
	assert.Contains(t, bodyStr, "applications_by_status")
	assert.Contains(t, bodyStr, `"pending":1`)
}

func TestAnalytics_AdminOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/admin", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "total_users")
	assert.Contains(t, bodyStr, "users_by_role")

	res, _ = ts.SendRequest(t, "GET", "/api/v1/analytics/admin", recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCompanyStatus_AdminBlacklist(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	recruiterToken, _, company := helpers.CreateAndLoginRecruiter(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/companies/"+company.ID+"/status",
		adminToken, map[string]interface{}{"status": "blacklisted", "verified": false})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	// A blacklisted company can no longer receive job postings.
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/jobs", recruiterToken, map[string]interface{}{
		"company_name": company.Name,
		"title":        "Should Not Post",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "blacklisted")
}
