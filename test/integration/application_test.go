package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"recruivo_backend/internal/models"
	"recruivo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Success(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, student, profile := helpers.CreateAndLoginStudent(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Backend Engineer")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken,
		map[string]interface{}{"cover_letter": "I would love to join."})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, `"success":true`)
	assert.Contains(t, bodyStr, student.Email)
	assert.Contains(t, bodyStr, profile.University)

	// Counter moved with the insert.
	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 1, updated.ApplicationCount)

	// Denormalized snapshot landed on the row.
	var application models.Application
	require.NoError(t, ts.DB.First(&application, "job_id = ? AND student_id = ?", job.ID, student.ID).Error)
	assert.Equal(t, student.Name, application.StudentName)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.NotEmpty(t, application.ResumeURL)
}

func TestApply_Duplicate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Dup Check Engineer")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res2, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode)
	assert.Contains(t, bodyStr, "You have already applied to this job")

	// The counter did not move on the rejected attempt.
	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 1, updated.ApplicationCount)
}

func TestApply_ClosedJob(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Closed Position")
	require.NoError(t, ts.DB.Model(&job).Update("status", models.JobStatusClosed).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "not accepting applications")
}

func TestApply_PastDeadline(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Expired Position")
	yesterday := time.Now().Add(-24 * time.Hour)
	require.NoError(t, ts.DB.Model(&job).Update("deadline", yesterday).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "not accepting applications")
}

func TestApply_NoResume(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Resume Required")

	// Student with a profile but no resume at all.
	studentToken, student := helpers.CreateAndLoginUser(t, ts, "No Resume",
		uniqueEmail("noresume"), "password123", models.UserRoleStudent)
	profile := &models.StudentProfile{
		UserID:     student.ID,
		University: "Test University",
	}
	require.NoError(t, ts.DB.Create(profile).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "upload a resume")
}

func TestApply_NoProfile(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Profile Required")

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, "No Profile",
		uniqueEmail("noprofile"), "password123", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "complete your student profile")
}

func TestApply_RecruiterForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "No Self Apply")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplicationList_RoleScoping(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	otherRecruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, student, _ := helpers.CreateAndLoginStudent(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Scoping Engineer")
	helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusPending)

	// The student sees their own application.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/applications", studentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, job.ID)

	// The owning recruiter sees it too.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/applications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, student.Email)

	// A different recruiter sees none of it.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/applications", otherRecruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, student.Email)
}

func TestApplicationList_Pagination(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, student, _ := helpers.CreateAndLoginStudent(t, ts)

	for i := 0; i < 15; i++ {
		job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Paged Engineer")
		helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusPending)
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/applications?page=2&limit=10", studentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var listResponse struct {
		Applications []json.RawMessage `json:"applications"`
		Total        int64             `json:"total"`
		Page         int               `json:"page"`
		Pages        int               `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listResponse))
	assert.Equal(t, int64(15), listResponse.Total)
	assert.Len(t, listResponse.Applications, 5)
	assert.Equal(t, 2, listResponse.Page)
	assert.Equal(t, 2, listResponse.Pages)
}

func TestApplicationStatusUpdate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	otherRecruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts)
	_, student, _ := helpers.CreateAndLoginStudent(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Status Engineer")
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusPending)

	// Another recruiter cannot touch it.
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status",
		otherRecruiterToken, map[string]interface{}{"status": "shortlisted"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The owning recruiter can.
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status",
		recruiterToken, map[string]interface{}{"status": "shortlisted"})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "shortlisted")

	var updated models.Application
	require.NoError(t, ts.DB.First(&updated, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)
}

func TestApplicationWithdraw(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Withdraw Engineer")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications/jobs/"+job.ID, studentToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "job_id = ?", job.ID).Error)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/applications/"+application.ID, studentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Row gone, counter rolled back.
	var count int64
	ts.DB.Model(&models.Application{}).Where("id = ?", application.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 0, updated.ApplicationCount)
}

func TestApplicationWithdraw_NotPending(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, student, _ := helpers.CreateAndLoginStudent(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Locked Engineer")
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusShortlisted)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/v1/applications/"+application.ID, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Only pending applications")
}
