package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCreate_FindOrCreateCompany(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts)
	companyName := fmt.Sprintf("Fresh Company %d", time.Now().UnixNano())

	jobBody := map[string]interface{}{
		"company_name": companyName,
		"title":        "Platform Engineer",
		"description":  "Build the platform",
		"type":         "full-time",
		"status":       "open",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", recruiterToken, jobBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, companyName)

	// A pending company record appeared.
	var company models.Company
	require.NoError(t, ts.DB.First(&company, "name = ?", companyName).Error)
	assert.Equal(t, models.CompanyStatusPending, company.Status)

	// Posting again under the same name reuses it.
	jobBody["title"] = "Second Role"
	res, _ = ts.SendRequest(t, "POST", "/api/v1/jobs", recruiterToken, jobBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Company{}).Where("name = ?", companyName).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestJobCreate_StudentForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs", studentToken, map[string]interface{}{
		"company_name": "Student Co",
		"title":        "Should Fail",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestJobSearch_Pagination(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)

	marker := fmt.Sprintf("PaginatedRole%d", time.Now().UnixNano())
	for i := 0; i < 15; i++ {
		helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, fmt.Sprintf("%s #%d", marker, i))
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs?page=2&limit=10&search="+marker, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var listResponse struct {
		Jobs  []json.RawMessage `json:"jobs"`
		Total int64             `json:"total"`
		Page  int               `json:"page"`
		Pages int               `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listResponse))
	assert.Equal(t, int64(15), listResponse.Total)
	assert.Len(t, listResponse.Jobs, 5)
	assert.Equal(t, 2, listResponse.Page)
	assert.Equal(t, 2, listResponse.Pages)
}

func TestJobGet_IncrementsViews(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Viewed Engineer")

	res, _ := ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 1, updated.Views)
}

func TestJobUpdate_Ownership(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	otherToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Owned Engineer")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+job.ID, otherToken,
		map[string]interface{}{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var unchanged models.Job
	require.NoError(t, ts.DB.First(&unchanged, "id = ?", job.ID).Error)
	assert.Equal(t, "Owned Engineer", unchanged.Title)
}

func TestJobDuplicate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Original Engineer")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/duplicate", recruiterToken, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "Original Engineer (Copy)")
	assert.Contains(t, bodyStr, `"status":"draft"`)
	assert.Contains(t, bodyStr, `"application_count":0`)
}

func TestJobSearch_OnlyOpenJobsListed(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)

	marker := fmt.Sprintf("VisibilityRole%d", time.Now().UnixNano())
	open := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, marker+" Open")
	draft := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, marker+" Draft")
	closed := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, marker+" Closed")
	require.NoError(t, ts.DB.Model(&draft).Update("status", models.JobStatusDraft).Error)
	require.NoError(t, ts.DB.Model(&closed).Update("status", models.JobStatusClosed).Error)

	// A status filter on the public listing is ignored, not honored.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs?status=draft&search="+marker, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, open.Title)
	assert.NotContains(t, bodyStr, draft.Title)
	assert.NotContains(t, bodyStr, closed.Title)
}

func TestJobGet_DraftHiddenFromPublic(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	draft := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Hidden Draft Engineer")
	require.NoError(t, ts.DB.Model(&draft).Update("status", models.JobStatusDraft).Error)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/jobs/"+draft.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "Anonymous callers must not see drafts")

	res, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+draft.ID, studentToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "Students must not see drafts")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+draft.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+draft.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJobGet_OwnerViewNotCounted(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Self Viewed Engineer")

	res, _ := ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 0, updated.Views)
}

func TestJobDelete_WithApplications(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	_, student, _ := helpers.CreateAndLoginStudent(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Doomed Engineer")
	helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusPending)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+job.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var jobs int64
	ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Count(&jobs)
	assert.Equal(t, int64(0), jobs)

	var apps int64
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&apps)
	assert.Equal(t, int64(0), apps)
}

func TestJobWorker_ClosesExpired(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Stale Engineer")
	yesterday := time.Now().Add(-24 * time.Hour)
	require.NoError(t, ts.DB.Model(&job).Update("deadline", yesterday).Error)

	closed, err := repositories.NewJobRepository(ts.DB).CloseExpired(time.Now())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, closed, int64(1))

	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
}
