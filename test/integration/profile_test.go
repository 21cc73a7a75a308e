package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"recruivo_backend/internal/models"
	"recruivo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpsert_CreateThenUpdate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts, "Fresh Student",
		uniqueEmail("freshprofile"), "password123", models.UserRoleStudent)

	profileBody := map[string]interface{}{
		"university":      "IIT Delhi",
		"degree":          "B.Tech",
		"branch":          "CSE",
		"graduation_year": 2026,
		"skills":          []string{"Go", "Postgres"},
		"city":            "Delhi",
		"experience": []map[string]interface{}{
			{"title": "Intern", "company": "Acme", "from": "2024-05", "to": "2024-08"},
		},
	}
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/students/me", token, profileBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, "IIT Delhi")

	var profile models.StudentProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "IIT Delhi", profile.University)
	assert.Len(t, profile.GetExperience(), 1)

	// Second save updates in place instead of duplicating.
	profileBody["university"] = "IIT Bombay"
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/v1/students/me", token, profileBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "IIT Bombay")

	var count int64
	ts.DB.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProfileGet_RecruiterView(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts)
	studentToken, _, profile := helpers.CreateAndLoginStudent(t, ts)

	// Recruiters read profiles by profile id.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/students/"+profile.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, profile.University)

	// Students cannot browse other profiles through this route.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/students/"+profile.ID, studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestProfileSkills_Replace(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user, _ := helpers.CreateAndLoginStudent(t, ts)

	skills := []models.Skill{
		{Name: fmt.Sprintf("Go %d", time.Now().UnixNano()), Category: "language"},
		{Name: fmt.Sprintf("SQL %d", time.Now().UnixNano()), Category: "database"},
	}
	for i := range skills {
		require.NoError(t, ts.DB.Create(&skills[i]).Error)
	}

	body := map[string]interface{}{
		"skills": []map[string]interface{}{
			{"skill_id": skills[0].ID, "proficiency": 4},
			{"skill_id": skills[1].ID, "proficiency": 3},
		},
	}
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/students/me/skills", token, body)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var count int64
	ts.DB.Model(&models.StudentSkill{}).Where("student_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	// Replacing with one entry drops the other.
	body["skills"] = []map[string]interface{}{
		{"skill_id": skills[0].ID, "proficiency": 5},
	}
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/students/me/skills", token, body)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	ts.DB.Model(&models.StudentSkill{}).Where("student_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProfileUpsert_UnknownSkillID(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _, _ := helpers.CreateAndLoginStudent(t, ts)

	body := map[string]interface{}{
		"skills": []map[string]interface{}{
			{"skill_id": "f2f1b9a8-0000-4000-8000-000000000000", "proficiency": 2},
		},
	}
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/students/me/skills", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
