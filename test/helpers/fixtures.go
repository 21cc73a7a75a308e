package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"recruivo_backend/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password when a raw one is given.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates a user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	require.NoError(t, err, "Creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginStudent creates a student with a complete profile and an
// active resume, ready to apply to jobs.
func CreateAndLoginStudent(t *testing.T, ts *TestServer) (string, *models.User, *models.StudentProfile) {
	email := fmt.Sprintf("student_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, "Test Student", email, "password123", models.UserRoleStudent)

	profile := &models.StudentProfile{
		UserID:         user.ID,
		University:     "Test University",
		Degree:         "B.Tech",
		Branch:         "Computer Science",
		GraduationYear: 2026,
		ResumeURL:      "/api/v1/files/resumes/" + user.ID + "/resume.pdf",
		Skills:         pq.StringArray{"Go", "SQL"},
		Status:         models.StudentStatusApplying,
	}
	require.NoError(t, ts.DB.Create(profile).Error, "Failed to create student profile")

	resume := &models.Resume{
		StudentID:   user.ID,
		URL:         profile.ResumeURL,
		FileName:    "resume.pdf",
		Size:        1024,
		ContentType: "application/pdf",
		Version:     1,
		IsActive:    true,
	}
	require.NoError(t, ts.DB.Create(resume).Error, "Failed to create resume")

	return token, user, profile
}

// CreateAndLoginRecruiter creates a recruiter and an active company.
func CreateAndLoginRecruiter(t *testing.T, ts *TestServer) (string, *models.User, *models.Company) {
	email := fmt.Sprintf("recruiter_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, "Test Recruiter", email, "password123", models.UserRoleRecruiter)

	company := &models.Company{
		Name:       fmt.Sprintf("Test Company %d", time.Now().UnixNano()),
		Industry:   "Software",
		Location:   "Bangalore",
		Status:     models.CompanyStatusActive,
		IsVerified: true,
	}
	require.NoError(t, ts.DB.Create(company).Error, "Failed to create company")

	return token, user, company
}

// CreateAndLoginAdmin creates an admin user.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateTestJob inserts an open job for the recruiter and company.
func CreateTestJob(t *testing.T, db *gorm.DB, companyID, recruiterID, title string) models.Job {
	job := models.Job{
		CompanyID:   companyID,
		RecruiterID: recruiterID,
		Title:       title,
		Description: "Test description",
		Location:    "Remote",
		Type:        models.JobTypeFullTime,
		Status:      models.JobStatusOpen,
	}
	require.NoError(t, db.Create(&job).Error, "Failed to create test job")
	return job
}

// CreateTestApplication inserts an application directly.
func CreateTestApplication(t *testing.T, db *gorm.DB, jobID string, student *models.User, status models.ApplicationStatus) models.Application {
	application := models.Application{
		JobID:        jobID,
		StudentID:    student.ID,
		Status:       status,
		AppliedAt:    time.Now(),
		ResumeURL:    "/api/v1/files/resumes/" + student.ID + "/resume.pdf",
		StudentName:  student.Name,
		StudentEmail: student.Email,
	}
	require.NoError(t, db.Create(&application).Error, "Failed to create test application")
	return application
}
