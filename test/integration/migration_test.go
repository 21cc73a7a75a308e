package integration_test

import (
	"testing"

	"recruivo_backend/database"
	"recruivo_backend/internal/models"
	"recruivo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Legacy application rows carry only the student's email. The startup
// backfill links them to users by email and leaves unmatched rows alone.
func TestLegacyApplicationBackfill(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Legacy Backfill Role")

	legacyEmail := uniqueEmail("legacy-student")
	student := &models.User{
		Name:         "Legacy Student",
		Email:        legacyEmail,
		PasswordHash: "password123",
		Role:         models.UserRoleStudent,
	}
	require.NoError(t, helpers.CreateUser(t, ts.DB, student))

	orphanEmail := uniqueEmail("legacy-orphan")
	for _, email := range []string{legacyEmail, orphanEmail} {
		err := ts.DB.Exec(`
			INSERT INTO applications (job_id, student_id, status, applied_at, student_email, student_name)
			VALUES (?, NULL, 'pending', now(), ?, 'Legacy Applicant')`,
			job.ID, email).Error
		require.NoError(t, err, "Seeding a legacy application row must not fail")
	}

	require.NoError(t, database.MigrateLegacyApplications(ts.DB))

	var linked models.Application
	require.NoError(t, ts.DB.First(&linked, "student_email = ?", legacyEmail).Error)
	assert.Equal(t, student.ID, linked.StudentID, "Backfill must link the row to the user by email")

	var unlinked int64
	require.NoError(t, ts.DB.Model(&models.Application{}).
		Where("student_email = ? AND student_id IS NULL", orphanEmail).
		Count(&unlinked).Error)
	assert.EqualValues(t, 1, unlinked, "Rows with no matching user stay unlinked")
}

// Running the backfill twice must not rewrite already linked rows.
func TestLegacyApplicationBackfill_Idempotent(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, student, _ := helpers.CreateAndLoginStudent(t, ts)
	_, recruiter, company := helpers.CreateAndLoginRecruiter(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, recruiter.ID, "Idempotent Backfill Role")
	app := helpers.CreateTestApplication(t, ts.DB, job.ID, student, models.ApplicationStatusShortlisted)

	require.NoError(t, database.MigrateLegacyApplications(ts.DB))

	var reloaded models.Application
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", app.ID).Error)
	assert.Equal(t, student.ID, reloaded.StudentID)
	assert.Equal(t, models.ApplicationStatusShortlisted, reloaded.Status)
}
