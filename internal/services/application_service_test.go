package services

import (
	"testing"

	"recruivo_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplicationViewDefaults(t *testing.T) {
	view := toApplicationView(&models.Application{})

	assert.Equal(t, models.ApplicationStatusPending, view.Status)
	assert.Equal(t, "Unknown Position", view.JobTitle)
	assert.Equal(t, "Unknown Company", view.CompanyName)
	assert.NotNil(t, view.StudentSkills)
	assert.Empty(t, view.StudentSkills)
}

func TestApplicationViewUsesLoadedJob(t *testing.T) {
	application := &models.Application{
		Status: models.ApplicationStatusShortlisted,
		Job: &models.Job{
			Title:    "Backend Engineer",
			Location: "Almaty",
			Type:     models.JobTypeFullTime,
			Company:  &models.Company{Name: "Acme"},
		},
	}

	view := toApplicationView(application)

	assert.Equal(t, models.ApplicationStatusShortlisted, view.Status)
	assert.Equal(t, "Backend Engineer", view.JobTitle)
	assert.Equal(t, "Acme", view.CompanyName)
	assert.Equal(t, "Almaty", view.JobLocation)
}
