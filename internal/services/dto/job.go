package dto

import (
	"time"

	"recruivo_backend/internal/models"
)

type CreateJobRequest struct {
	CompanyName      string           `json:"company_name" validate:"required,min=2,max=200"`
	Title            string           `json:"title" validate:"required,min=3,max=200"`
	Description      string           `json:"description" validate:"omitempty,max=10000"`
	Requirements     []string         `json:"requirements" validate:"omitempty,max=50"`
	Responsibilities []string         `json:"responsibilities" validate:"omitempty,max=50"`
	Location         string           `json:"location" validate:"omitempty,max=200"`
	SalaryMin        float64          `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax        float64          `json:"salary_max" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Type             models.JobType   `json:"type" validate:"omitempty,is-job-type"`
	Experience       string           `json:"experience" validate:"omitempty,max=100"`
	Skills           []string         `json:"skills" validate:"omitempty,max=50"`
	Status           models.JobStatus `json:"status" validate:"omitempty,is-job-status"`
	Deadline         *time.Time       `json:"application_deadline"`
}

type UpdateJobRequest struct {
	Title            *string           `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description      *string           `json:"description,omitempty" validate:"omitempty,max=10000"`
	Requirements     []string          `json:"requirements,omitempty" validate:"omitempty,max=50"`
	Responsibilities []string          `json:"responsibilities,omitempty" validate:"omitempty,max=50"`
	Location         *string           `json:"location,omitempty" validate:"omitempty,max=200"`
	SalaryMin        *float64          `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax        *float64          `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Type             *models.JobType   `json:"type,omitempty" validate:"omitempty,is-job-type"`
	Experience       *string           `json:"experience,omitempty" validate:"omitempty,max=100"`
	Skills           []string          `json:"skills,omitempty" validate:"omitempty,max=50"`
	Status           *models.JobStatus `json:"status,omitempty" validate:"omitempty,is-job-status"`
	Deadline         *time.Time        `json:"application_deadline,omitempty"`
}

// JobSearchQuery covers the public listing. Status is not a public filter;
// recruiters see their non-open jobs through /jobs/my.
type JobSearchQuery struct {
	Type     string `form:"type" validate:"omitempty,is-job-type"`
	Location string `form:"location" validate:"omitempty,max=200"`
	Search   string `form:"search" validate:"omitempty,max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type JobResponse struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Requirements     []string         `json:"requirements"`
	Responsibilities []string         `json:"responsibilities"`
	Location         string           `json:"location"`
	SalaryMin        float64          `json:"salary_min"`
	SalaryMax        float64          `json:"salary_max"`
	Type             models.JobType   `json:"type"`
	Experience       string           `json:"experience"`
	Skills           []string         `json:"skills"`
	Status           models.JobStatus `json:"status"`
	Deadline         *time.Time       `json:"application_deadline,omitempty"`
	ApplicationCount int              `json:"application_count"`
	Views            int              `json:"views"`
	CreatedAt        time.Time        `json:"created_at"`
	RecruiterID      string           `json:"recruiter_id"`
	Company          CompanyResponse  `json:"company"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}
