package dto

import (
	"time"

	"recruivo_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

type ApplicationListQuery struct {
	Status string `form:"status" validate:"omitempty,is-application-status"`
	JobID  string `form:"job_id" validate:"omitempty,uuid4"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// ApplicationView is the flat display shape: every field is filled with a
// defined default so clients never see missing values.
type ApplicationView struct {
	ID                string                   `json:"id"`
	JobID             string                   `json:"job_id"`
	JobTitle          string                   `json:"job_title"`
	JobLocation       string                   `json:"job_location"`
	JobType           models.JobType           `json:"job_type"`
	CompanyName       string                   `json:"company_name"`
	Status            models.ApplicationStatus `json:"status"`
	AppliedAt         time.Time                `json:"applied_at"`
	ResumeURL         string                   `json:"resume_url"`
	CoverLetter       string                   `json:"cover_letter"`
	StudentName       string                   `json:"student_name"`
	StudentEmail      string                   `json:"student_email"`
	StudentUniversity string                   `json:"student_university"`
	StudentDegree     string                   `json:"student_degree"`
	StudentSkills     []string                 `json:"student_skills"`
}

type ApplicationListResponse struct {
	Applications []ApplicationView `json:"applications"`
	Total        int64             `json:"total"`
	Page         int               `json:"page"`
	Pages        int               `json:"pages"`
}

type ApplyResponse struct {
	Success     bool            `json:"success"`
	Application ApplicationView `json:"application"`
}
