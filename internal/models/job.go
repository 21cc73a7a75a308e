package models

import (
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	CompanyID        string         `gorm:"not null;index" json:"company_id"`
	RecruiterID      string         `gorm:"not null;index" json:"recruiter_id"`
	Title            string         `gorm:"not null" json:"title"`
	Description      string         `json:"description"`
	Requirements     pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Responsibilities pq.StringArray `gorm:"type:text[]" json:"responsibilities"`
	Location         string         `json:"location"`
	SalaryMin        float64        `json:"salary_min"`
	SalaryMax        float64        `json:"salary_max"`
	Type             JobType        `gorm:"type:varchar(20);default:'full-time'" json:"type"`
	Experience       string         `json:"experience"`
	Skills           pq.StringArray `gorm:"type:text[]" json:"skills"`
	Status           JobStatus      `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Deadline         *time.Time     `json:"application_deadline,omitempty"`
	ApplicationCount int            `gorm:"default:0" json:"application_count"`
	Views            int            `gorm:"default:0" json:"views"`

	// Relations
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

// AcceptsApplications reports whether a student may apply right now.
func (j *Job) AcceptsApplications(now time.Time) bool {
	if j.Status != JobStatusOpen {
		return false
	}
	if j.Deadline != nil && j.Deadline.Before(now) {
		return false
	}
	return true
}
