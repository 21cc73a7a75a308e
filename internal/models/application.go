package models

import (
	"time"

	"github.com/lib/pq"
)

// Application links a student (by user id, the single canonical reference)
// to a job. The composite unique index guarantees one application per
// (job, student) pair; the legacy email-only rows are reconciled once at
// startup by database.MigrateLegacyApplications.
type Application struct {
	BaseModel
	JobID string `gorm:"not null;uniqueIndex:idx_applications_job_student" json:"job_id"`
	// Nullable so pre-backfill rows that match no user stay representable.
	StudentID string `gorm:"uniqueIndex:idx_applications_job_student;index" json:"student_id"`
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AppliedAt time.Time         `gorm:"not null" json:"applied_at"`

	// Resume URL captured at submission time; later uploads do not rewrite it.
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`

	// Denormalized student fields for recruiter list views.
	StudentName       string         `json:"student_name"`
	StudentEmail      string         `gorm:"index" json:"student_email"`
	StudentUniversity string         `json:"student_university"`
	StudentDegree     string         `json:"student_degree"`
	StudentSkills     pq.StringArray `gorm:"type:text[]" json:"student_skills"`

	// Relations
	Job     *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
