package dto

import "recruivo_backend/internal/models"

type UpsertStudentProfileRequest struct {
	University     string                   `json:"university" validate:"required,min=2,max=200"`
	Degree         string                   `json:"degree" validate:"omitempty,max=100"`
	Branch         string                   `json:"branch" validate:"omitempty,max=100"`
	GraduationYear int                      `json:"graduation_year" validate:"omitempty,min=1950,max=2100"`
	Skills         []string                 `json:"skills" validate:"omitempty,max=50"`
	Experience     []models.ExperienceEntry `json:"experience" validate:"omitempty,max=30"`
	Projects       []models.ProjectEntry    `json:"projects" validate:"omitempty,max=30"`
	Status         models.StudentStatus     `json:"status" validate:"omitempty,is-student-status"`
	City           string                   `json:"city" validate:"omitempty,max=100"`
	About          string                   `json:"about" validate:"omitempty,max=2000"`
}

type StudentProfileResponse struct {
	ID             string                   `json:"id"`
	UserID         string                   `json:"user_id"`
	University     string                   `json:"university"`
	Degree         string                   `json:"degree"`
	Branch         string                   `json:"branch"`
	GraduationYear int                      `json:"graduation_year"`
	ResumeURL      string                   `json:"resume_url"`
	Skills         []string                 `json:"skills"`
	Experience     []models.ExperienceEntry `json:"experience"`
	Projects       []models.ProjectEntry    `json:"projects"`
	Status         models.StudentStatus     `json:"status"`
	City           string                   `json:"city"`
	About          string                   `json:"about"`
	StudentSkills  []StudentSkillView       `json:"student_skills,omitempty"`
}

type StudentSkillView struct {
	SkillID     string `json:"skill_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

type UpdateStudentSkillsRequest struct {
	Skills []StudentSkillInput `json:"skills" validate:"required,max=50,dive"`
}

type StudentSkillInput struct {
	SkillID     string `json:"skill_id" validate:"required,uuid4"`
	Proficiency int    `json:"proficiency" validate:"min=0,max=5"`
}
