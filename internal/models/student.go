package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type StudentProfile struct {
	BaseModel
	UserID         string         `gorm:"uniqueIndex;not null" json:"user_id"`
	University     string         `gorm:"not null" json:"university"`
	Degree         string         `json:"degree"`
	Branch         string         `json:"branch"`
	GraduationYear int            `json:"graduation_year"`
	ResumeURL      string         `json:"resume_url"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Experience     datatypes.JSON `gorm:"type:jsonb" json:"experience"` // [{title, company, from, to, description}]
	Projects       datatypes.JSON `gorm:"type:jsonb" json:"projects"`   // [{name, description, url}]
	Status         StudentStatus  `gorm:"type:varchar(20);default:'applying'" json:"status"`
	City           string         `json:"city"`
	About          string         `json:"about"`

	// Relations are keyed by the user id, the canonical student reference.
	Resumes       []Resume       `gorm:"foreignKey:StudentID;references:UserID" json:"resumes,omitempty"`
	StudentSkills []StudentSkill `gorm:"foreignKey:StudentID;references:UserID" json:"student_skills,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// GetExperience decodes the JSONB experience column.
func (p *StudentProfile) GetExperience() []ExperienceEntry {
	var entries []ExperienceEntry
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &entries)
	}
	return entries
}

func (p *StudentProfile) SetExperience(entries []ExperienceEntry) {
	data, _ := json.Marshal(entries)
	p.Experience = datatypes.JSON(data)
}

// GetProjects decodes the JSONB projects column.
func (p *StudentProfile) GetProjects() []ProjectEntry {
	var entries []ProjectEntry
	if len(p.Projects) > 0 {
		_ = json.Unmarshal(p.Projects, &entries)
	}
	return entries
}

func (p *StudentProfile) SetProjects(entries []ProjectEntry) {
	data, _ := json.Marshal(entries)
	p.Projects = datatypes.JSON(data)
}
