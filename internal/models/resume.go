package models

import (
	"gorm.io/datatypes"
)

// Resume is one uploaded resume version. A student may keep several
// versions; exactly one carries IsActive.
type Resume struct {
	BaseModel
	StudentID   string         `gorm:"not null;index" json:"student_id"`
	URL         string         `gorm:"not null" json:"url"`
	FileName    string         `json:"file_name"`
	Size        int64          `json:"size"`
	ContentType string         `json:"content_type"`
	Version     int            `gorm:"not null;default:1" json:"version"`
	IsActive    bool           `gorm:"default:false;index" json:"is_active"`
	Parsed      datatypes.JSON `gorm:"type:jsonb" json:"parsed,omitempty"` // {education, experience, skills, projects, certifications}
}
