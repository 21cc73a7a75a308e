package models

// Skill is the normalized skill taxonomy.
type Skill struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Category string `json:"category"`
}

// StudentSkill joins a student profile to a taxonomy skill with proficiency.
type StudentSkill struct {
	BaseModel
	StudentID   string `gorm:"not null;uniqueIndex:idx_student_skill" json:"student_id"`
	SkillID     string `gorm:"not null;uniqueIndex:idx_student_skill" json:"skill_id"`
	Proficiency int    `gorm:"default:0" json:"proficiency"` // 0-5

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
