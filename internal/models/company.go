package models

type Company struct {
	BaseModel
	Name        string        `gorm:"uniqueIndex;not null" json:"name"`
	Industry    string        `json:"industry"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Website     string        `json:"website"`
	Status      CompanyStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified  bool          `gorm:"default:false" json:"is_verified"`

	// Relations
	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
}
