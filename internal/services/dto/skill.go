package dto

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

type SkillResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
