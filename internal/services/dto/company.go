package dto

import "recruivo_backend/internal/models"

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type UpdateCompanyStatusRequest struct {
	Status   models.CompanyStatus `json:"status" validate:"required,oneof=active pending blacklisted"`
	Verified bool                 `json:"verified"`
}

type CompanyResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Industry    string               `json:"industry"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	Website     string               `json:"website"`
	Status      models.CompanyStatus `json:"status"`
	IsVerified  bool                 `json:"is_verified"`
}

type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Pages     int               `json:"pages"`
}
