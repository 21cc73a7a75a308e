package dto

import "recruivo_backend/internal/models"

type AdminUserListQuery struct {
	Role   string `form:"role" validate:"omitempty,oneof=student recruiter admin"`
	Status string `form:"status" validate:"omitempty,oneof=pending active suspended"`
	Search string `form:"search" validate:"omitempty,max=200"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type AdminUpdateUserStatusRequest struct {
	Status models.UserStatus `json:"status" validate:"required,oneof=pending active suspended"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}
