package dto

import "recruivo_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`
	Phone    string          `json:"phone" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       models.UserRole   `json:"role"`
	Status     models.UserStatus `json:"status"`
	Phone      string            `json:"phone,omitempty"`
	AvatarURL  string            `json:"avatar_url,omitempty"`
	IsVerified bool              `json:"is_verified"`
}

// MeResponse is the single authoritative identity lookup: user, profile
// subset and the current resume URL in one payload.
type MeResponse struct {
	User      *UserResponse           `json:"user"`
	Profile   *StudentProfileResponse `json:"profile,omitempty"`
	ResumeURL string                  `json:"resume_url,omitempty"`
}
