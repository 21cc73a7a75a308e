package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"recruivo_backend/internal/auth"
	"recruivo_backend/internal/email"
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	Me(userID string) (*dto.MeResponse, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	studentRepo      repositories.StudentRepository
	resumeRepo       repositories.ResumeRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	studentRepo repositories.StudentRepository,
	resumeRepo repositories.ResumeRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		studentRepo:      studentRepo,
		resumeRepo:       resumeRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	// Admins are seeded at startup, never self-registered.
	if req.Role != models.UserRoleStudent && req.Role != models.UserRoleRecruiter {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         req.Role,
		Status:       models.UserStatusActive,
		Phone:        req.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Welcome email is best effort; registration never fails on it.
	if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
		logger.WithError(err).Warn("failed to send welcome email", "email", user.Email)
	}

	return toUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.refreshTokenRepo.Delete(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	// Rotate: the old token is single use.
	if err := s.refreshTokenRepo.Delete(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.refreshTokenRepo.Delete(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Me returns the full identity payload in one call: the user record, the
// student profile when one exists, and the active resume URL.
func (s *AuthServiceImpl) Me(userID string) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MeResponse{User: toUserResponse(user)}

	if user.Role == models.UserRoleStudent {
		profile, err := s.studentRepo.FindByUserID(userID)
		if err == nil {
			resp.Profile = toStudentProfileResponse(profile)
			resp.ResumeURL = profile.ResumeURL
		} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}

		if resume, err := s.resumeRepo.FindActiveByStudent(userID); err == nil {
			resp.ResumeURL = resume.URL
		}
	}

	return resp, nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role), user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := generateRandomToken()
	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		Phone:      user.Phone,
		AvatarURL:  user.AvatarURL,
		IsVerified: user.IsVerified,
	}
}
