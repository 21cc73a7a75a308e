package services

import (
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

type UserService interface {
	List(query *dto.AdminUserListQuery) (*dto.UserListResponse, error)
	UpdateStatus(userID string, req *dto.AdminUpdateUserStatusRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func (s *UserServiceImpl) List(query *dto.AdminUserListQuery) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		Status:   models.UserStatus(query.Status),
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: total,
		Page:  normalizePage(query.Page),
		Pages: totalPages(total, query.Limit),
	}
	for i := range users {
		resp.Users = append(resp.Users, *toUserResponse(&users[i]))
	}
	return resp, nil
}

// UpdateStatus changes a user's account status. Suspending revokes every
// refresh token so open sessions die at the next refresh.
func (s *UserServiceImpl) UpdateStatus(userID string, req *dto.AdminUpdateUserStatusRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateStatus(user.ID, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Status = req.Status

	if req.Status == models.UserStatusSuspended {
		if err := s.refreshTokenRepo.DeleteForUser(user.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return toUserResponse(user), nil
}
