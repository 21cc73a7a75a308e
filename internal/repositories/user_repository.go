package repositories

import (
	"errors"
	"time"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateStatus(userID string, status models.UserStatus) error
	Delete(userID string) error
	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)
	CountByRole(role models.UserRole) (int64, error)
	CountByStatus(status models.UserStatus) (int64, error)
	GetRegistrationStats(days int) (*RegistrationStats, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

type UserFilter struct {
	Role     models.UserRole
	Status   models.UserStatus
	Search   string
	Page     int
	PageSize int
}

type RegistrationStats struct {
	Total     int64            `json:"total"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"this_week"`
	ThisMonth int64            `json:"this_month"`
	ByRole    map[string]int64 `json:"by_role"`
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("StudentProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("StudentProfile").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateStatus(userID string, status models.UserStatus) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	return r.db.Delete(&models.User{}, "id = ?", userID).Error
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByStatus(status models.UserStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) GetRegistrationStats(days int) (*RegistrationStats, error) {
	stats := &RegistrationStats{ByRole: make(map[string]int64)}
	now := time.Now()

	if err := r.db.Model(&models.User{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	today := now.Truncate(24 * time.Hour)
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", today).Count(&stats.Today).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.ThisWeek).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", now.AddDate(0, -1, 0)).Count(&stats.ThisMonth).Error; err != nil {
		return nil, err
	}

	type roleCount struct {
		Role  string
		Count int64
	}
	var byRole []roleCount
	err := r.db.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&byRole).Error
	if err != nil {
		return nil, err
	}
	for _, rc := range byRole {
		stats.ByRole[rc.Role] = rc.Count
	}

	return stats, nil
}
