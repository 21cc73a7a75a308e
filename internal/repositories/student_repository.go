package repositories

import (
	"errors"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("student profile not found")
	ErrProfileAlreadyExists = errors.New("student profile already exists for this user")
)

type StudentRepository interface {
	CreateProfile(profile *models.StudentProfile) error
	FindByID(id string) (*models.StudentProfile, error)
	FindByUserID(userID string) (*models.StudentProfile, error)
	UpdateProfile(profile *models.StudentProfile) error
	UpdateResumeURL(userID, resumeURL string) error
	ReplaceSkills(studentID string, skills []models.StudentSkill) error
	CountByStatus(status models.StudentStatus) (int64, error)
}

type StudentRepositoryImpl struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

func (r *StudentRepositoryImpl) CreateProfile(profile *models.StudentProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *StudentRepositoryImpl) FindByID(id string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.Preload("StudentSkills.Skill").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StudentRepositoryImpl) FindByUserID(userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.Preload("StudentSkills.Skill").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StudentRepositoryImpl) UpdateProfile(profile *models.StudentProfile) error {
	return r.db.Save(profile).Error
}

func (r *StudentRepositoryImpl) UpdateResumeURL(userID, resumeURL string) error {
	return r.db.Model(&models.StudentProfile{}).
		Where("user_id = ?", userID).
		Update("resume_url", resumeURL).Error
}

// ReplaceSkills swaps the full StudentSkill set in one transaction.
func (r *StudentRepositoryImpl) ReplaceSkills(studentID string, skills []models.StudentSkill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.StudentSkill{}, "student_id = ?", studentID).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(&skills).Error
	})
}

func (r *StudentRepositoryImpl) CountByStatus(status models.StudentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.StudentProfile{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
