package repositories

import (
	"errors"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	// CreateVersion assigns the next version number, activates the new
	// resume and deactivates every other version, all in one transaction.
	CreateVersion(resume *models.Resume) error
	FindByID(id string) (*models.Resume, error)
	FindByStudent(studentID string) ([]models.Resume, error)
	FindActiveByStudent(studentID string) (*models.Resume, error)
	// Activate makes the given version the active one.
	Activate(studentID, resumeID string) error
	// Delete removes a version; when the active one is removed the newest
	// remaining version is promoted. Returns the now-active resume, or nil
	// when none remain.
	Delete(studentID, resumeID string) (*models.Resume, error)
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) CreateVersion(resume *models.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxVersion int
		err := tx.Model(&models.Resume{}).
			Where("student_id = ?", resume.StudentID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error
		if err != nil {
			return err
		}

		resume.Version = maxVersion + 1
		resume.IsActive = true

		if err := tx.Model(&models.Resume{}).
			Where("student_id = ?", resume.StudentID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Create(resume).Error
	})
}

func (r *ResumeRepositoryImpl) FindByID(id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindByStudent(studentID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Where("student_id = ?", studentID).
		Order("version DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) FindActiveByStudent(studentID string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "student_id = ? AND is_active = ?", studentID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) Activate(studentID, resumeID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var resume models.Resume
		err := tx.First(&resume, "id = ? AND student_id = ?", resumeID, studentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResumeNotFound
			}
			return err
		}

		if err := tx.Model(&models.Resume{}).
			Where("student_id = ?", studentID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.Resume{}).
			Where("id = ?", resumeID).
			Update("is_active", true).Error
	})
}

func (r *ResumeRepositoryImpl) Delete(studentID, resumeID string) (*models.Resume, error) {
	var promoted *models.Resume

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var resume models.Resume
		err := tx.First(&resume, "id = ? AND student_id = ?", resumeID, studentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResumeNotFound
			}
			return err
		}

		if err := tx.Delete(&models.Resume{}, "id = ?", resumeID).Error; err != nil {
			return err
		}

		if !resume.IsActive {
			var active models.Resume
			err := tx.First(&active, "student_id = ? AND is_active = ?", studentID, true).Error
			if err == nil {
				promoted = &active
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return nil
		}

		var newest models.Resume
		err = tx.Where("student_id = ?", studentID).
			Order("version DESC").
			First(&newest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // no versions left
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Resume{}).
			Where("id = ?", newest.ID).
			Update("is_active", true).Error; err != nil {
			return err
		}
		newest.IsActive = true
		promoted = &newest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}
