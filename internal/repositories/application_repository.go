package repositories

import (
	"errors"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and student")
)

type ApplicationRepository interface {
	// CreateWithCount inserts the application and increments the parent
	// job's application_count in one transaction. A unique-index race maps
	// to ErrDuplicateApplication.
	CreateWithCount(application *models.Application) error
	ExistsForJobAndStudent(jobID, studentID string) (bool, error)
	FindByID(id string) (*models.Application, error)
	FindByStudent(studentID string, criteria ApplicationFilter) ([]models.Application, int64, error)
	FindByJobIDs(jobIDs []string, criteria ApplicationFilter) ([]models.Application, int64, error)
	FindAll(criteria ApplicationFilter) ([]models.Application, int64, error)
	UpdateStatus(applicationID string, status models.ApplicationStatus) error
	// DeleteWithCount removes the application and decrements the parent
	// job's counter in one transaction (student withdrawal).
	DeleteWithCount(application *models.Application) error
	CountByStatusForJobs(jobIDs []string) (map[models.ApplicationStatus]int64, error)
	Count() (int64, error)
}

type ApplicationFilter struct {
	Status   models.ApplicationStatus
	JobID    string
	Page     int
	PageSize int
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) CreateWithCount(application *models.Application) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", application.JobID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ExistsForJobAndStudent(jobID, studentID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND student_id = ?", jobID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("Student").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByStudent(studentID string, criteria ApplicationFilter) ([]models.Application, int64, error) {
	query := r.db.Model(&models.Application{}).Where("student_id = ?", studentID)
	return r.list(query, criteria)
}

func (r *ApplicationRepositoryImpl) FindByJobIDs(jobIDs []string, criteria ApplicationFilter) ([]models.Application, int64, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, 0, nil
	}
	query := r.db.Model(&models.Application{}).Where("job_id IN ?", jobIDs)
	return r.list(query, criteria)
}

func (r *ApplicationRepositoryImpl) FindAll(criteria ApplicationFilter) ([]models.Application, int64, error) {
	return r.list(r.db.Model(&models.Application{}), criteria)
}

func (r *ApplicationRepositoryImpl) list(query *gorm.DB, criteria ApplicationFilter) ([]models.Application, int64, error) {
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.JobID != "" {
		query = query.Where("job_id = ?", criteria.JobID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query, _, _ = applyPagination(query.Order("applied_at DESC"), criteria.Page, criteria.PageSize)

	var applications []models.Application
	err := query.Preload("Job").Preload("Job.Company").Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(applicationID string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) DeleteWithCount(application *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Application{}, "id = ?", application.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return tx.Model(&models.Job{}).
			Where("id = ? AND application_count > 0", application.JobID).
			UpdateColumn("application_count", gorm.Expr("application_count - 1")).Error
	})
}

func (r *ApplicationRepositoryImpl) CountByStatusForJobs(jobIDs []string) (map[models.ApplicationStatus]int64, error) {
	counts := make(map[models.ApplicationStatus]int64)
	if len(jobIDs) == 0 {
		return counts, nil
	}

	type statusCount struct {
		Status models.ApplicationStatus
		Count  int64
	}
	var rows []statusCount
	err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Where("job_id IN ?", jobIDs).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *ApplicationRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}
