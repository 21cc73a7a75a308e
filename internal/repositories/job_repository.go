package repositories

import (
	"errors"
	"time"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	// CreateInTx inserts the job inside an existing transaction, so the
	// find-or-create of its company commits atomically with it.
	CreateInTx(tx *gorm.DB, job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	Search(criteria JobSearchCriteria) ([]models.Job, int64, error)
	FindByRecruiter(recruiterID string) ([]models.Job, error)
	FindIDsByRecruiter(recruiterID string) ([]string, error)
	IncrementViews(jobID string) error
	CloseExpired(now time.Time) (int64, error)
	Count() (int64, error)
	CountByRecruiter(recruiterID string) (int64, error)

	// Transaction starts a DB transaction shared across repositories.
	Transaction(fn func(tx *gorm.DB) error) error
}

type JobSearchCriteria struct {
	Status   models.JobStatus
	Type     models.JobType
	Location string
	Search   string
	Page     int
	PageSize int
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) CreateInTx(tx *gorm.DB, job *models.Job) error {
	return tx.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete removes the job together with its applications so the
// applications foreign key never blocks the delete.
func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Application{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) Search(criteria JobSearchCriteria) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query, _, _ = applyPagination(query.Order("created_at DESC"), criteria.Page, criteria.PageSize)

	var jobs []models.Job
	if err := query.Preload("Company").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindByRecruiter(recruiterID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Company").
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindIDsByRecruiter(recruiterID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Job{}).
		Where("recruiter_id = ?", recruiterID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepositoryImpl) IncrementViews(jobID string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CloseExpired flips open jobs past their deadline to closed.
func (r *JobRepositoryImpl) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.JobStatusOpen, now).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByRecruiter(recruiterID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("recruiter_id = ?", recruiterID).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
