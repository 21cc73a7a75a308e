package repositories

import (
	"errors"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id string) (*models.Company, error)
	FindByName(name string) (*models.Company, error)
	// FindOrCreateByName returns the existing company for name or creates a
	// pending one inside tx. Used when a recruiter posts under a new employer.
	FindOrCreateByName(tx *gorm.DB, name string) (*models.Company, error)
	Update(company *models.Company) error
	UpdateStatus(companyID string, status models.CompanyStatus, verified bool) error
	List(criteria CompanyFilter) ([]models.Company, int64, error)
	Count() (int64, error)
}

type CompanyFilter struct {
	Status   models.CompanyStatus
	Search   string
	Page     int
	PageSize int
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	if err := r.db.Create(company).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByName(name string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindOrCreateByName(tx *gorm.DB, name string) (*models.Company, error) {
	if tx == nil {
		tx = r.db
	}

	var company models.Company
	err := tx.First(&company, "name = ?", name).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company = models.Company{
		Name:   name,
		Status: models.CompanyStatusPending,
	}
	if err := tx.Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepositoryImpl) UpdateStatus(companyID string, status models.CompanyStatus, verified bool) error {
	result := r.db.Model(&models.Company{}).
		Where("id = ?", companyID).
		Updates(map[string]interface{}{"status": status, "is_verified": verified})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) List(criteria CompanyFilter) ([]models.Company, int64, error) {
	query := r.db.Model(&models.Company{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		query = query.Where("name ILIKE ?", "%"+criteria.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query, _, _ = applyPagination(query.Order("name ASC"), criteria.Page, criteria.PageSize)

	var companies []models.Company
	if err := query.Find(&companies).Error; err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *CompanyRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Count(&count).Error
	return count, err
}
