package repositories

import (
	"errors"

	"recruivo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillAlreadyExists = errors.New("skill already exists")
)

type SkillRepository interface {
	Create(skill *models.Skill) error
	FindByID(id string) (*models.Skill, error)
	FindByIDs(ids []string) ([]models.Skill, error)
	List(search string) ([]models.Skill, error)
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) Create(skill *models.Skill) error {
	if err := r.db.Create(skill).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSkillAlreadyExists
		}
		return err
	}
	return nil
}

func (r *SkillRepositoryImpl) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindByIDs(ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) List(search string) ([]models.Skill, error) {
	query := r.db.Model(&models.Skill{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var skills []models.Skill
	err := query.Order("name ASC").Find(&skills).Error
	return skills, err
}
