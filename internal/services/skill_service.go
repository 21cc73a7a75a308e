package services

import (
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

type SkillService interface {
	Create(req *dto.CreateSkillRequest) (*dto.SkillResponse, error)
	List(search string) ([]dto.SkillResponse, error)
}

type SkillServiceImpl struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &SkillServiceImpl{skillRepo: skillRepo}
}

func (s *SkillServiceImpl) Create(req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	skill := &models.Skill{
		Name:     req.Name,
		Category: req.Category,
	}
	if err := s.skillRepo.Create(skill); err != nil {
		if apperrors.Is(err, repositories.ErrSkillAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "skill", "Skill already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return toSkillResponse(skill), nil
}

func (s *SkillServiceImpl) List(search string) ([]dto.SkillResponse, error) {
	skills, err := s.skillRepo.List(search)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		out = append(out, *toSkillResponse(&skills[i]))
	}
	return out, nil
}

func toSkillResponse(skill *models.Skill) *dto.SkillResponse {
	return &dto.SkillResponse{
		ID:       skill.ID,
		Name:     skill.Name,
		Category: skill.Category,
	}
}
