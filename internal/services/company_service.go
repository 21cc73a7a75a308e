package services

import (
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

type CompanyService interface {
	Create(req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetByID(id string) (*dto.CompanyResponse, error)
	List(status string, page, limit int) (*dto.CompanyListResponse, error)
	UpdateStatus(id string, req *dto.UpdateCompanyStatusRequest) (*dto.CompanyResponse, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) Create(req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &models.Company{
		Name:        req.Name,
		Industry:    req.Industry,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
		Status:      models.CompanyStatusPending,
	}

	if err := s.companyRepo.Create(company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyNameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return toCompanyResponse(company), nil
}

func (s *CompanyServiceImpl) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return toCompanyResponse(company), nil
}

func (s *CompanyServiceImpl) List(status string, page, limit int) (*dto.CompanyListResponse, error) {
	companies, total, err := s.companyRepo.List(repositories.CompanyFilter{
		Status:   models.CompanyStatus(status),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CompanyListResponse{
		Companies: make([]dto.CompanyResponse, 0, len(companies)),
		Total:     total,
		Page:      normalizePage(page),
		Pages:     totalPages(total, limit),
	}
	for i := range companies {
		resp.Companies = append(resp.Companies, *toCompanyResponse(&companies[i]))
	}
	return resp, nil
}

func (s *CompanyServiceImpl) UpdateStatus(id string, req *dto.UpdateCompanyStatusRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.companyRepo.UpdateStatus(company.ID, req.Status, req.Verified); err != nil {
		return nil, apperrors.InternalError(err)
	}

	company.Status = req.Status
	company.IsVerified = req.Verified
	return toCompanyResponse(company), nil
}

func toCompanyResponse(company *models.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Industry:    company.Industry,
		Description: company.Description,
		Location:    company.Location,
		Website:     company.Website,
		Status:      company.Status,
		IsVerified:  company.IsVerified,
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func totalPages(total int64, limit int) int {
	if limit < 1 {
		limit = 20
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}
