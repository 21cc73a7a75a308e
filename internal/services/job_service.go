package services

import (
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	Create(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetByID(id, viewerID string, viewerRole models.UserRole) (*dto.JobResponse, error)
	Update(jobID, recruiterID string, isAdmin bool, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(jobID, recruiterID string, isAdmin bool) error
	Duplicate(jobID, recruiterID string) (*dto.JobResponse, error)
	Search(query *dto.JobSearchQuery) (*dto.JobListResponse, error)
	ListByRecruiter(recruiterID string) ([]dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(jobRepo repositories.JobRepository, companyRepo repositories.CompanyRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, companyRepo: companyRepo}
}

// Create resolves the company by name, creating a pending one when it does
// not exist yet, and inserts the job in the same transaction.
func (s *JobServiceImpl) Create(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		RecruiterID:      recruiterID,
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Type:             req.Type,
		Experience:       req.Experience,
		Skills:           req.Skills,
		Status:           req.Status,
		Deadline:         req.Deadline,
	}
	if job.Type == "" {
		job.Type = models.JobTypeFullTime
	}
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}

	var company *models.Company
	err := s.jobRepo.Transaction(func(tx *gorm.DB) error {
		var err error
		company, err = s.companyRepo.FindOrCreateByName(tx, req.CompanyName)
		if err != nil {
			return err
		}
		if company.Status == models.CompanyStatusBlacklisted {
			return apperrors.ErrCompanyBlacklisted
		}
		job.CompanyID = company.ID
		return s.jobRepo.CreateInTx(tx, job)
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	job.Company = company
	return toJobResponse(job), nil
}

// GetByID returns a job by id. Non-open jobs are hidden from everyone but
// the owning recruiter and admins. Views count only for non-owners.
func (s *JobServiceImpl) GetByID(id, viewerID string, viewerRole models.UserRole) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	isOwner := viewerID != "" && job.RecruiterID == viewerID
	if job.Status != models.JobStatusOpen && !isOwner && viewerRole != models.UserRoleAdmin {
		return nil, apperrors.NewNotFoundError("job", "Job not found")
	}

	if !isOwner {
		if err := s.jobRepo.IncrementViews(job.ID); err != nil {
			logger.WithError(err).Warn("failed to increment job views", "job_id", job.ID)
		} else {
			job.Views++
		}
	}

	return toJobResponse(job), nil
}

func (s *JobServiceImpl) Update(jobID, recruiterID string, isAdmin bool, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findOwned(jobID, recruiterID, isAdmin)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = req.Responsibilities
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobResponse(job), nil
}

func (s *JobServiceImpl) Delete(jobID, recruiterID string, isAdmin bool) error {
	job, err := s.findOwned(jobID, recruiterID, isAdmin)
	if err != nil {
		return err
	}
	if err := s.jobRepo.Delete(job.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Duplicate clones an existing job as a fresh draft with zeroed counters.
func (s *JobServiceImpl) Duplicate(jobID, recruiterID string) (*dto.JobResponse, error) {
	job, err := s.findOwned(jobID, recruiterID, false)
	if err != nil {
		return nil, err
	}

	clone := &models.Job{
		CompanyID:        job.CompanyID,
		RecruiterID:      recruiterID,
		Title:            job.Title + " (Copy)",
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Location:         job.Location,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		Type:             job.Type,
		Experience:       job.Experience,
		Skills:           job.Skills,
		Status:           models.JobStatusDraft,
		Deadline:         job.Deadline,
	}
	if err := s.jobRepo.Create(clone); err != nil {
		return nil, apperrors.InternalError(err)
	}

	clone.Company = job.Company
	return toJobResponse(clone), nil
}

func (s *JobServiceImpl) Search(query *dto.JobSearchQuery) (*dto.JobListResponse, error) {
	// The public listing only ever surfaces open jobs.
	criteria := repositories.JobSearchCriteria{
		Status:   models.JobStatusOpen,
		Type:     models.JobType(query.Type),
		Location: query.Location,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	}

	jobs, total, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.JobListResponse{
		Jobs:  make([]dto.JobResponse, 0, len(jobs)),
		Total: total,
		Page:  normalizePage(query.Page),
		Pages: totalPages(total, query.Limit),
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, *toJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *JobServiceImpl) ListByRecruiter(recruiterID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *toJobResponse(&jobs[i]))
	}
	return out, nil
}

func (s *JobServiceImpl) findOwned(jobID, recruiterID string, isAdmin bool) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin && job.RecruiterID != recruiterID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}

func toJobResponse(job *models.Job) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Location:         job.Location,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		Type:             job.Type,
		Experience:       job.Experience,
		Skills:           job.Skills,
		Status:           job.Status,
		Deadline:         job.Deadline,
		ApplicationCount: job.ApplicationCount,
		Views:            job.Views,
		CreatedAt:        job.CreatedAt,
		RecruiterID:      job.RecruiterID,
	}
	if resp.Requirements == nil {
		resp.Requirements = []string{}
	}
	if resp.Responsibilities == nil {
		resp.Responsibilities = []string{}
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if job.Company != nil {
		resp.Company = *toCompanyResponse(job.Company)
	}
	return resp
}
