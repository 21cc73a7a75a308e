package services

import (
	"time"

	"recruivo_backend/internal/email"
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(studentID, jobID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error)
	List(userID string, role models.UserRole, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)
	GetByID(applicationID, userID string, role models.UserRole) (*dto.ApplicationView, error)
	UpdateStatus(applicationID, userID string, role models.UserRole, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationView, error)
	Withdraw(applicationID, studentID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	studentRepo     repositories.StudentRepository
	userRepo        repositories.UserRepository
	resumeRepo      repositories.ResumeRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	studentRepo repositories.StudentRepository,
	userRepo repositories.UserRepository,
	resumeRepo repositories.ResumeRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		studentRepo:     studentRepo,
		userRepo:        userRepo,
		resumeRepo:      resumeRepo,
		emailProvider:   emailProvider,
	}
}

// Apply runs the submission checks in order: the job must exist and accept
// applications, the student must not have applied yet, must have a profile
// and a resume on file. The insert and the job counter update commit
// together; a concurrent duplicate surfaces as the same already-applied
// error the pre-check produces.
func (s *ApplicationServiceImpl) Apply(studentID, jobID string, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.AcceptsApplications(time.Now()) {
		return nil, apperrors.ErrJobNotOpen
	}

	exists, err := s.applicationRepo.ExistsForJobAndStudent(jobID, studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	profile, err := s.studentRepo.FindByUserID(studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}

	resumeURL := profile.ResumeURL
	if resume, err := s.resumeRepo.FindActiveByStudent(studentID); err == nil {
		resumeURL = resume.URL
	}
	if resumeURL == "" {
		return nil, apperrors.ErrResumeRequired
	}

	user, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:     jobID,
		StudentID: studentID,
		Status:    models.ApplicationStatusPending,
		AppliedAt: time.Now(),
		ResumeURL: resumeURL,
		CoverLetter: req.CoverLetter,

		StudentName:       user.Name,
		StudentEmail:      user.Email,
		StudentUniversity: profile.University,
		StudentDegree:     profile.Degree,
		StudentSkills:     profile.Skills,
	}

	if err := s.applicationRepo.CreateWithCount(application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	application.Job = job
	return &dto.ApplyResponse{
		Success:     true,
		Application: *toApplicationView(application),
	}, nil
}

// List is role scoped: students see their own applications, recruiters see
// applications to their own jobs, admins see everything.
func (s *ApplicationServiceImpl) List(userID string, role models.UserRole, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
	criteria := repositories.ApplicationFilter{
		Status:   models.ApplicationStatus(query.Status),
		JobID:    query.JobID,
		Page:     query.Page,
		PageSize: query.Limit,
	}

	var (
		applications []models.Application
		total        int64
		err          error
	)

	switch role {
	case models.UserRoleStudent:
		applications, total, err = s.applicationRepo.FindByStudent(userID, criteria)
	case models.UserRoleRecruiter:
		var jobIDs []string
		jobIDs, err = s.jobRepo.FindIDsByRecruiter(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		applications, total, err = s.applicationRepo.FindByJobIDs(jobIDs, criteria)
	case models.UserRoleAdmin:
		applications, total, err = s.applicationRepo.FindAll(criteria)
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ApplicationListResponse{
		Applications: make([]dto.ApplicationView, 0, len(applications)),
		Total:        total,
		Page:         normalizePage(query.Page),
		Pages:        totalPages(total, query.Limit),
	}
	for i := range applications {
		resp.Applications = append(resp.Applications, *toApplicationView(&applications[i]))
	}
	return resp, nil
}

func (s *ApplicationServiceImpl) GetByID(applicationID, userID string, role models.UserRole) (*dto.ApplicationView, error) {
	application, err := s.findAuthorized(applicationID, userID, role)
	if err != nil {
		return nil, err
	}
	return toApplicationView(application), nil
}

// UpdateStatus is a recruiter/admin operation. Recruiters may only touch
// applications to their own jobs. The student is notified by email on a
// best-effort basis.
func (s *ApplicationServiceImpl) UpdateStatus(applicationID, userID string, role models.UserRole, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationView, error) {
	if role != models.UserRoleRecruiter && role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	application, err := s.findAuthorized(applicationID, userID, role)
	if err != nil {
		return nil, err
	}

	if !req.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus("application", "Invalid application status")
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, req.Status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	application.Status = req.Status

	jobTitle, companyName := "", ""
	if application.Job != nil {
		jobTitle = application.Job.Title
		if application.Job.Company != nil {
			companyName = application.Job.Company.Name
		}
	}
	if err := s.emailProvider.SendApplicationStatusUpdate(
		application.StudentEmail, application.StudentName,
		jobTitle, companyName, string(req.Status),
	); err != nil {
		logger.WithError(err).Warn("failed to send status update email",
			"application_id", application.ID)
	}

	return toApplicationView(application), nil
}

// Withdraw removes a student's own pending application and rolls the job
// counter back in the same transaction.
func (s *ApplicationServiceImpl) Withdraw(applicationID, studentID string) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NewNotFoundError("application", "Application not found")
		}
		return apperrors.InternalError(err)
	}

	if application.StudentID != studentID {
		return apperrors.ErrInsufficientPermissions
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrApplicationNotPending
	}

	if err := s.applicationRepo.DeleteWithCount(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NewNotFoundError("application", "Application not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) findAuthorized(applicationID, userID string, role models.UserRole) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch role {
	case models.UserRoleAdmin:
	case models.UserRoleStudent:
		if application.StudentID != userID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	case models.UserRoleRecruiter:
		if application.Job == nil || application.Job.RecruiterID != userID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}
	return application, nil
}

func toApplicationView(application *models.Application) *dto.ApplicationView {
	view := &dto.ApplicationView{
		ID:                application.ID,
		JobID:             application.JobID,
		Status:            application.Status,
		AppliedAt:         application.AppliedAt,
		ResumeURL:         application.ResumeURL,
		CoverLetter:       application.CoverLetter,
		StudentName:       application.StudentName,
		StudentEmail:      application.StudentEmail,
		StudentUniversity: application.StudentUniversity,
		StudentDegree:     application.StudentDegree,
		StudentSkills:     application.StudentSkills,
	}
	if view.StudentSkills == nil {
		view.StudentSkills = []string{}
	}
	if application.Job != nil {
		view.JobTitle = application.Job.Title
		view.JobLocation = application.Job.Location
		view.JobType = application.Job.Type
		if application.Job.Company != nil {
			view.CompanyName = application.Job.Company.Name
		}
	}

	// Display defaults so a row with a deleted or unloaded job still renders.
	if view.Status == "" {
		view.Status = models.ApplicationStatusPending
	}
	if view.JobTitle == "" {
		view.JobTitle = "Unknown Position"
	}
	if view.CompanyName == "" {
		view.CompanyName = "Unknown Company"
	}
	return view
}
