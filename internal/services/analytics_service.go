package services

import (
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

type AnalyticsService interface {
	RecruiterDashboard(recruiterID string) (*dto.RecruiterAnalytics, error)
	AdminDashboard() (*dto.AdminAnalytics, error)
}

type AnalyticsServiceImpl struct {
	userRepo        repositories.UserRepository
	studentRepo     repositories.StudentRepository
	companyRepo     repositories.CompanyRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	studentRepo repositories.StudentRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:        userRepo,
		studentRepo:     studentRepo,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *AnalyticsServiceImpl) RecruiterDashboard(recruiterID string) (*dto.RecruiterAnalytics, error) {
	jobIDs, err := s.jobRepo.FindIDsByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byStatus, err := s.applicationRepo.CountByStatusForJobs(jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	analytics := &dto.RecruiterAnalytics{
		TotalJobs:            int64(len(jobIDs)),
		ApplicationsByStatus: make(map[string]int64, len(byStatus)),
	}
	for status, count := range byStatus {
		analytics.ApplicationsByStatus[string(status)] = count
		analytics.TotalApplications += count
	}
	if analytics.TotalJobs > 0 {
		analytics.AverageApplicationsPerJob = float64(analytics.TotalApplications) / float64(analytics.TotalJobs)
	}
	return analytics, nil
}

func (s *AnalyticsServiceImpl) AdminDashboard() (*dto.AdminAnalytics, error) {
	analytics := &dto.AdminAnalytics{
		UsersByRole: make(map[string]int64, 3),
	}

	for _, role := range []models.UserRole{models.UserRoleStudent, models.UserRoleRecruiter, models.UserRoleAdmin} {
		count, err := s.userRepo.CountByRole(role)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		analytics.UsersByRole[string(role)] = count
		analytics.TotalUsers += count
	}

	stats, err := s.userRepo.GetRegistrationStats(30)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	analytics.Registrations = stats

	if analytics.TotalCompanies, err = s.companyRepo.Count(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if analytics.TotalJobs, err = s.jobRepo.Count(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if analytics.TotalApplications, err = s.applicationRepo.Count(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if analytics.PlacedStudents, err = s.studentRepo.CountByStatus(models.StudentStatusPlaced); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return analytics, nil
}
