package services

import (
	"recruivo_backend/internal/config"
	"recruivo_backend/internal/email"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	ProfileService     ProfileService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
	ResumeService      ResumeService
	SkillService       SkillService
	AnalyticsService   AnalyticsService
	EmailProvider      email.Provider
}

// NewServiceContainer wires repositories, storage and the email provider
// into the full service set.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, store storage.Storage, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	skillRepo := repositories.NewSkillRepository(db)

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, studentRepo, resumeRepo, refreshTokenRepo, emailProvider),
		UserService:        NewUserService(userRepo, refreshTokenRepo),
		ProfileService:     NewProfileService(studentRepo, userRepo, skillRepo),
		CompanyService:     NewCompanyService(companyRepo),
		JobService:         NewJobService(jobRepo, companyRepo),
		ApplicationService: NewApplicationService(applicationRepo, jobRepo, studentRepo, userRepo, resumeRepo, emailProvider),
		ResumeService:      NewResumeService(resumeRepo, studentRepo, store, cfg),
		SkillService:       NewSkillService(skillRepo),
		AnalyticsService:   NewAnalyticsService(userRepo, studentRepo, companyRepo, jobRepo, applicationRepo),
		EmailProvider:      emailProvider,
	}
}
