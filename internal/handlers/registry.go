package handlers

import (
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/storage"
	"recruivo_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	CompanyHandler     *CompanyHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	ResumeHandler      *ResumeHandler
	SkillHandler       *SkillHandler
	AnalyticsHandler   *AnalyticsHandler
	AdminHandler       *AdminHandler
	FileHandler        *FileHandler
}

func NewAppHandlers(svc *services.ServiceContainer, store storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, svc.AuthService),
		ProfileHandler:     NewProfileHandler(base, svc.ProfileService),
		CompanyHandler:     NewCompanyHandler(base, svc.CompanyService),
		JobHandler:         NewJobHandler(base, svc.JobService),
		ApplicationHandler: NewApplicationHandler(base, svc.ApplicationService),
		ResumeHandler:      NewResumeHandler(base, svc.ResumeService),
		SkillHandler:       NewSkillHandler(base, svc.SkillService),
		AnalyticsHandler:   NewAnalyticsHandler(base, svc.AnalyticsService),
		AdminHandler:       NewAdminHandler(base, svc.UserService),
		FileHandler:        NewFileHandler(base, store),
	}
}
