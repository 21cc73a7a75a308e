package routes

import (
	"recruivo_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ResumeHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
	}
}
