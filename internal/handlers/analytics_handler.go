package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	{
		analytics.GET("/recruiter", middleware.RequireRoles(models.UserRoleRecruiter), h.RecruiterDashboard)
		analytics.GET("/admin", middleware.RequireRoles(models.UserRoleAdmin), h.AdminDashboard)
	}
}

func (h *AnalyticsHandler) RecruiterDashboard(c *gin.Context) {
	recruiterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	analytics, err := h.analyticsService.RecruiterDashboard(recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *AnalyticsHandler) AdminDashboard(c *gin.Context) {
	analytics, err := h.analyticsService.AdminDashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
