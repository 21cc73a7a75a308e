package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("/jobs/:jobId", middleware.RequireRoles(models.UserRoleStudent), h.Apply)
		applications.GET("", h.List)
		applications.GET("/:id", h.GetByID)
		applications.PUT("/:id/status", middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin), h.UpdateStatus)
		applications.DELETE("/:id", middleware.RequireRoles(models.UserRoleStudent), h.Withdraw)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// The body is optional: applying without a cover letter is fine.
	var req dto.ApplyRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	resp, err := h.applicationService.Apply(studentID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.applicationService.List(userID, h.GetUserRole(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetByID(c.Param("id"), userID, h.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Param("id"), userID, h.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Param("id"), studentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
