package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.Search)
		jobs.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetByID)

		recruiter := jobs.Group("")
		recruiter.Use(middleware.AuthMiddleware())
		{
			recruiter.GET("/my", middleware.RequireRoles(models.UserRoleRecruiter), h.ListMy)
			recruiter.POST("", middleware.RequireRoles(models.UserRoleRecruiter), h.Create)
			recruiter.POST("/:id/duplicate", middleware.RequireRoles(models.UserRoleRecruiter), h.Duplicate)
			recruiter.PUT("/:id", middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin), h.Update)
			recruiter.DELETE("/:id", middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin), h.Delete)
		}
	}
}

func (h *JobHandler) Search(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.jobService.Search(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Param("id"), middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListMy(c *gin.Context) {
	recruiterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByRecruiter(recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) Create(c *gin.Context) {
	recruiterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(recruiterID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	isAdmin := h.GetUserRole(c) == models.UserRoleAdmin
	job, err := h.jobService.Update(c.Param("id"), userID, isAdmin, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isAdmin := h.GetUserRole(c) == models.UserRoleAdmin
	if err := h.jobService.Delete(c.Param("id"), userID, isAdmin); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *JobHandler) Duplicate(c *gin.Context) {
	recruiterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.Duplicate(c.Param("id"), recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}
