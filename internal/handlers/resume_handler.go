package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	resumes := r.Group("/resumes")
	resumes.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleStudent))
	{
		resumes.POST("", h.Upload)
		resumes.GET("", h.List)
		resumes.PUT("/:id/activate", h.Activate)
		resumes.DELETE("/:id", h.Delete)
	}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	resume, err := h.resumeService.Upload(c.Request.Context(), studentID, &services.ResumeUpload{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) List(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.resumeService.List(studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResumeHandler) Activate(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Activate(studentID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), studentID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
