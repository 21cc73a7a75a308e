package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	{
		skills.GET("", h.List)
		skills.POST("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin), h.Create)
	}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillService.List(c.Query("search"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "total": len(skills)})
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.CreateSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	skill, err := h.skillService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}
