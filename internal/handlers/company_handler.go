package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.GetByID)

		companies.POST("", middleware.AuthMiddleware(),
			middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin), h.Create)
		companies.PUT("/:id/status", middleware.AuthMiddleware(),
			middleware.RequireRoles(models.UserRoleAdmin), h.UpdateStatus)
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)
	resp, err := h.companyService.List(c.Query("status"), page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companyService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateCompanyStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
