package handlers

import (
	"net/http"

	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers user administration.
type AdminHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewAdminHandler(base *BaseHandler, userService services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/status", h.UpdateUserStatus)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.AdminUpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
