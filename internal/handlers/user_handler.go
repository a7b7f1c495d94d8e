package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin-only user directory.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
	jwtSecret   string
}

func NewUserHandler(base *BaseHandler, userService services.UserService, jwtSecret string) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.jwtSecret))
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.List)
		admin.GET("/users/:id", h.GetByID)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	users, pagination, err := h.userService.List(c.Request.Context(), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
