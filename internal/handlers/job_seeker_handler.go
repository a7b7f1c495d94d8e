package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobSeekerHandler exposes the seeker's own profile.
type JobSeekerHandler struct {
	*BaseHandler
	jobSeekerService services.JobSeekerService
	jwtSecret        string
}

func NewJobSeekerHandler(base *BaseHandler, jobSeekerService services.JobSeekerService, jwtSecret string) *JobSeekerHandler {
	return &JobSeekerHandler{
		BaseHandler:      base,
		jobSeekerService: jobSeekerService,
		jwtSecret:        jwtSecret,
	}
}

func (h *JobSeekerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	seekers := rg.Group("/job-seekers")
	seekers.Use(middleware.AuthMiddleware(h.jwtSecret))
	seekers.Use(middleware.RequireRoles(models.UserRoleJobSeeker))
	{
		seekers.GET("/my", h.GetMine)
		seekers.PATCH("/my", h.UpdateMine)
	}
}

func (h *JobSeekerHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.jobSeekerService.GetMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *JobSeekerHandler) UpdateMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobSeekerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.jobSeekerService.UpdateMine(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
