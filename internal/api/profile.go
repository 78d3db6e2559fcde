package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	goalsService   *service.GoalsService
}

func NewProfileHandler(profileService *service.ProfileService, goalsService *service.GoalsService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		goalsService:   goalsService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/user-profile", h.GetProfile)
	router.PUT("/user-profile", h.UpdateProfile)
	router.GET("/nutrition-goals", h.GetGoals)
	router.POST("/nutrition-goals", h.SetGoals)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goalsService.GetGoals(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no goals set"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *ProfileHandler) SetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.NutritionGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	goals, err := h.goalsService.SetGoals(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}
