package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

func (h *ChallengeHandler) RegisterRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges")
	{
		challenges.GET("", h.ListChallenges)
		challenges.GET("/progress", h.ListProgress)
		challenges.POST("/:id/progress", h.AddProgress)
	}
}

func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	challenges, err := h.challengeService.ListChallenges(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list challenges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

func (h *ChallengeHandler) ListProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := h.challengeService.ListProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (h *ChallengeHandler) AddProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	challengeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.ChallengeProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "increment must be greater than zero"})
		return
	}

	progress, err := h.challengeService.AddProgress(c.Request.Context(), userID, challengeID, req.Increment)
	if err != nil {
		respondServiceError(c, err, "failed to add progress")
		return
	}

	c.JSON(http.StatusOK, progress)
}
