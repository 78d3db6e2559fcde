package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/middleware"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

type CoachHandler struct {
	coachService *service.CoachService
	rateLimiter  *middleware.RateLimiter
}

func NewCoachHandler(coachService *service.CoachService, rateLimiter *middleware.RateLimiter) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
		rateLimiter:  rateLimiter,
	}
}

func (h *CoachHandler) RegisterRoutes(router *gin.RouterGroup) {
	coaching := router.Group("/coaching")
	coaching.Use(h.rateLimiter.Middleware())
	{
		coaching.GET("/daily", h.DailyAdvice)
	}

	router.POST("/reflections", h.CreateReflection)
	router.GET("/reflections", h.ListReflections)
}

func (h *CoachHandler) DailyAdvice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	coaching, err := h.coachService.DailyAdvice(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[CoachHandler] Daily advice failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate advice"})
		return
	}

	c.JSON(http.StatusOK, coaching)
}

func (h *CoachHandler) CreateReflection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reflection, err := h.coachService.CreateReflection(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reflection"})
		return
	}

	c.JSON(http.StatusCreated, reflection)
}

func (h *CoachHandler) ListReflections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reflections, err := h.coachService.ListReflections(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reflections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflections": reflections})
}
