package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

type TrackingHandler struct {
	trackingService *service.TrackingService
}

func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/drinks", h.ListDrinks)
	router.POST("/drinks", h.AddDrink)
	router.DELETE("/drinks/:id", h.DeleteDrink)

	router.GET("/weights", h.ListWeights)
	router.POST("/weights", h.AddWeight)
	router.DELETE("/weights/:id", h.DeleteWeight)

	router.GET("/steps", h.ListSteps)
	router.POST("/steps", h.UpsertSteps)
	router.DELETE("/steps/:id", h.DeleteSteps)
}

func (h *TrackingHandler) ListDrinks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := queryDate(c)
	if !ok {
		return
	}

	entries, err := h.trackingService.ListDrinks(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list drinks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drinks": entries})
}

func (h *TrackingHandler) AddDrink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.trackingService.AddDrink(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add drink"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackingHandler) DeleteDrink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.trackingService.DeleteDrink(c.Request.Context(), userID, entryID); err != nil {
		respondServiceError(c, err, "failed to delete drink")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "drink deleted"})
}

func (h *TrackingHandler) ListWeights(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		limit = parsed
	}

	entries, err := h.trackingService.ListWeights(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list weights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weights": entries})
}

func (h *TrackingHandler) AddWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.trackingService.AddWeight(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add weight"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackingHandler) DeleteWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.trackingService.DeleteWeight(c.Request.Context(), userID, entryID); err != nil {
		respondServiceError(c, err, "failed to delete weight")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "weight deleted"})
}

func (h *TrackingHandler) ListSteps(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := queryDate(c)
	if !ok {
		return
	}

	entries, err := h.trackingService.ListSteps(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list steps"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": entries})
}

func (h *TrackingHandler) UpsertSteps(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.trackingService.UpsertSteps(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *TrackingHandler) DeleteSteps(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.trackingService.DeleteSteps(c.Request.Context(), userID, entryID); err != nil {
		respondServiceError(c, err, "failed to delete steps")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "steps deleted"})
}
