package api

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/middleware"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

// maxPhotoBytes caps uploaded meal photos at 10MB.
const maxPhotoBytes = 10 << 20

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type AnalysisHandler struct {
	analysisService  *service.AnalysisService
	foodFactsService *service.FoodFactsService
	rateLimiter      *middleware.RateLimiter
}

func NewAnalysisHandler(analysisService *service.AnalysisService, foodFactsService *service.FoodFactsService, rateLimiter *middleware.RateLimiter) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService:  analysisService,
		foodFactsService: foodFactsService,
		rateLimiter:      rateLimiter,
	}
}

func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	limited := router.Group("")
	limited.Use(h.rateLimiter.Middleware())
	{
		limited.POST("/analyze", h.AnalyzePhoto)
		limited.POST("/analyze-text", h.AnalyzeText)
	}

	router.GET("/analyses", h.ListAnalyses)
	router.GET("/confirmations", h.ListConfirmations)
	router.POST("/confirmations/:id/approve", h.ApproveConfirmation)
	router.DELETE("/confirmations/:id", h.RejectConfirmation)
	router.GET("/foods/search", h.SearchFoods)
}

func (h *AnalysisHandler) AnalyzePhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo must be 10MB or smaller"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedPhotoTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo must be jpeg, png or webp"})
		return
	}

	imageData, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	if len(imageData) > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo must be 10MB or smaller"})
		return
	}

	result, err := h.analysisService.AnalyzePhoto(c.Request.Context(), userID, imageData, contentType)
	if err != nil {
		log.Printf("[AnalysisHandler] Photo analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze photo"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	analysis, err := h.analysisService.AnalyzeText(c.Request.Context(), userID, req.Description)
	if err != nil {
		log.Printf("[AnalysisHandler] Text analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze description"})
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	analyses, err := h.analysisService.ListAnalyses(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list analyses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

func (h *AnalysisHandler) ListConfirmations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	confirmations, err := h.analysisService.ListConfirmations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list confirmations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"confirmations": confirmations})
}

func (h *AnalysisHandler) ApproveConfirmation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	confirmationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	analysis, err := h.analysisService.ApproveConfirmation(c.Request.Context(), userID, confirmationID)
	if err != nil {
		respondServiceError(c, err, "failed to approve confirmation")
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *AnalysisHandler) RejectConfirmation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	confirmationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.analysisService.RejectConfirmation(c.Request.Context(), userID, confirmationID); err != nil {
		respondServiceError(c, err, "failed to reject confirmation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "confirmation rejected"})
}

func (h *AnalysisHandler) SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}

	products, err := h.foodFactsService.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("[AnalysisHandler] Food search failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "food lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
