package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

type DiaryHandler struct {
	diaryService *service.DiaryService
}

func NewDiaryHandler(diaryService *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

func (h *DiaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	diary := router.Group("/diary")
	{
		diary.GET("", h.ListEntries)
		diary.POST("", h.CreateEntry)
		diary.PATCH("/:id", h.UpdateEntry)
		diary.DELETE("/:id", h.DeleteEntry)
	}
}

// queryDate parses the optional date query parameter, defaulting to today.
func queryDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

func (h *DiaryHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := queryDate(c)
	if !ok {
		return
	}

	entries, err := h.diaryService.ListEntries(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list diary entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *DiaryHandler) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateDiaryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.diaryService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "failed to create diary entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DiaryHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateDiaryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.diaryService.UpdateEntry(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		respondServiceError(c, err, "failed to update diary entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *DiaryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.diaryService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		respondServiceError(c, err, "failed to delete diary entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "diary entry deleted"})
}
