package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

type ShoppingHandler struct {
	shoppingService *service.ShoppingService
}

func NewShoppingHandler(shoppingService *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: shoppingService}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	shopping := router.Group("/shopping-list")
	{
		shopping.POST("/generate", h.GenerateList)
		shopping.GET("", h.ListItems)
		shopping.PATCH("/:id", h.UpdateItem)
		shopping.DELETE("/:id", h.DeleteItem)
	}
}

func (h *ShoppingHandler) GenerateList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GenerateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_ids are required"})
		return
	}

	items, err := h.shoppingService.GenerateList(c.Request.Context(), userID, req.RecipeIDs)
	if err != nil {
		respondServiceError(c, err, "failed to generate shopping list")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": items})
}

func (h *ShoppingHandler) ListItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.shoppingService.ListItems(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shopping items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checked is required"})
		return
	}

	item, err := h.shoppingService.SetChecked(c.Request.Context(), userID, itemID, *req.Checked)
	if err != nil {
		respondServiceError(c, err, "failed to update shopping item")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.shoppingService.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		respondServiceError(c, err, "failed to delete shopping item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shopping item deleted"})
}
