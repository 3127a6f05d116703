package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (h *Handler) ListMenuItems(c *gin.Context) {
	category := c.Query("category")
	if category != "" && category != "all" {
		c.JSON(http.StatusOK, h.store.GetMenuItemsByCategory(category))
		return
	}
	c.JSON(http.StatusOK, h.store.GetMenuItems())
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.store.GetMenuItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req models.InsertMenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.store.CreateMenuItem(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.store.UpdateMenuItem(id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteMenuItem(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
