package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
	"github.com/habiutomo/ERP-klub-bar/storage"
)

func (h *Handler) ListInventoryItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetInventoryItems())
}

func (h *Handler) GetInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.store.GetInventoryItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateInventoryItem(c *gin.Context) {
	var req models.InsertInventoryItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.store.CreateInventoryItem(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.InventoryItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.store.UpdateInventoryItem(id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteInventoryItem(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListLowStockItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetLowStockItems())
}

// activityView is an activity row joined with staff and item names for the
// inventory log screen.
type activityView struct {
	models.InventoryActivity
	StaffName string `json:"staffName"`
	ItemName  string `json:"itemName"`
}

func (h *Handler) ListInventoryActivities(c *gin.Context) {
	staffNames := make(map[int]string)
	for _, member := range h.store.GetStaffMembers() {
		staffNames[member.ID] = member.Name
	}
	itemNames := make(map[int]string)
	for _, item := range h.store.GetInventoryItems() {
		itemNames[item.ID] = item.Name
	}

	activities := h.store.GetInventoryActivities()
	views := make([]activityView, 0, len(activities))
	for _, activity := range activities {
		view := activityView{InventoryActivity: activity, StaffName: "Unknown", ItemName: "Unknown"}
		if name, ok := staffNames[activity.PerformedBy]; ok {
			view.StaffName = name
		}
		if name, ok := itemNames[activity.ItemID]; ok {
			view.ItemName = name
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) CreateInventoryActivity(c *gin.Context) {
	var req models.InsertInventoryActivity
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.store.CreateInventoryActivity(req)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock to remove that quantity"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory activity"})
		return
	}
	c.JSON(http.StatusCreated, activity)
}
