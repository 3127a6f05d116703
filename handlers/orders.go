package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
	"github.com/habiutomo/ERP-klub-bar/storage"
)

type createOrderRequest struct {
	models.InsertOrder
	Items []models.OrderLine `json:"items" binding:"omitempty,dive"`
}

func (h *Handler) ListOrders(c *gin.Context) {
	if c.Query("limit") != "" {
		c.JSON(http.StatusOK, h.store.GetRecentOrders(limitQuery(c, 5)))
		return
	}
	c.JSON(http.StatusOK, h.store.GetOrders())
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.store.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.store.CreateOrder(req.InsertOrder, req.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.store.UpdateOrder(id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Completed orders cannot go back to pending"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListOrderItems(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.GetOrderItems(id))
}
