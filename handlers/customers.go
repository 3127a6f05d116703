package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (h *Handler) ListCustomers(c *gin.Context) {
	if c.Query("vip") != "" {
		c.JSON(http.StatusOK, h.store.GetVIPCustomers())
		return
	}
	c.JSON(http.StatusOK, h.store.GetCustomers())
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	customer, err := h.store.GetCustomer(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req models.InsertCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.store.CreateCustomer(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.store.UpdateCustomer(id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteCustomer(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
