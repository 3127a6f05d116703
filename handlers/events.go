package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (h *Handler) ListEvents(c *gin.Context) {
	if c.Query("upcoming") != "" {
		c.JSON(http.StatusOK, h.store.GetUpcomingEvents(limitQuery(c, 3)))
		return
	}
	c.JSON(http.StatusOK, h.store.GetEvents())
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	event, err := h.store.GetEvent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req models.InsertEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.store.CreateEvent(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.store.UpdateEvent(id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteEvent(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
