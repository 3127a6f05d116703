package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (h *Handler) ListReservations(c *gin.Context) {
	if c.Query("upcoming") != "" {
		c.JSON(http.StatusOK, h.store.GetUpcomingReservations(limitQuery(c, 10)))
		return
	}
	c.JSON(http.StatusOK, h.store.GetReservations())
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reservation, err := h.store.GetReservation(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req models.InsertReservation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := h.store.CreateReservation(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := h.store.UpdateReservation(id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteReservation(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
