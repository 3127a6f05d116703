package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/storage"
)

// Handler carries the storage facade into every route. One instance is
// constructed per process and injected in main.
type Handler struct {
	store storage.Storage
}

func New(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// idParam parses the :id path segment, responding 400 itself on garbage.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// limitQuery reads a ?limit= query, falling back when absent or invalid.
func limitQuery(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || limit < 0 {
		return fallback
	}
	return limit
}
