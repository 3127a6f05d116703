package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (h *Handler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetFinancialTransactions())
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var req models.InsertFinancialTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx, err := h.store.CreateFinancialTransaction(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *Handler) DailySales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dailySales": h.store.GetDailySales()})
}

// periodQuery reads ?period= and falls back to week for anything
// unrecognized, mirroring the chart's default range.
func periodQuery(c *gin.Context) models.Period {
	period := models.Period(c.Query("period"))
	if !period.Valid() {
		return models.PeriodWeek
	}
	return period
}

func (h *Handler) SalesByPeriod(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetSalesByPeriod(periodQuery(c)))
}

func (h *Handler) ExpensesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetExpensesByCategory())
}
