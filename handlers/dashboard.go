package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) DashboardStats(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	customersToday := 0
	for _, customer := range h.store.GetCustomers() {
		if customer.LastVisit == nil {
			continue
		}
		if !customer.LastVisit.Before(start) && customer.LastVisit.Before(end) {
			customersToday++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"dailySales":     h.store.GetDailySales(),
		"customersToday": customersToday,
		"lowStockCount":  len(h.store.GetLowStockItems()),
	})
}

// popularItem is one row of the best-sellers widget.
type popularItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	SoldToday int             `json:"soldToday"`
	Price     decimal.Decimal `json:"price"`
}

// PopularItems ranks menu items by quantity sold across today's orders.
func (h *Handler) PopularItems(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sold := make(map[int]int)
	for _, order := range h.store.GetOrders() {
		if order.CreatedAt.Before(start) {
			continue
		}
		for _, item := range h.store.GetOrderItems(order.ID) {
			sold[item.MenuItemID] += item.Quantity
		}
	}

	items := make([]popularItem, 0, len(sold))
	for menuItemID, quantity := range sold {
		menuItem, err := h.store.GetMenuItem(menuItemID)
		if err != nil {
			continue
		}
		items = append(items, popularItem{
			ID:        menuItem.ID,
			Name:      menuItem.Name,
			SoldToday: quantity,
			Price:     menuItem.Price,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SoldToday > items[j].SoldToday })
	if len(items) > 5 {
		items = items[:5]
	}
	c.JSON(http.StatusOK, items)
}

// recentTransaction is the dashboard projection of a recent order.
type recentTransaction struct {
	ID        int             `json:"id"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Bartender string          `json:"bartender"`
	Time      time.Time       `json:"time"`
}

// abbreviateName shortens "Alex Johnson" to "Alex J.".
func abbreviateName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	return fmt.Sprintf("%s %s.", parts[0], parts[len(parts)-1][:1])
}

func (h *Handler) RecentTransactions(c *gin.Context) {
	orders := h.store.GetRecentOrders(limitQuery(c, 4))
	transactions := make([]recentTransaction, 0, len(orders))
	for _, order := range orders {
		bartender := "Unknown"
		if member, err := h.store.GetStaffMember(order.BartenderID); err == nil {
			bartender = abbreviateName(member.Name)
		}
		transactions = append(transactions, recentTransaction{
			ID:        order.ID,
			Label:     fmt.Sprintf("#TRX-%d", 4000+order.ID),
			Amount:    order.GrandTotal,
			Status:    order.Status,
			Bartender: bartender,
			Time:      order.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *Handler) DashboardUpcomingEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetUpcomingEvents(limitQuery(c, 3)))
}
