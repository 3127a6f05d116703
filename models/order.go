package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID           int             `json:"id"`
	TableNumber  string          `json:"tableNumber,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Tax          decimal.Decimal `json:"tax"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	BartenderID  int             `json:"bartenderId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type InsertOrder struct {
	TableNumber  string          `json:"tableNumber"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"` // defaults to pending
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	Tax          decimal.Decimal `json:"tax"`
	GrandTotal   decimal.Decimal `json:"grandTotal" binding:"required"`
	BartenderID  int             `json:"bartenderId"`
}

type OrderPatch struct {
	TableNumber  *string          `json:"tableNumber"`
	CustomerName *string          `json:"customerName"`
	Status       *string          `json:"status"`
	TotalAmount  *decimal.Decimal `json:"totalAmount"`
	Tax          *decimal.Decimal `json:"tax"`
	GrandTotal   *decimal.Decimal `json:"grandTotal"`
	BartenderID  *int             `json:"bartenderId"`
}

type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"orderId"`
	MenuItemID int             `json:"menuItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"` // snapshot price at time of order
	Quantity   int             `json:"quantity"`
}

type InsertOrderItem struct {
	OrderID    int             `json:"orderId" binding:"required"`
	MenuItemID int             `json:"menuItemId" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
}

// OrderLine is a line item submitted alongside a new order; the order id is
// assigned by the store once the order exists.
type OrderLine struct {
	MenuItemID int             `json:"menuItemId" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
}
