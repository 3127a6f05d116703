package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory item stock status, derived from stock vs. minLevel on every write.
const (
	StockStatusNormal = "normal"
	StockStatusLow    = "low"
)

// Inventory activity actions. Restock and remove mutate the referenced
// item's stock; the rest are informational log entries.
const (
	ActivityRestock       = "restock"
	ActivityRemove        = "remove"
	ActivityUpdatePrice   = "update_price"
	ActivityLowStockAlert = "low_stock_alert"
)

type InventoryItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	MinLevel  int             `json:"minLevel"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	UnitType  string          `json:"unitType"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type InsertInventoryItem struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Stock    int             `json:"stock" binding:"min=0"`
	MinLevel int             `json:"minLevel" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	UnitType string          `json:"unitType"`
}

type InventoryItemPatch struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
	MinLevel *int             `json:"minLevel"`
	Price    *decimal.Decimal `json:"price"`
	UnitType *string          `json:"unitType"`
}

type InventoryActivity struct {
	ID          int       `json:"id"`
	ItemID      int       `json:"itemId"`
	Action      string    `json:"action"`
	Quantity    int       `json:"quantity,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	PerformedBy int       `json:"performedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

type InsertInventoryActivity struct {
	ItemID      int    `json:"itemId" binding:"required"`
	Action      string `json:"action" binding:"required"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	Notes       string `json:"notes"`
	PerformedBy int    `json:"performedBy" binding:"required"`
}
