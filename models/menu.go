package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Ingredients []string        `json:"ingredients"`
	IsActive    bool            `json:"isActive"`
}

type InsertMenuItem struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	Ingredients []string        `json:"ingredients"`
	IsActive    *bool           `json:"isActive"` // defaults to true
}

type MenuItemPatch struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Ingredients []string         `json:"ingredients"`
	IsActive    *bool            `json:"isActive"`
}
