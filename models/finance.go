package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

const (
	CategorySales         = "sales"
	CategoryUncategorized = "uncategorized"
)

// Period selects the bucketing scheme for sales aggregation.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

type FinancialTransaction struct {
	ID              int             `json:"id"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Date            time.Time       `json:"date"`
	Category        string          `json:"category,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	RelatedOrderID  int             `json:"relatedOrderId,omitempty"`
}

type InsertFinancialTransaction struct {
	TransactionType string          `json:"transactionType" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description"`
	Date            *time.Time      `json:"date"` // defaults to now
	Category        string          `json:"category"`
	PaymentMethod   string          `json:"paymentMethod"`
	RelatedOrderID  int             `json:"relatedOrderId"`
}

// SalesBucket is one window of the sales-by-period series.
type SalesBucket struct {
	Label string          `json:"label"`
	Sales decimal.Decimal `json:"sales"`
}

type ExpenseCategory struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
