package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func (s *MemStorage) GetFinancialTransactions() []models.FinancialTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]models.FinancialTransaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		transactions = append(transactions, tx)
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].ID > transactions[j].ID
	})
	return transactions
}

func (s *MemStorage) CreateFinancialTransaction(in models.InsertFinancialTransaction) (models.FinancialTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createTransaction(in), nil
}

func (s *MemStorage) createTransaction(in models.InsertFinancialTransaction) models.FinancialTransaction {
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	tx := models.FinancialTransaction{
		ID:              nextID(&s.ids.transaction),
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
		Description:     in.Description,
		Date:            date,
		Category:        in.Category,
		PaymentMethod:   in.PaymentMethod,
		RelatedOrderID:  in.RelatedOrderID,
	}
	s.transactions[tx.ID] = tx
	return tx
}

// GetDailySales sums income/sales transactions dated inside the current
// local calendar day.
func (s *MemStorage) GetDailySales() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	start := startOfDay(now)
	end := start.AddDate(0, 0, 1)

	total := decimal.Zero
	for _, tx := range s.transactions {
		if tx.TransactionType != models.TransactionIncome || tx.Category != models.CategorySales {
			continue
		}
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// salesWindow is one aggregation bucket; transactions dated in
// [start, end] (both inclusive) belong to it.
type salesWindow struct {
	label string
	start time.Time
	end   time.Time
}

// salesWindows builds the chart windows for a period, oldest first.
//
//	day:   6 x 4-hour windows covering the trailing 24 hours
//	week:  7 calendar days ending today, midnight to 23:59:59.999
//	month: 6 x 5-day windows covering the trailing 30 days
//	year:  12 calendar months ending with the current month
func salesWindows(period models.Period, now time.Time) []salesWindow {
	var windows []salesWindow

	switch period {
	case models.PeriodDay:
		for i := 5; i >= 0; i-- {
			end := now.Add(-time.Duration(i) * 4 * time.Hour)
			start := end.Add(-4 * time.Hour)
			windows = append(windows, salesWindow{
				label: fmt.Sprintf("%d:00 - %d:00", start.Hour(), end.Hour()),
				start: start,
				end:   end,
			})
		}
	case models.PeriodMonth:
		for i := 5; i >= 0; i-- {
			end := now.AddDate(0, 0, -i*5)
			start := end.AddDate(0, 0, -5)
			windows = append(windows, salesWindow{
				label: fmt.Sprintf("%d/%d - %d/%d", int(start.Month()), start.Day(), int(end.Month()), end.Day()),
				start: start,
				end:   end,
			})
		}
	case models.PeriodYear:
		// Anchor on the first of the month so subtracting months never
		// normalizes across a month boundary.
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		for i := 11; i >= 0; i-- {
			start := first.AddDate(0, -i, 0)
			end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
			windows = append(windows, salesWindow{
				label: start.Month().String()[:3],
				start: start,
				end:   end,
			})
		}
	default: // week
		for i := 6; i >= 0; i-- {
			start := startOfDay(now.AddDate(0, 0, -i))
			end := start.Add(24*time.Hour - time.Millisecond)
			windows = append(windows, salesWindow{
				label: start.Weekday().String()[:3],
				start: start,
				end:   end,
			})
		}
	}
	return windows
}

// GetSalesByPeriod buckets income/sales transactions into the period's
// windows and sums each bucket, returning the series oldest first.
func (s *MemStorage) GetSalesByPeriod(period models.Period) []models.SalesBucket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	windows := salesWindows(period, time.Now())
	buckets := make([]models.SalesBucket, 0, len(windows))
	for _, w := range windows {
		sales := decimal.Zero
		for _, tx := range s.transactions {
			if tx.TransactionType != models.TransactionIncome || tx.Category != models.CategorySales {
				continue
			}
			if tx.Date.Before(w.start) || tx.Date.After(w.end) {
				continue
			}
			sales = sales.Add(tx.Amount)
		}
		buckets = append(buckets, models.SalesBucket{Label: w.label, Sales: sales})
	}
	return buckets
}

// GetExpensesByCategory groups expense transactions by category, folding
// missing categories into "uncategorized". Order is unspecified.
func (s *MemStorage) GetExpensesByCategory() []models.ExpenseCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions {
		if tx.TransactionType != models.TransactionExpense {
			continue
		}
		category := tx.Category
		if category == "" {
			category = models.CategoryUncategorized
		}
		totals[category] = totals[category].Add(tx.Amount)
	}

	expenses := make([]models.ExpenseCategory, 0, len(totals))
	for category, amount := range totals {
		expenses = append(expenses, models.ExpenseCategory{Category: category, Amount: amount})
	}
	return expenses
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
