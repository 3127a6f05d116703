package storage

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func strPtr(v string) *string { return &v }

func TestCreateOrderWithLines(t *testing.T) {
	s := newTestStore()

	order, err := s.CreateOrder(models.InsertOrder{
		TableNumber: "5",
		TotalAmount: decimal.NewFromInt(40),
		Tax:         decimal.NewFromInt(4),
		GrandTotal:  decimal.NewFromInt(44),
	}, []models.OrderLine{
		{MenuItemID: 1, Name: "Mojito", Price: decimal.NewFromInt(12), Quantity: 2},
		{MenuItemID: 2, Name: "Old Fashioned", Price: decimal.NewFromInt(16), Quantity: 1},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want default pending", order.Status)
	}

	items := s.GetOrderItems(order.ID)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	for _, item := range items {
		if item.OrderID != order.ID {
			t.Errorf("item %d orderId = %d, want %d", item.ID, item.OrderID, order.ID)
		}
	}
	if items[0].Name != "Mojito" || items[1].Name != "Old Fashioned" {
		t.Errorf("item order = %q, %q", items[0].Name, items[1].Name)
	}

	if len(s.GetFinancialTransactions()) != 0 {
		t.Error("pending order wrote a ledger entry")
	}
}

func TestCompletedOrderWritesLedgerEntry(t *testing.T) {
	s := newTestStore()

	order, err := s.CreateOrder(models.InsertOrder{
		Status:      models.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(100),
		Tax:         decimal.NewFromInt(10),
		GrandTotal:  decimal.NewFromInt(110),
	}, nil)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	transactions := s.GetFinancialTransactions()
	if len(transactions) != 1 {
		t.Fatalf("len(transactions) = %d, want 1", len(transactions))
	}
	tx := transactions[0]
	if tx.TransactionType != models.TransactionIncome {
		t.Errorf("transactionType = %q, want income", tx.TransactionType)
	}
	if tx.Category != models.CategorySales {
		t.Errorf("category = %q, want sales", tx.Category)
	}
	if !tx.Amount.Equal(order.GrandTotal) {
		t.Errorf("amount = %s, want %s", tx.Amount, order.GrandTotal)
	}
	if tx.RelatedOrderID != order.ID {
		t.Errorf("relatedOrderId = %d, want %d", tx.RelatedOrderID, order.ID)
	}
}

func TestUpdateOrderRejectsCompletedToPending(t *testing.T) {
	s := newTestStore()

	order, _ := s.CreateOrder(models.InsertOrder{
		Status:      models.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(10),
		GrandTotal:  decimal.NewFromInt(11),
	}, nil)

	_, err := s.UpdateOrder(order.ID, models.OrderPatch{Status: strPtr(models.OrderStatusPending)})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	got, _ := s.GetOrder(order.ID)
	if got.Status != models.OrderStatusCompleted {
		t.Errorf("status = %q, want still completed", got.Status)
	}
}

func TestUpdateOrderPendingToCompleted(t *testing.T) {
	s := newTestStore()

	order, _ := s.CreateOrder(models.InsertOrder{
		TotalAmount: decimal.NewFromInt(10),
		GrandTotal:  decimal.NewFromInt(11),
	}, nil)

	got, err := s.UpdateOrder(order.ID, models.OrderPatch{Status: strPtr(models.OrderStatusCompleted)})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if got.Status != models.OrderStatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
}

func TestGetRecentOrders(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 5; i++ {
		s.CreateOrder(models.InsertOrder{
			TotalAmount: decimal.NewFromInt(int64(i)),
			GrandTotal:  decimal.NewFromInt(int64(i)),
		}, nil)
	}

	recent := s.GetRecentOrders(3)
	if len(recent) != 3 {
		t.Fatalf("len(recent) = %d, want 3", len(recent))
	}
	// Same-instant creations fall back to id order, newest id first.
	if recent[0].ID < recent[1].ID || recent[1].ID < recent[2].ID {
		t.Errorf("recent ids not descending: %d, %d, %d", recent[0].ID, recent[1].ID, recent[2].ID)
	}

	all := s.GetRecentOrders(100)
	if len(all) != 5 {
		t.Errorf("limit above size returned %d orders, want 5", len(all))
	}
}

func TestGetOrderNotFound(t *testing.T) {
	s := newTestStore()
	if _, err := s.GetOrder(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
