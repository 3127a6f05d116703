package storage

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func newTestStore() *MemStorage {
	return New()
}

func intPtr(v int) *int { return &v }

func TestCreateInventoryItemDerivesStatus(t *testing.T) {
	s := newTestStore()

	item, err := s.CreateInventoryItem(models.InsertInventoryItem{
		Name:     "Vodka",
		Category: "spirits",
		Stock:    5,
		MinLevel: 10,
		Price:    decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("CreateInventoryItem: %v", err)
	}
	if item.Status != models.StockStatusLow {
		t.Errorf("status = %q, want %q", item.Status, models.StockStatusLow)
	}
	if item.UnitType != "item" {
		t.Errorf("unitType = %q, want default %q", item.UnitType, "item")
	}

	item, err = s.UpdateInventoryItem(item.ID, models.InventoryItemPatch{Stock: intPtr(15)})
	if err != nil {
		t.Fatalf("UpdateInventoryItem: %v", err)
	}
	if item.Status != models.StockStatusNormal {
		t.Errorf("status after restock = %q, want %q", item.Status, models.StockStatusNormal)
	}
}

func TestUpdateInventoryItemRecomputesAgainstMergedValues(t *testing.T) {
	s := newTestStore()

	item, _ := s.CreateInventoryItem(models.InsertInventoryItem{
		Name:     "Gin",
		Category: "spirits",
		Stock:    20,
		MinLevel: 5,
		Price:    decimal.NewFromInt(30),
	})
	if item.Status != models.StockStatusNormal {
		t.Fatalf("status = %q, want normal", item.Status)
	}

	// Raising only minLevel above the untouched stock must flip the status.
	item, err := s.UpdateInventoryItem(item.ID, models.InventoryItemPatch{MinLevel: intPtr(25)})
	if err != nil {
		t.Fatalf("UpdateInventoryItem: %v", err)
	}
	if item.Status != models.StockStatusLow {
		t.Errorf("status after minLevel bump = %q, want %q", item.Status, models.StockStatusLow)
	}
}

func TestInventoryActivityMutatesStock(t *testing.T) {
	s := newTestStore()
	item, _ := s.CreateInventoryItem(models.InsertInventoryItem{
		Name:     "Rum",
		Category: "spirits",
		Stock:    10,
		MinLevel: 3,
		Price:    decimal.NewFromInt(22),
	})

	if _, err := s.CreateInventoryActivity(models.InsertInventoryActivity{
		ItemID:      item.ID,
		Action:      models.ActivityRestock,
		Quantity:    5,
		PerformedBy: 1,
	}); err != nil {
		t.Fatalf("restock activity: %v", err)
	}
	got, _ := s.GetInventoryItem(item.ID)
	if got.Stock != 15 {
		t.Errorf("stock after restock = %d, want 15", got.Stock)
	}

	if _, err := s.CreateInventoryActivity(models.InsertInventoryActivity{
		ItemID:      item.ID,
		Action:      models.ActivityRemove,
		Quantity:    13,
		PerformedBy: 1,
	}); err != nil {
		t.Fatalf("remove activity: %v", err)
	}
	got, _ = s.GetInventoryItem(item.ID)
	if got.Stock != 2 {
		t.Errorf("stock after remove = %d, want 2", got.Stock)
	}
	if got.Status != models.StockStatusLow {
		t.Errorf("status after remove = %q, want %q", got.Status, models.StockStatusLow)
	}
}

func TestInventoryActivityRejectsOverdraw(t *testing.T) {
	s := newTestStore()
	item, _ := s.CreateInventoryItem(models.InsertInventoryItem{
		Name:     "Tequila",
		Category: "spirits",
		Stock:    3,
		MinLevel: 1,
		Price:    decimal.NewFromInt(28),
	})

	_, err := s.CreateInventoryActivity(models.InsertInventoryActivity{
		ItemID:      item.ID,
		Action:      models.ActivityRemove,
		Quantity:    4,
		PerformedBy: 1,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	got, _ := s.GetInventoryItem(item.ID)
	if got.Stock != 3 {
		t.Errorf("stock changed on rejected remove: %d", got.Stock)
	}
	if len(s.GetInventoryActivities()) != 0 {
		t.Errorf("rejected remove still logged an activity")
	}
}

func TestInformationalActivityLeavesStockAlone(t *testing.T) {
	s := newTestStore()
	item, _ := s.CreateInventoryItem(models.InsertInventoryItem{
		Name:     "Whiskey",
		Category: "spirits",
		Stock:    8,
		MinLevel: 2,
		Price:    decimal.NewFromInt(45),
	})

	if _, err := s.CreateInventoryActivity(models.InsertInventoryActivity{
		ItemID:      item.ID,
		Action:      models.ActivityUpdatePrice,
		Quantity:    99,
		PerformedBy: 1,
	}); err != nil {
		t.Fatalf("update_price activity: %v", err)
	}
	got, _ := s.GetInventoryItem(item.ID)
	if got.Stock != 8 {
		t.Errorf("stock = %d, want 8", got.Stock)
	}
}

func TestGetLowStockItems(t *testing.T) {
	s := newTestStore()
	s.CreateInventoryItem(models.InsertInventoryItem{
		Name: "A", Category: "c", Stock: 1, MinLevel: 5, Price: decimal.NewFromInt(1),
	})
	s.CreateInventoryItem(models.InsertInventoryItem{
		Name: "B", Category: "c", Stock: 50, MinLevel: 5, Price: decimal.NewFromInt(1),
	})
	s.CreateInventoryItem(models.InsertInventoryItem{
		Name: "C", Category: "c", Stock: 5, MinLevel: 5, Price: decimal.NewFromInt(1),
	})

	low := s.GetLowStockItems()
	if len(low) != 2 {
		t.Fatalf("len(low) = %d, want 2", len(low))
	}
	if low[0].Name != "A" || low[1].Name != "C" {
		t.Errorf("low stock order = %q, %q; want A, C", low[0].Name, low[1].Name)
	}
}

func TestDeleteInventoryItem(t *testing.T) {
	s := newTestStore()
	item, _ := s.CreateInventoryItem(models.InsertInventoryItem{
		Name: "A", Category: "c", Stock: 1, MinLevel: 1, Price: decimal.NewFromInt(1),
	})

	if !s.DeleteInventoryItem(item.ID) {
		t.Fatal("delete existing item returned false")
	}
	if s.DeleteInventoryItem(item.ID) {
		t.Error("second delete returned true")
	}
	if _, err := s.GetInventoryItem(item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
