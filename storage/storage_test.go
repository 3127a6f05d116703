package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/models"
)

func TestIDsStayMonotonicAfterDelete(t *testing.T) {
	s := newTestStore()

	first, _ := s.CreateMenuItem(models.InsertMenuItem{
		Name: "Mojito", Category: "cocktails", Price: decimal.NewFromInt(12),
	})
	if first.ID != 1 {
		t.Fatalf("first id = %d, want 1", first.ID)
	}
	if !s.DeleteMenuItem(first.ID) {
		t.Fatal("delete failed")
	}

	second, _ := s.CreateMenuItem(models.InsertMenuItem{
		Name: "Negroni", Category: "cocktails", Price: decimal.NewFromInt(14),
	})
	if second.ID != 2 {
		t.Errorf("id after delete = %d, want 2 (ids never reused)", second.ID)
	}
}

func TestCountersAreIndependentPerEntity(t *testing.T) {
	s := newTestStore()

	item, _ := s.CreateMenuItem(models.InsertMenuItem{
		Name: "Mojito", Category: "cocktails", Price: decimal.NewFromInt(12),
	})
	member, _ := s.CreateStaffMember(models.InsertStaff{Name: "A", Role: "bartender"})
	if item.ID != 1 || member.ID != 1 {
		t.Errorf("ids = %d, %d; each entity counts from 1", item.ID, member.ID)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore()
	ingredients := []string{"rum", "mint"}
	item, _ := s.CreateMenuItem(models.InsertMenuItem{
		Name: "Mojito", Category: "cocktails", Price: decimal.NewFromInt(12),
		Ingredients: ingredients,
	})

	got, _ := s.GetMenuItem(item.ID)
	got.Name = "Tampered"
	// Writing through a read copy's slice must not reach the stored record.
	got.Ingredients[0] = "tampered"
	// The store keeps its own copy of the submitted slice.
	ingredients[0] = "vodka"

	fresh, _ := s.GetMenuItem(item.ID)
	if fresh.Name != "Mojito" {
		t.Errorf("stored name mutated through a read copy: %q", fresh.Name)
	}
	if fresh.Ingredients[0] != "rum" {
		t.Errorf("stored ingredients mutated out-of-band: %v", fresh.Ingredients)
	}

	listed := s.GetMenuItems()
	listed[0].Ingredients[1] = "tampered"
	byCategory := s.GetMenuItemsByCategory("cocktails")
	byCategory[0].Ingredients[1] = "tampered again"

	fresh, _ = s.GetMenuItem(item.ID)
	if fresh.Ingredients[1] != "mint" {
		t.Errorf("stored ingredients mutated through a list copy: %v", fresh.Ingredients)
	}

	created, _ := s.CreateMenuItem(models.InsertMenuItem{
		Name: "Daiquiri", Category: "cocktails", Price: decimal.NewFromInt(11),
		Ingredients: []string{"rum", "lime"},
	})
	created.Ingredients[0] = "tampered"
	fresh, _ = s.GetMenuItem(created.ID)
	if fresh.Ingredients[0] != "rum" {
		t.Errorf("stored ingredients mutated through a create result: %v", fresh.Ingredients)
	}
}

func TestMenuItemsByCategorySkipsInactive(t *testing.T) {
	s := newTestStore()
	inactive := false
	s.CreateMenuItem(models.InsertMenuItem{
		Name: "Mojito", Category: "cocktails", Price: decimal.NewFromInt(12),
	})
	s.CreateMenuItem(models.InsertMenuItem{
		Name: "Old Menu Special", Category: "cocktails", Price: decimal.NewFromInt(9), IsActive: &inactive,
	})
	s.CreateMenuItem(models.InsertMenuItem{
		Name: "Fries", Category: "food", Price: decimal.NewFromInt(6),
	})

	items := s.GetMenuItemsByCategory("cocktails")
	if len(items) != 1 || items[0].Name != "Mojito" {
		t.Errorf("items = %+v, want just the active Mojito", items)
	}
}

func TestUserLookupByUsername(t *testing.T) {
	s := newTestStore()
	s.CreateUser(models.InsertUser{
		Username: "admin", Password: "secret", FullName: "Site Admin", Role: "admin",
	})

	user, err := s.GetUserByUsername("admin")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if user.FullName != "Site Admin" {
		t.Errorf("fullName = %q", user.FullName)
	}
	if _, err := s.GetUserByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpcomingEventsFilterAndOrder(t *testing.T) {
	s := newTestStore()
	now := time.Now()

	s.CreateEvent(models.InsertEvent{Name: "Past", Date: now.AddDate(0, 0, -1), StartTime: "20:00"})
	s.CreateEvent(models.InsertEvent{Name: "Next Week", Date: now.AddDate(0, 0, 7), StartTime: "20:00"})
	s.CreateEvent(models.InsertEvent{Name: "Tomorrow", Date: now.AddDate(0, 0, 1), StartTime: "20:00"})

	upcoming := s.GetUpcomingEvents(10)
	if len(upcoming) != 2 {
		t.Fatalf("len(upcoming) = %d, want 2", len(upcoming))
	}
	if upcoming[0].Name != "Tomorrow" || upcoming[1].Name != "Next Week" {
		t.Errorf("order = %q, %q; want soonest first", upcoming[0].Name, upcoming[1].Name)
	}

	limited := s.GetUpcomingEvents(1)
	if len(limited) != 1 || limited[0].Name != "Tomorrow" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestUpcomingReservations(t *testing.T) {
	s := newTestStore()
	now := time.Now()

	s.CreateReservation(models.InsertReservation{Date: now.AddDate(0, 0, -1), Time: "19:00", PartySize: 2})
	s.CreateReservation(models.InsertReservation{Date: now.AddDate(0, 0, 2), Time: "19:00", PartySize: 4})
	s.CreateReservation(models.InsertReservation{Date: now.AddDate(0, 0, 1), Time: "21:00", PartySize: 6})

	upcoming := s.GetUpcomingReservations(10)
	if len(upcoming) != 2 {
		t.Fatalf("len(upcoming) = %d, want 2", len(upcoming))
	}
	if upcoming[0].PartySize != 6 || upcoming[1].PartySize != 4 {
		t.Errorf("order = %d, %d; want soonest first", upcoming[0].PartySize, upcoming[1].PartySize)
	}
}

func TestVIPCustomers(t *testing.T) {
	s := newTestStore()
	s.CreateCustomer(models.InsertCustomer{Name: "Regular Joe"})
	s.CreateCustomer(models.InsertCustomer{Name: "Big Spender", VIPStatus: models.VIPStatusVIP})

	customer, err := s.GetCustomer(1)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if customer.VIPStatus != models.VIPStatusRegular {
		t.Errorf("default vipStatus = %q, want regular", customer.VIPStatus)
	}

	vips := s.GetVIPCustomers()
	if len(vips) != 1 || vips[0].Name != "Big Spender" {
		t.Errorf("vips = %+v", vips)
	}
}

func TestSeedPopulatesEveryStore(t *testing.T) {
	s := newTestStore()
	s.Seed()

	if _, err := s.GetUserByUsername("admin"); err != nil {
		t.Error("seed missing admin user")
	}
	if len(s.GetMenuItems()) == 0 {
		t.Error("seed missing menu items")
	}
	if len(s.GetInventoryItems()) == 0 {
		t.Error("seed missing inventory items")
	}
	if len(s.GetStaffMembers()) == 0 {
		t.Error("seed missing staff")
	}
	if len(s.GetStaffShifts()) == 0 {
		t.Error("seed missing shifts")
	}
	if len(s.GetStaffPerformance()) == 0 {
		t.Error("seed missing performance rows")
	}
	if len(s.GetEvents()) == 0 {
		t.Error("seed missing events")
	}
	if len(s.GetOrders()) == 0 {
		t.Error("seed missing orders")
	}
	for _, order := range s.GetOrders() {
		if len(s.GetOrderItems(order.ID)) == 0 {
			t.Errorf("seed order %d has no line items", order.ID)
		}
	}
	if len(s.GetInventoryActivities()) == 0 {
		t.Error("seed missing inventory activities")
	}
	// Completed seed orders must have generated ledger entries.
	if len(s.GetFinancialTransactions()) == 0 {
		t.Error("seed orders produced no transactions")
	}
}
