package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/handlers"
	"github.com/habiutomo/ERP-klub-bar/routes"
	"github.com/habiutomo/ERP-klub-bar/storage"
)

func newTestRouter() (*gin.Engine, *storage.MemStorage) {
	gin.SetMode(gin.TestMode)
	store := storage.New()
	r := gin.New()
	routes.SetupRoutes(r, handlers.New(store))
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInventoryItemLifecycle(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/inventory/items",
		`{"name":"Vodka","category":"spirits","stock":5,"minLevel":10,"price":25}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: code = %d, body = %s", w.Code, w.Body)
	}
	var created struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Status != "low" {
		t.Errorf("status = %q, want low", created.Status)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/inventory/items/1", ""); w.Code != http.StatusOK {
		t.Errorf("get: code = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/inventory/items/999", ""); w.Code != http.StatusNotFound {
		t.Errorf("get missing: code = %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/inventory/items/abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("get garbage id: code = %d, want 400", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/api/inventory/items/1", ""); w.Code != http.StatusNoContent {
		t.Errorf("delete: code = %d, want 204", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/inventory/items/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete: code = %d, want 404", w.Code)
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/menu/items", `{"category":"cocktails","price":12}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name: code = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/menu/items",
		`{"name":"Mojito","category":"cocktails","price":12}`)
	if w.Code != http.StatusCreated {
		t.Errorf("valid item: code = %d, body = %s", w.Code, w.Body)
	}
}

func TestCreateOrderWithItems(t *testing.T) {
	r, store := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"tableNumber":"5","totalAmount":40,"tax":4,"grandTotal":44,
		  "items":[{"menuItemId":1,"name":"Mojito","price":12,"quantity":2},
		           {"menuItemId":2,"name":"Negroni","price":16,"quantity":1}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: code = %d, body = %s", w.Code, w.Body)
	}

	items := store.GetOrderItems(1)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	w = doJSON(t, r, http.MethodGet, "/api/orders/1/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list items: code = %d", w.Code)
	}
	var listed []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("listed %d items, want 2", len(listed))
	}
}

func TestCompletedOrderCannotGoBackToPending(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"status":"completed","totalAmount":10,"grandTotal":11}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: code = %d, body = %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodPut, "/api/orders/1", `{"status":"pending"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("rollback: code = %d, want 400", w.Code)
	}
}

func TestShiftConflictReturns409(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/staff", `{"name":"Alex Johnson","role":"bartender"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create staff: code = %d, body = %s", w.Code, w.Body)
	}

	shift := `{"staffId":1,"day":"monday","shift":"evening"}`
	if w := doJSON(t, r, http.MethodPost, "/api/shifts", shift); w.Code != http.StatusCreated {
		t.Fatalf("first shift: code = %d, body = %s", w.Code, w.Body)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/shifts", shift); w.Code != http.StatusConflict {
		t.Errorf("duplicate shift: code = %d, want 409", w.Code)
	}
}

func TestRemoveActivityBeyondStockReturns400(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/inventory/items",
		`{"name":"Gin","category":"spirits","stock":2,"minLevel":1,"price":30}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create item: code = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/inventory/activities",
		`{"itemId":1,"action":"remove","quantity":5,"performedBy":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("overdraw: code = %d, want 400, body = %s", w.Code, w.Body)
	}
}

func TestDashboardStats(t *testing.T) {
	r, store := newTestRouter()
	store.Seed()

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: code = %d", w.Code)
	}
	var stats map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"dailySales", "customersToday", "lowStockCount"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("stats missing %q", key)
		}
	}
}

func TestSalesPerformancePeriodFallback(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/sales-performance?period=bogus", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var buckets []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &buckets); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(buckets) != 7 {
		t.Errorf("unknown period returned %d buckets, want the weekly 7", len(buckets))
	}
}

func TestTopPerformersRoute(t *testing.T) {
	r, store := newTestRouter()
	store.Seed()

	w := doJSON(t, r, http.MethodGet, "/api/performance/top?limit=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var performers []struct {
		CustomerRating float64 `json:"customerRating"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &performers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(performers) != 3 {
		t.Fatalf("len = %d, want 3", len(performers))
	}
	if performers[0].CustomerRating < performers[1].CustomerRating ||
		performers[1].CustomerRating < performers[2].CustomerRating {
		t.Errorf("ratings not descending: %+v", performers)
	}
}

func TestUpcomingEventsQuery(t *testing.T) {
	r, store := newTestRouter()
	store.Seed()

	w := doJSON(t, r, http.MethodGet, "/api/events?upcoming=1&limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var events []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(events) > 2 {
		t.Errorf("limit ignored: %d events", len(events))
	}
}

func TestPopularItemsFromSeededOrders(t *testing.T) {
	r, store := newTestRouter()
	store.Seed()

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/popular-items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var items []struct {
		Name      string `json:"name"`
		SoldToday int    `json:"soldToday"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("no popular items from seeded orders")
	}
	if len(items) > 5 {
		t.Errorf("len = %d, want at most 5", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].SoldToday < items[i].SoldToday {
			t.Errorf("soldToday not descending at %d: %+v", i, items)
		}
	}
}

func TestRecentTransactionsShape(t *testing.T) {
	r, store := newTestRouter()
	store.Seed()

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/recent-transactions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var transactions []struct {
		ID        int    `json:"id"`
		Label     string `json:"label"`
		Bartender string `json:"bartender"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &transactions); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(transactions) == 0 {
		t.Fatal("no transactions from seeded orders")
	}
	for _, tx := range transactions {
		if !strings.HasPrefix(tx.Label, "#TRX-") {
			t.Errorf("label = %q", tx.Label)
		}
		if tx.Bartender == "" {
			t.Errorf("transaction %d missing bartender", tx.ID)
		}
	}
}
