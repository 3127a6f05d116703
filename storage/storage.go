package storage

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/models"
)

var (
	// ErrNotFound signals that an id addressed no live record. Handlers map
	// it to 404 instead of treating it as an internal failure.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock rejects a remove activity that would drive an
	// inventory item's stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrShiftConflict rejects a second shift for the same staff member,
	// day and week.
	ErrShiftConflict = errors.New("staff member already has a shift for that day")

	// ErrInvalidTransition rejects an order update that would move a
	// completed order back to pending.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// Storage is the facade through which the route layer reaches every entity
// store and aggregation.
type Storage interface {
	// Users
	GetUser(id int) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(in models.InsertUser) (models.User, error)

	// Inventory items
	GetInventoryItems() []models.InventoryItem
	GetInventoryItem(id int) (models.InventoryItem, error)
	CreateInventoryItem(in models.InsertInventoryItem) (models.InventoryItem, error)
	UpdateInventoryItem(id int, patch models.InventoryItemPatch) (models.InventoryItem, error)
	DeleteInventoryItem(id int) bool
	GetLowStockItems() []models.InventoryItem

	// Inventory activities
	GetInventoryActivities() []models.InventoryActivity
	CreateInventoryActivity(in models.InsertInventoryActivity) (models.InventoryActivity, error)

	// Menu
	GetMenuItems() []models.MenuItem
	GetMenuItem(id int) (models.MenuItem, error)
	GetMenuItemsByCategory(category string) []models.MenuItem
	CreateMenuItem(in models.InsertMenuItem) (models.MenuItem, error)
	UpdateMenuItem(id int, patch models.MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(id int) bool

	// Orders
	GetOrders() []models.Order
	GetOrder(id int) (models.Order, error)
	CreateOrder(in models.InsertOrder, lines []models.OrderLine) (models.Order, error)
	UpdateOrder(id int, patch models.OrderPatch) (models.Order, error)
	GetRecentOrders(limit int) []models.Order

	// Order items
	GetOrderItems(orderID int) []models.OrderItem
	CreateOrderItem(in models.InsertOrderItem) (models.OrderItem, error)

	// Staff
	GetStaffMembers() []models.Staff
	GetStaffMember(id int) (models.Staff, error)
	CreateStaffMember(in models.InsertStaff) (models.Staff, error)
	UpdateStaffMember(id int, patch models.StaffPatch) (models.Staff, error)
	DeleteStaffMember(id int) bool

	// Staff shifts
	GetStaffShifts() []models.StaffShift
	GetStaffShiftsByStaffID(staffID int) []models.StaffShift
	CreateStaffShift(in models.InsertStaffShift) (models.StaffShift, error)
	UpdateStaffShift(id int, patch models.StaffShiftPatch) (models.StaffShift, error)
	DeleteStaffShift(id int) bool

	// Staff performance
	GetStaffPerformance() []models.StaffPerformance
	GetStaffPerformanceByStaffID(staffID int) []models.StaffPerformance
	CreateStaffPerformance(in models.InsertStaffPerformance) (models.StaffPerformance, error)
	GetTopPerformers(limit int) []models.TopPerformer

	// Events
	GetEvents() []models.Event
	GetEvent(id int) (models.Event, error)
	CreateEvent(in models.InsertEvent) (models.Event, error)
	UpdateEvent(id int, patch models.EventPatch) (models.Event, error)
	DeleteEvent(id int) bool
	GetUpcomingEvents(limit int) []models.Event

	// Customers
	GetCustomers() []models.Customer
	GetCustomer(id int) (models.Customer, error)
	CreateCustomer(in models.InsertCustomer) (models.Customer, error)
	UpdateCustomer(id int, patch models.CustomerPatch) (models.Customer, error)
	DeleteCustomer(id int) bool
	GetVIPCustomers() []models.Customer

	// Reservations
	GetReservations() []models.Reservation
	GetReservation(id int) (models.Reservation, error)
	CreateReservation(in models.InsertReservation) (models.Reservation, error)
	UpdateReservation(id int, patch models.ReservationPatch) (models.Reservation, error)
	DeleteReservation(id int) bool
	GetUpcomingReservations(limit int) []models.Reservation

	// Finance
	GetFinancialTransactions() []models.FinancialTransaction
	CreateFinancialTransaction(in models.InsertFinancialTransaction) (models.FinancialTransaction, error)
	GetDailySales() decimal.Decimal
	GetSalesByPeriod(period models.Period) []models.SalesBucket
	GetExpensesByCategory() []models.ExpenseCategory
}

// MemStorage keeps every entity in an id-keyed map behind one RWMutex.
// Records are stored and returned by value, so callers can never mutate
// stored state out-of-band; updates merge a patch into a copy and swap the
// whole record.
type MemStorage struct {
	mu sync.RWMutex

	users               map[int]models.User
	inventoryItems      map[int]models.InventoryItem
	inventoryActivities map[int]models.InventoryActivity
	menuItems           map[int]models.MenuItem
	orders              map[int]models.Order
	orderItems          map[int]models.OrderItem
	staffMembers        map[int]models.Staff
	staffShifts         map[int]models.StaffShift
	staffPerformance    map[int]models.StaffPerformance
	events              map[int]models.Event
	customers           map[int]models.Customer
	reservations        map[int]models.Reservation
	transactions        map[int]models.FinancialTransaction

	ids counters
}

// counters holds the next id for each entity store. Ids start at 1 and are
// never reused, even after deletes.
type counters struct {
	user              int
	inventoryItem     int
	inventoryActivity int
	menuItem          int
	order             int
	orderItem         int
	staff             int
	staffShift        int
	staffPerformance  int
	event             int
	customer          int
	reservation       int
	transaction       int
}

// New constructs an empty store. Callers that want the demo dataset call
// Seed explicitly.
func New() *MemStorage {
	return &MemStorage{
		users:               make(map[int]models.User),
		inventoryItems:      make(map[int]models.InventoryItem),
		inventoryActivities: make(map[int]models.InventoryActivity),
		menuItems:           make(map[int]models.MenuItem),
		orders:              make(map[int]models.Order),
		orderItems:          make(map[int]models.OrderItem),
		staffMembers:        make(map[int]models.Staff),
		staffShifts:         make(map[int]models.StaffShift),
		staffPerformance:    make(map[int]models.StaffPerformance),
		events:              make(map[int]models.Event),
		customers:           make(map[int]models.Customer),
		reservations:        make(map[int]models.Reservation),
		transactions:        make(map[int]models.FinancialTransaction),
		ids: counters{
			user:              1,
			inventoryItem:     1,
			inventoryActivity: 1,
			menuItem:          1,
			order:             1,
			orderItem:         1,
			staff:             1,
			staffShift:        1,
			staffPerformance:  1,
			event:             1,
			customer:          1,
			reservation:       1,
			transaction:       1,
		},
	}
}

func nextID(seq *int) int {
	id := *seq
	*seq++
	return id
}
