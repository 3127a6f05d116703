package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/models"
)

// Seed loads the demo dataset through the normal create paths, so the
// usual side effects apply: restock/remove activities move stock, and
// completed orders write their ledger entries.
func (s *MemStorage) Seed() {
	s.CreateUser(models.InsertUser{
		Username: "admin",
		Password: "password",
		FullName: "Admin User",
		Role:     "admin",
		Email:    "admin@nightlifepro.com",
		Phone:    "555-123-4567",
	})

	menuItems := []models.InsertMenuItem{
		{Name: "Signature Mojito", Category: "cocktails", Price: decimal.NewFromInt(12), Description: "Fresh mint, rum, lime juice and soda", Ingredients: []string{"rum", "mint", "lime", "sugar", "soda"}},
		{Name: "Premium Vodka (Neat)", Category: "spirits", Price: decimal.NewFromInt(15), Description: "Premium vodka served neat", Ingredients: []string{"vodka"}},
		{Name: "Craft Beer", Category: "beer", Price: decimal.NewFromInt(8), Description: "Locally brewed craft beer", Ingredients: []string{"beer"}},
		{Name: "House Wine (Glass)", Category: "wine", Price: decimal.NewFromInt(10), Description: "Selection of red or white house wine", Ingredients: []string{"wine"}},
		{Name: "Whiskey Sour", Category: "cocktails", Price: decimal.NewFromInt(14), Description: "Whiskey, lemon juice, sugar, and egg white", Ingredients: []string{"whiskey", "lemon", "sugar", "egg white"}},
		{Name: "Margarita", Category: "cocktails", Price: decimal.NewFromInt(12), Description: "Tequila, triple sec, and lime juice", Ingredients: []string{"tequila", "triple sec", "lime"}},
		{Name: "Gin & Tonic", Category: "cocktails", Price: decimal.NewFromInt(11), Description: "Gin and tonic water with lime", Ingredients: []string{"gin", "tonic", "lime"}},
		{Name: "Tequila Shot", Category: "spirits", Price: decimal.NewFromInt(7), Description: "Shot of tequila with lime and salt", Ingredients: []string{"tequila", "lime", "salt"}},
	}
	for _, item := range menuItems {
		s.CreateMenuItem(item)
	}

	inventoryItems := []models.InsertInventoryItem{
		{Name: "Premium Vodka", Category: "spirits", Stock: 24, MinLevel: 10, Price: decimal.NewFromFloat(32.50), UnitType: "bottle"},
		{Name: "Gin", Category: "spirits", Stock: 18, MinLevel: 8, Price: decimal.NewFromFloat(28.75), UnitType: "bottle"},
		{Name: "White Rum", Category: "spirits", Stock: 9, MinLevel: 10, Price: decimal.NewFromFloat(22.00), UnitType: "bottle"},
		{Name: "Tequila", Category: "spirits", Stock: 5, MinLevel: 8, Price: decimal.NewFromFloat(42.00), UnitType: "bottle"},
		{Name: "Craft Beer", Category: "beer", Stock: 42, MinLevel: 20, Price: decimal.NewFromFloat(6.50), UnitType: "bottle"},
		{Name: "House Wine Red", Category: "wine", Stock: 15, MinLevel: 6, Price: decimal.NewFromFloat(18.00), UnitType: "bottle"},
		{Name: "House Wine White", Category: "wine", Stock: 2, MinLevel: 6, Price: decimal.NewFromFloat(18.00), UnitType: "bottle"},
		{Name: "Triple Sec", Category: "spirits", Stock: 4, MinLevel: 4, Price: decimal.NewFromFloat(16.50), UnitType: "bottle"},
		{Name: "Mint Leaves", Category: "supplies", Stock: 3, MinLevel: 5, Price: decimal.NewFromFloat(3.50), UnitType: "bunch"},
		{Name: "Limes", Category: "supplies", Stock: 22, MinLevel: 15, Price: decimal.NewFromFloat(0.50), UnitType: "piece"},
		{Name: "Simple Syrup", Category: "supplies", Stock: 6, MinLevel: 5, Price: decimal.NewFromFloat(5.00), UnitType: "bottle"},
		{Name: "Whiskey", Category: "spirits", Stock: 16, MinLevel: 8, Price: decimal.NewFromFloat(38.00), UnitType: "bottle"},
	}
	for _, item := range inventoryItems {
		s.CreateInventoryItem(item)
	}

	staffMembers := []models.InsertStaff{
		{Name: "Jake Thompson", Role: "Bartender", Status: "active", Email: "jake@nightlifepro.com", Phone: "555-111-2222", EmergencyContact: "555-111-3333", EmployeeID: "EMP-1001", HourlyRate: decimal.NewFromFloat(18.50)},
		{Name: "Maria Rodriguez", Role: "Bartender", Status: "active", Email: "maria@nightlifepro.com", Phone: "555-222-3333", EmergencyContact: "555-222-4444", EmployeeID: "EMP-1002", HourlyRate: decimal.NewFromFloat(19.00)},
		{Name: "David Kim", Role: "Security", Status: "active", Email: "david@nightlifepro.com", Phone: "555-333-4444", EmergencyContact: "555-333-5555", EmployeeID: "EMP-1003", HourlyRate: decimal.NewFromFloat(20.00)},
		{Name: "Sarah Johnson", Role: "Server", Status: "active", Email: "sarah@nightlifepro.com", Phone: "555-444-5555", EmergencyContact: "555-444-6666", EmployeeID: "EMP-1004", HourlyRate: decimal.NewFromFloat(16.00)},
		{Name: "Michael Chen", Role: "Bartender", Status: "off", Email: "michael@nightlifepro.com", Phone: "555-555-6666", EmergencyContact: "555-555-7777", EmployeeID: "EMP-1005", HourlyRate: decimal.NewFromFloat(19.50)},
		{Name: "Jessica Williams", Role: "Server", Status: "active", Email: "jessica@nightlifepro.com", Phone: "555-666-7777", EmergencyContact: "555-666-8888", EmployeeID: "EMP-1006", HourlyRate: decimal.NewFromFloat(16.50)},
		{Name: "Robert Garcia", Role: "Security", Status: "active", Email: "robert@nightlifepro.com", Phone: "555-777-8888", EmergencyContact: "555-777-9999", EmployeeID: "EMP-1007", HourlyRate: decimal.NewFromFloat(21.00)},
		{Name: "Emily Davis", Role: "Manager", Status: "active", Email: "emily@nightlifepro.com", Phone: "555-888-9999", EmergencyContact: "555-888-0000", EmployeeID: "EMP-1008", HourlyRate: decimal.NewFromFloat(25.00)},
	}
	for _, member := range staffMembers {
		s.CreateStaffMember(member)
	}

	shifts := []string{"6 PM - 2 AM", "8 PM - 4 AM", "10 PM - 6 AM"}
	staffShifts := []models.InsertStaffShift{
		{StaffID: 1, Day: "Monday", Shift: shifts[0]},
		{StaffID: 2, Day: "Monday", Shift: shifts[0]},
		{StaffID: 3, Day: "Monday", Shift: shifts[1]},
		{StaffID: 5, Day: "Monday", Shift: shifts[1]},
		{StaffID: 4, Day: "Tuesday", Shift: shifts[0]},
		{StaffID: 6, Day: "Tuesday", Shift: shifts[0]},
		{StaffID: 7, Day: "Tuesday", Shift: shifts[1]},
		{StaffID: 1, Day: "Wednesday", Shift: shifts[0]},
		{StaffID: 2, Day: "Wednesday", Shift: shifts[0]},
		{StaffID: 3, Day: "Wednesday", Shift: shifts[1]},
		{StaffID: 2, Day: "Thursday", Shift: shifts[1]},
		{StaffID: 4, Day: "Thursday", Shift: shifts[0]},
		{StaffID: 5, Day: "Thursday", Shift: shifts[0]},
		{StaffID: 7, Day: "Thursday", Shift: shifts[1]},
		{StaffID: 1, Day: "Friday", Shift: shifts[0]},
		{StaffID: 2, Day: "Friday", Shift: shifts[1]},
		{StaffID: 3, Day: "Friday", Shift: shifts[1]},
		{StaffID: 4, Day: "Friday", Shift: shifts[0]},
		{StaffID: 6, Day: "Friday", Shift: shifts[1]},
		{StaffID: 7, Day: "Friday", Shift: shifts[2]},
		{StaffID: 1, Day: "Saturday", Shift: shifts[1]},
		{StaffID: 2, Day: "Saturday", Shift: shifts[1]},
		{StaffID: 3, Day: "Saturday", Shift: shifts[2]},
		{StaffID: 5, Day: "Saturday", Shift: shifts[1]},
		{StaffID: 6, Day: "Saturday", Shift: shifts[1]},
		{StaffID: 7, Day: "Saturday", Shift: shifts[2]},
		{StaffID: 4, Day: "Sunday", Shift: shifts[0]},
		{StaffID: 5, Day: "Sunday", Shift: shifts[0]},
		{StaffID: 7, Day: "Sunday", Shift: shifts[1]},
	}
	for _, shift := range staffShifts {
		s.CreateStaffShift(shift)
	}

	performance := []models.InsertStaffPerformance{
		{StaffID: 1, SalesAmount: decimal.NewFromInt(2120), TipsEarned: decimal.NewFromInt(420), CustomerRating: 4.8, HoursWorked: 32},
		{StaffID: 2, SalesAmount: decimal.NewFromInt(1980), TipsEarned: decimal.NewFromInt(395), CustomerRating: 4.6, HoursWorked: 36},
		{StaffID: 3, CustomerRating: 4.7, HoursWorked: 40},
		{StaffID: 4, SalesAmount: decimal.NewFromInt(1540), TipsEarned: decimal.NewFromInt(320), CustomerRating: 4.5, HoursWorked: 28},
		{StaffID: 5, SalesAmount: decimal.NewFromInt(2456), TipsEarned: decimal.NewFromInt(510), CustomerRating: 4.9, HoursWorked: 20},
		{StaffID: 6, SalesAmount: decimal.NewFromInt(1320), TipsEarned: decimal.NewFromInt(275), CustomerRating: 4.3, HoursWorked: 30},
		{StaffID: 7, CustomerRating: 4.6, Incidents: 1, HoursWorked: 40},
		{StaffID: 8, CustomerRating: 4.7, HoursWorked: 45},
	}
	for _, row := range performance {
		s.CreateStaffPerformance(row)
	}

	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	friday := now.AddDate(0, 0, (int(time.Friday)-int(now.Weekday())+7)%7)
	saturday := friday.AddDate(0, 0, 1)

	events := []models.InsertEvent{
		{
			Name:        "DJ Night - Mark Johnson",
			Description: "Join us for an unforgettable night with DJ Mark Johnson spinning the latest hits",
			Date:        tomorrow,
			StartTime:   "9:00 PM",
			EndTime:     "2:00 AM",
			Performer:   "Mark Johnson",
			EventType:   "DJ Set",
			RSVPCount:   63,
		},
		{
			Name:        "Live Band - The Locals",
			Description: "Local band performing original music and popular covers",
			Date:        friday,
			StartTime:   "10:00 PM",
			EndTime:     "1:00 AM",
			Performer:   "The Locals",
			EventType:   "Live Music",
			RSVPCount:   42,
		},
		{
			Name:        "Cocktail Masterclass",
			Description: "Learn how to make signature cocktails with our expert bartenders",
			Date:        saturday,
			StartTime:   "6:00 PM",
			EndTime:     "8:00 PM",
			Performer:   "Jake Thompson",
			EventType:   "Workshop",
			RSVPCount:   18,
		},
	}
	for _, event := range events {
		s.CreateEvent(event)
	}

	orders := []struct {
		order models.InsertOrder
		lines []models.OrderLine
	}{
		{
			order: models.InsertOrder{TableNumber: "5", Status: "completed", TotalAmount: decimal.NewFromFloat(86.50), Tax: decimal.NewFromFloat(7.35), GrandTotal: decimal.NewFromFloat(93.85), BartenderID: 1},
			lines: []models.OrderLine{
				{MenuItemID: 1, Name: "Signature Mojito", Price: decimal.NewFromInt(12), Quantity: 4},
				{MenuItemID: 5, Name: "Whiskey Sour", Price: decimal.NewFromInt(14), Quantity: 2},
				{MenuItemID: 3, Name: "Craft Beer", Price: decimal.NewFromInt(8), Quantity: 1},
			},
		},
		{
			order: models.InsertOrder{TableNumber: "8", Status: "completed", TotalAmount: decimal.NewFromFloat(124.00), Tax: decimal.NewFromFloat(10.54), GrandTotal: decimal.NewFromFloat(134.54), BartenderID: 2},
			lines: []models.OrderLine{
				{MenuItemID: 6, Name: "Margarita", Price: decimal.NewFromInt(12), Quantity: 5},
				{MenuItemID: 8, Name: "Tequila Shot", Price: decimal.NewFromInt(7), Quantity: 6},
				{MenuItemID: 7, Name: "Gin & Tonic", Price: decimal.NewFromInt(11), Quantity: 2},
			},
		},
		{
			order: models.InsertOrder{TableNumber: "3", Status: "pending", TotalAmount: decimal.NewFromFloat(38.00), Tax: decimal.NewFromFloat(3.23), GrandTotal: decimal.NewFromFloat(41.23), BartenderID: 1},
			lines: []models.OrderLine{
				{MenuItemID: 3, Name: "Craft Beer", Price: decimal.NewFromInt(8), Quantity: 2},
				{MenuItemID: 1, Name: "Signature Mojito", Price: decimal.NewFromInt(12), Quantity: 1},
				{MenuItemID: 4, Name: "House Wine (Glass)", Price: decimal.NewFromInt(10), Quantity: 1},
			},
		},
		{
			order: models.InsertOrder{TableNumber: "10", Status: "completed", TotalAmount: decimal.NewFromFloat(52.75), Tax: decimal.NewFromFloat(4.48), GrandTotal: decimal.NewFromFloat(57.23), BartenderID: 2},
			lines: []models.OrderLine{
				{MenuItemID: 1, Name: "Signature Mojito", Price: decimal.NewFromInt(12), Quantity: 2},
				{MenuItemID: 2, Name: "Premium Vodka (Neat)", Price: decimal.NewFromInt(15), Quantity: 1},
			},
		},
	}
	for _, o := range orders {
		s.CreateOrder(o.order, o.lines)
	}

	activities := []models.InsertInventoryActivity{
		{ItemID: 1, Action: models.ActivityRestock, Quantity: 12, Notes: "Regular inventory order", PerformedBy: 8},
		{ItemID: 2, Action: models.ActivityUpdatePrice, Notes: "Price updated from $26.50 to $28.75", PerformedBy: 8},
		{ItemID: 9, Action: models.ActivityRemove, Quantity: 2, Notes: "Expired product", PerformedBy: 5},
		{ItemID: 7, Action: models.ActivityLowStockAlert, Notes: "Only 2 remaining", PerformedBy: 1},
		{ItemID: 5, Action: models.ActivityRestock, Quantity: 24, Notes: "Regular inventory order", PerformedBy: 8},
	}
	for _, activity := range activities {
		s.CreateInventoryActivity(activity)
	}
}
