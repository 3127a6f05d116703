package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/habiutomo/ERP-klub-bar/handlers"
)

// SetupRoutes wires the API surface onto the router.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	dashboard := r.Group("/api/dashboard")
	{
		dashboard.GET("/stats", h.DashboardStats)
		dashboard.GET("/sales-performance", h.SalesByPeriod)
		dashboard.GET("/popular-items", h.PopularItems)
		dashboard.GET("/recent-transactions", h.RecentTransactions)
		dashboard.GET("/upcoming-events", h.DashboardUpcomingEvents)
	}

	inventory := r.Group("/api/inventory")
	{
		inventory.GET("/items", h.ListInventoryItems)
		inventory.POST("/items", h.CreateInventoryItem)
		inventory.GET("/items/:id", h.GetInventoryItem)
		inventory.PUT("/items/:id", h.UpdateInventoryItem)
		inventory.DELETE("/items/:id", h.DeleteInventoryItem)
		inventory.GET("/low-stock", h.ListLowStockItems)
		inventory.GET("/activities", h.ListInventoryActivities)
		inventory.POST("/activities", h.CreateInventoryActivity)
	}

	menu := r.Group("/api/menu")
	{
		menu.GET("/items", h.ListMenuItems)
		menu.POST("/items", h.CreateMenuItem)
		menu.GET("/items/:id", h.GetMenuItem)
		menu.PUT("/items/:id", h.UpdateMenuItem)
		menu.DELETE("/items/:id", h.DeleteMenuItem)
	}

	orders := r.Group("/api/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.GET("/:id/items", h.ListOrderItems)
	}

	staff := r.Group("/api/staff")
	{
		staff.GET("", h.ListStaff)
		staff.POST("", h.CreateStaff)
		staff.GET("/:id", h.GetStaff)
		staff.PUT("/:id", h.UpdateStaff)
		staff.DELETE("/:id", h.DeleteStaff)
	}

	shifts := r.Group("/api/shifts")
	{
		shifts.GET("", h.ListShifts)
		shifts.POST("", h.CreateShift)
		shifts.PUT("/:id", h.UpdateShift)
		shifts.DELETE("/:id", h.DeleteShift)
	}

	performance := r.Group("/api/performance")
	{
		performance.GET("", h.ListPerformance)
		performance.POST("", h.CreatePerformance)
		performance.GET("/top", h.TopPerformers)
	}

	events := r.Group("/api/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	customers := r.Group("/api/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	reservations := r.Group("/api/reservations")
	{
		reservations.GET("", h.ListReservations)
		reservations.POST("", h.CreateReservation)
		reservations.GET("/:id", h.GetReservation)
		reservations.PUT("/:id", h.UpdateReservation)
		reservations.DELETE("/:id", h.DeleteReservation)
	}

	finances := r.Group("/api/finances")
	{
		finances.GET("/transactions", h.ListTransactions)
		finances.POST("/transactions", h.CreateTransaction)
		finances.GET("/daily-sales", h.DailySales)
		finances.GET("/sales-by-period", h.SalesByPeriod)
		finances.GET("/expenses-by-category", h.ExpensesByCategory)
	}
}
