package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/habiutomo/ERP-klub-bar/config"
	"github.com/habiutomo/ERP-klub-bar/handlers"
	"github.com/habiutomo/ERP-klub-bar/routes"
	"github.com/habiutomo/ERP-klub-bar/storage"
)

func main() {
	config.Load()

	if mode := config.GinMode(); mode != "" {
		gin.SetMode(mode)
	}

	// Amounts serialize as JSON numbers, matching the dashboard's charts.
	decimal.MarshalJSONWithoutQuotes = true

	store := storage.New()
	if config.SeedDemoData() {
		store.Seed()
		log.Println("Seeded demo data")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bar management API"})
	})

	routes.SetupRoutes(r, handlers.New(store))

	port := config.Port()
	log.Printf("Server running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
