package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load pulls a .env file into the environment when one exists. Missing files
// are fine; deployments configure the process environment directly.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return getEnv("PORT", "8080")
}

func GinMode() string {
	return getEnv("GIN_MODE", "")
}

// SeedDemoData is on by default so the dashboard has something to show on a
// fresh start; set SEED_DEMO_DATA=false for an empty store.
func SeedDemoData() bool {
	return getEnv("SEED_DEMO_DATA", "true") != "false"
}
