package main

import (
	"context"
	"log"

	"referral-service/internal/config"
	"referral-service/internal/database"
	"referral-service/internal/store"
)

// initdb drops and recreates the schema, then loads demonstration data.
// Destructive: do not run against a live database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Connect(cfg.Database.Driver, cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	st := store.New(database.GetDB())
	ctx := context.Background()

	if err := st.Reset(ctx); err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}

	if err := st.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Initialized the database.")
}
