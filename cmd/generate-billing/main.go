package main

import (
	"log"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/config"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/services"
)

// Offline billing run: scans all dates with food counts and writes the
// missing daily snapshots. Existing billing rows are never overwritten.
func main() {
	cfg := config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	inserted, err := services.GenerateBilling(db, cfg.AmountPerPerson)
	if err != nil {
		log.Fatal("Failed to generate billing records:", err)
	}
	log.Printf("Generated %d billing record(s)", inserted)
}
