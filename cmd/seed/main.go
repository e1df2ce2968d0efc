package main

import (
	"flag"
	"log"
	"time"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/config"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/services"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "year to seed")
	month := flag.Int("month", 1, "month to seed (1-12)")
	students := flag.Int("students", 60, "number of students to create")
	withBilling := flag.Bool("billing", true, "generate billing records after seeding")
	flag.Parse()

	cfg := config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedData(db, *year, time.Month(*month), *students); err != nil {
		log.Fatal("Failed to seed data:", err)
	}

	if *withBilling {
		if _, err := services.GenerateBilling(db, cfg.AmountPerPerson); err != nil {
			log.Fatal("Failed to generate billing records:", err)
		}
	}

	log.Printf("Seeding complete: %s", cfg.DBPath)
}
