package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler. Billing generation is
// a batch pass over settled food counts, so it runs once a day after dinner
// counts are in; the HTTP surface never triggers it.
func StartScheduler(db *sql.DB, amountPerPerson int64) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 11:30 PM (23:30)
			if now.Hour() == 23 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [23:30]...")

				if _, err := GenerateBilling(db, amountPerPerson); err != nil {
					log.Printf("Error generating billing records: %v", err)
				}
			}
		}
	}()
}
