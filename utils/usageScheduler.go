package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"arc/database"
	"arc/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[USAGE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SeedCurrentMonthUsage ensures every active program has a usage row for the
// current month so the monthly counters always have a row to increment.
// FirstOrCreate keeps the job idempotent.
func SeedCurrentMonthUsage() {
	db := database.Database.Db
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var programs []models.Program
	if err := db.Where("is_active = ?", true).Find(&programs).Error; err != nil {
		logScheduler("Error fetching active programs: " + err.Error())
		return
	}

	seeded := 0
	for _, program := range programs {
		usage := models.ProgramUsage{ProgramID: program.ID, Month: firstOfMonth}
		result := db.Where("program_id = ? AND month = ?", program.ID, firstOfMonth).
			FirstOrCreate(&usage)
		if result.Error != nil {
			logScheduler("Error seeding usage for program " + program.Handle + ": " + result.Error.Error())
			continue
		}
		if result.RowsAffected > 0 {
			seeded++
		}
	}

	if seeded > 0 {
		logScheduler(fmt.Sprintf("Seeded %s usage rows for %d programs", now.Month(), seeded))
	}
}

// InitializeUsageScheduler starts the daily usage-row seeding job and runs it
// once immediately
func InitializeUsageScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", SeedCurrentMonthUsage); err != nil {
		log.Fatalf("Failed to register usage scheduler: %v", err)
	}

	c.Start()
	logScheduler("Usage scheduler started")

	SeedCurrentMonthUsage()

	return c
}
