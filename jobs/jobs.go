package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"HealisPortal/services"
)

// StartDailyScheduler runs the inventory expiry sweep every day at 00:05.
func StartDailyScheduler() {
	c := cron.New()

	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Inventory Expiry Sweep...")
		RunExpirySweep()
	})

	c.Start()
}

func RunExpirySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := services.MarkExpiredInventory(ctx, time.Now())
	if err != nil {
		log.Println("Error from MarkExpiredInventory: ", err)
		return
	}
	log.Printf("Expiry sweep complete: %d batches marked expired\n", count)
}
