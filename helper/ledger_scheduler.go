package helper

import (
	"log"
	"time"

	"resort_booking/database"
	"resort_booking/model"

	"github.com/go-co-op/gocron/v2"
)

var ledgerScheduler gocron.Scheduler

// LedgerHorizonDays is how far into the future every active room keeps daily
// ledger rows.
const LedgerHorizonDays = 365

// ExtendLedgers tops every active room back up to the full ledger horizon.
// SeedLedger skips dates that already have rows, so the pass is idempotent.
func ExtendLedgers() {
	log.Println("[CRON] ExtendLedgers triggered")

	db := database.DB
	var rooms []model.Room
	if err := db.Where("is_active = true").Find(&rooms).Error; err != nil {
		log.Printf("Error scanning rooms for ledger extension: %v", err)
		return
	}

	for i := range rooms {
		if err := SeedLedger(db, &rooms[i], LedgerHorizonDays); err != nil {
			log.Printf("Error extending ledger for room %d: %v", rooms[i].ID, err)
		}
	}
	log.Printf("Ledger extension done for %d rooms", len(rooms))
}

func StartLedgerScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatal(err)
	}

	ledgerScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 10, 0),
			),
		),
		gocron.NewTask(ExtendLedgers),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Ledger scheduler started (00:10 UTC)")
}

func StopLedgerScheduler() {
	if ledgerScheduler != nil {
		_ = ledgerScheduler.Shutdown()
		log.Println("Ledger scheduler stopped")
	}
}
