package helper

import (
	"log"
	"time"

	"resort_booking/database"
	"resort_booking/model"

	"github.com/robfig/cron/v3"
)

var promoScheduler *cron.Cron

func StartPromotionScheduler() {
	promoScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// every 5 minutes is plenty for expiry flagging
	_, err := promoScheduler.AddFunc("*/5 * * * *", deactivateExpiredPromotions)
	if err != nil {
		log.Printf("Error starting promotion scheduler: %v", err)
		return
	}

	promoScheduler.Start()
	log.Println("Promotion scheduler started (every 5 minutes)")
}

func deactivateExpiredPromotions() {
	now := time.Now()
	result := database.DB.Model(&model.Promotion{}).
		Where("is_active = true AND end_date < ?", now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("Error deactivating promotions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired promotions", result.RowsAffected)
	}
}

func StopPromotionScheduler() {
	if promoScheduler != nil {
		promoScheduler.Stop()
		log.Println("Promotion scheduler stopped")
	}
}
