package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"hazelview_backend/internal/model"
)

// InitSaleExpiryCron bitiş tarihi geçmiş satış banner'larını her gece pasife
// çeker. Güncellik sorgu anında da hesaplanır; bu süpürme tabloyu temiz tutar.
func InitSaleExpiryCron(db *gorm.DB) {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		deactivateEndedSales(db)
	})
	if err != nil {
		log.Printf("Could not initialize sale expiry cron: %v", err)
		return
	}

	c.Start()
}

func deactivateEndedSales(db *gorm.DB) {
	result := db.Model(&model.Sale{}).
		Where("active = ? AND ends_at < ?", true, time.Now()).
		Update("active", false)

	if result.Error != nil {
		log.Printf("Error deactivating ended sales: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d ended sales", result.RowsAffected)
	}
}
