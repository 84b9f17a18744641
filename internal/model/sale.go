package model

import (
	"time"

	"gorm.io/gorm"
)

// Sale promosyon banner'ı. Aktiflik penceresi StartsAt-EndsAt arasıdır.
type Sale struct {
	gorm.Model
	Label       string    `json:"label" gorm:"not null"`
	DiscountPct float64   `json:"discount_pct"`
	StartsAt    time.Time `json:"starts_at" gorm:"not null"`
	EndsAt      time.Time `json:"ends_at" gorm:"not null"`
	Active      bool      `json:"active" gorm:"default:true"`
}

// IsCurrent satışın verilen anda yayında olup olmadığını döner
func (s *Sale) IsCurrent(now time.Time) bool {
	return s.Active && !now.Before(s.StartsAt) && !now.After(s.EndsAt)
}
