package model

import (
	"gorm.io/gorm"
)

// Setting key üzerinden upsert edilen site ayarı
type Setting struct {
	gorm.Model
	Key         string `json:"key" gorm:"uniqueIndex;not null"`
	Value       string `json:"value" gorm:"not null"`
	Description string `json:"description"`
}
