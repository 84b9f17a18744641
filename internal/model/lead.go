package model

import (
	"gorm.io/gorm"
)

// Lead iletişim formundan gelen müşteri talebi. Oluşturulduktan sonra değiştirilmez.
type Lead struct {
	gorm.Model
	PropertyID  *uint  `json:"property_id" gorm:"index"`
	CommunityID *uint  `json:"community_id" gorm:"index"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"not null"`
	Phone       string `json:"phone"`
	Message     string `json:"message" gorm:"type:text"`
	Source      string `json:"source"`
}
