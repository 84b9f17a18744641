package model

import (
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusAvailable     PropertyStatus = "available"
	PropertyStatusSold          PropertyStatus = "sold"
	PropertyStatusUnderContract PropertyStatus = "under-contract"
)

// ValidStatus status değerinin geçerli olup olmadığını kontrol eder
func ValidStatus(s PropertyStatus) bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusUnderContract:
		return true
	}
	return false
}

type Property struct {
	gorm.Model
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Status      PropertyStatus `json:"status" gorm:"not null;default:'available'"`
	Published   bool           `json:"published" gorm:"not null;default:false"`
	Price       float64        `json:"price" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`

	// Location fields
	Address   string   `json:"address" gorm:"not null"`
	City      string   `json:"city" gorm:"not null;index"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Features fields
	Bedrooms   int     `json:"bedrooms" gorm:"not null"`
	Bathrooms  float64 `json:"bathrooms" gorm:"not null"` // Yarım banyo için 2.5 gibi değerler geçerli
	SquareFeet int     `json:"square_feet" gorm:"not null"`

	FloorPlanURL string         `json:"floor_plan_url"`
	Features     datatypes.JSON `json:"features"` // Sıralı özellik listesi (string array)

	// İlişkiler
	Images []PropertyImage `json:"images" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

type PropertyImage struct {
	gorm.Model
	PropertyID uint   `json:"property_id" gorm:"index"`
	URL        string `json:"url" gorm:"not null"`
	Caption    string `json:"caption"`
	Order      int    `json:"order" gorm:"default:0"`
	IsCover    bool   `json:"is_cover" gorm:"default:false"`
}

// BeforeCreate property oluşturulurken slug'ı otomatik oluşturur
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		base := slug.Make(p.Title)

		// Slug'ın benzersiz olduğundan emin ol
		var count int64
		tx.Model(&Property{}).Where("slug = ?", base).Count(&count)
		if count > 0 {
			base = base + "-" + p.CreatedAt.Format("20060102150405")
		}

		p.Slug = base
	}
	return nil
}
