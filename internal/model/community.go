package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// School Types
type SchoolType string

const (
	SchoolTypeElementary SchoolType = "elementary"
	SchoolTypeMiddle     SchoolType = "middle"
	SchoolTypeHigh       SchoolType = "high"
)

type Community struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	City        string `json:"city"`
	State       string `json:"state"`

	PriceMin       float64        `json:"price_min"`
	PriceMax       float64        `json:"price_max"`
	HomeTypes      datatypes.JSON `json:"home_types"` // string array
	TotalHomes     int            `json:"total_homes"`
	AvailableHomes int            `json:"available_homes"`
	Amenities      datatypes.JSON `json:"amenities"` // string array

	// İlişkiler
	Schools []School `json:"schools" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
}

type School struct {
	gorm.Model
	CommunityID   uint       `json:"community_id" gorm:"index"`
	Name          string     `json:"name" gorm:"not null"`
	Type          SchoolType `json:"type" gorm:"not null"`
	Rating        float64    `json:"rating"` // 0-10
	DistanceMiles float64    `json:"distance_miles"`
}
