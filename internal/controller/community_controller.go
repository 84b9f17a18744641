package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"hazelview_backend/internal/listing"
	"hazelview_backend/internal/model"
	"hazelview_backend/pkg/seed"
)

type CommunityController struct {
	db *gorm.DB
}

// NewCommunityController db nil ise demo referans verisi üzerinden çalışır
func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{db: db}
}

type CommunityInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
	State       string `json:"state"`

	PriceMin       float64  `json:"price_min" validate:"gte=0"`
	PriceMax       float64  `json:"price_max" validate:"gte=0"`
	HomeTypes      []string `json:"home_types"`
	TotalHomes     int      `json:"total_homes" validate:"gte=0"`
	AvailableHomes int      `json:"available_homes" validate:"gte=0"`
	Amenities      []string `json:"amenities"`

	Schools []SchoolInput `json:"schools"`
}

type SchoolInput struct {
	Name          string           `json:"name" validate:"required"`
	Type          model.SchoolType `json:"type" validate:"required,oneof=elementary middle high"`
	Rating        float64          `json:"rating" validate:"gte=0,lte=10"`
	DistanceMiles float64          `json:"distance_miles" validate:"gte=0"`
}

// List topluluk referans verisini okullarıyla birlikte listeler
func (cc *CommunityController) List(c *fiber.Ctx) error {
	if cc.db == nil {
		return c.JSON(seed.DemoCommunities())
	}

	var communities []model.Community
	err := cc.db.Preload("Schools").Order("name asc").Find(&communities).Error
	if err != nil {
		log.Printf("Could not fetch communities: %v", err)
		return c.JSON([]model.Community{})
	}

	return c.JSON(communities)
}

func (cc *CommunityController) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid community ID",
		})
	}

	if cc.db == nil {
		for _, community := range seed.DemoCommunities() {
			if community.ID == id {
				return c.JSON(community)
			}
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Community not found",
		})
	}

	var community model.Community
	if err := cc.db.Preload("Schools").First(&community, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Community not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch community",
		})
	}

	return c.JSON(community)
}

func (cc *CommunityController) Create(c *fiber.Ctx) error {
	if cc.db == nil {
		return demoReadOnly(c)
	}

	input := new(CommunityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if input.PriceMin > input.PriceMax {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "price_min must not exceed price_max",
		})
	}

	community := model.Community{
		Name:           input.Name,
		Slug:           slug.Make(input.Name),
		Description:    input.Description,
		City:           input.City,
		State:          input.State,
		PriceMin:       input.PriceMin,
		PriceMax:       input.PriceMax,
		HomeTypes:      listing.FeaturesJSON(input.HomeTypes),
		TotalHomes:     input.TotalHomes,
		AvailableHomes: input.AvailableHomes,
		Amenities:      listing.FeaturesJSON(input.Amenities),
		Schools:        schoolsFromInput(input.Schools),
	}

	if err := cc.db.Create(&community).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create community",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(community)
}

// Update topluluk bilgilerini günceller; okul listesi verilmişse komple
// değiştirilir
func (cc *CommunityController) Update(c *fiber.Ctx) error {
	if cc.db == nil {
		return demoReadOnly(c)
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid community ID",
		})
	}

	var community model.Community
	if err := cc.db.First(&community, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Community not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch community",
		})
	}

	input := new(CommunityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if input.PriceMin > input.PriceMax {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "price_min must not exceed price_max",
		})
	}

	err = cc.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":            input.Name,
			"description":     input.Description,
			"city":            input.City,
			"state":           input.State,
			"price_min":       input.PriceMin,
			"price_max":       input.PriceMax,
			"home_types":      listing.FeaturesJSON(input.HomeTypes),
			"total_homes":     input.TotalHomes,
			"available_homes": input.AvailableHomes,
			"amenities":       listing.FeaturesJSON(input.Amenities),
		}
		if err := tx.Model(&community).Updates(updates).Error; err != nil {
			return err
		}

		if input.Schools != nil {
			if err := tx.Where("community_id = ?", id).Delete(&model.School{}).Error; err != nil {
				return err
			}
			for _, school := range schoolsFromInput(input.Schools) {
				school.CommunityID = id
				if err := tx.Create(&school).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update community",
		})
	}

	if err := cc.db.Preload("Schools").First(&community, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch community",
		})
	}
	return c.JSON(community)
}

func schoolsFromInput(inputs []SchoolInput) []model.School {
	schools := make([]model.School, 0, len(inputs))
	for _, s := range inputs {
		schools = append(schools, model.School{
			Name:          s.Name,
			Type:          s.Type,
			Rating:        s.Rating,
			DistanceMiles: s.DistanceMiles,
		})
	}
	return schools
}
