package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hazelview_backend/internal/model"
	"hazelview_backend/pkg/email"
)

type LeadController struct {
	db       *gorm.DB
	mailer   *email.Service
	notifyTo string
}

// NewLeadController db nil ise (demo modu) lead kabul edilmez, mailer nil ise
// bildirim atlanır.
func NewLeadController(db *gorm.DB, mailer *email.Service, notifyTo string) *LeadController {
	return &LeadController{db: db, mailer: mailer, notifyTo: notifyTo}
}

type LeadInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Source      string `json:"source"`
	PropertyID  *uint  `json:"property_id"`
	CommunityID *uint  `json:"community_id"`
}

// Create iletişim formu gönderimini kaydeder. Lead en fazla bir referans
// taşıyabilir: property veya community, ikisi birden değil.
func (lc *LeadController) Create(c *fiber.Ctx) error {
	if lc.db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Lead intake is not available in demo mode",
		})
	}

	input := new(LeadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a valid email are required",
		})
	}
	if input.PropertyID != nil && input.CommunityID != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A lead may reference a property or a community, not both",
		})
	}

	var listingTitle string
	if input.PropertyID != nil {
		var property model.Property
		if err := lc.db.First(&property, *input.PropertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Property not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not verify property",
			})
		}
		listingTitle = property.Title
	}
	if input.CommunityID != nil {
		var community model.Community
		if err := lc.db.First(&community, *input.CommunityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Community not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not verify community",
			})
		}
		listingTitle = community.Name
	}

	lead := model.Lead{
		PropertyID:  input.PropertyID,
		CommunityID: input.CommunityID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Message:     input.Message,
		Source:      input.Source,
	}

	if err := lc.db.Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create lead",
		})
	}

	// Bildirim best-effort; kayıt başarılı sayılır
	if lc.mailer != nil && lc.notifyTo != "" {
		go func() {
			err := lc.mailer.SendLeadNotification(lc.notifyTo, email.LeadNotificationData{
				ListingTitle: listingTitle,
				LeadName:     lead.Name,
				LeadEmail:    lead.Email,
				LeadPhone:    lead.Phone,
				LeadMessage:  lead.Message,
				LeadSource:   lead.Source,
			})
			if err != nil {
				log.Printf("Could not send lead notification email: %v", err)
			}
		}()
	}

	return c.Status(fiber.StatusCreated).JSON(lead)
}

// List admin lead listesi, filtrelenebilir, en yeni önce
func (lc *LeadController) List(c *fiber.Ctx) error {
	if lc.db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Leads are not available in demo mode",
		})
	}

	query := lc.db.Model(&model.Lead{})

	if propertyID := c.Query("property_id"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}
	if communityID := c.Query("community_id"); communityID != "" {
		query = query.Where("community_id = ?", communityID)
	}
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var leads []model.Lead
	if err := query.Order("created_at desc, id desc").Find(&leads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	return c.JSON(leads)
}
