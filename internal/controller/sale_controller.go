package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hazelview_backend/internal/model"
	"hazelview_backend/pkg/seed"
)

type SaleController struct {
	db *gorm.DB
}

// NewSaleController db nil ise demo satış seti üzerinden salt-okunur çalışır
func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{db: db}
}

type SaleInput struct {
	Label       string    `json:"label" validate:"required"`
	DiscountPct float64   `json:"discount_pct" validate:"gte=0,lte=100"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	Active      *bool     `json:"active"`
}

// ListCurrent şu anda yayında olan tüm kampanyaları döner
func (sc *SaleController) ListCurrent(c *fiber.Ctx) error {
	sales, err := sc.currentSales()
	if err != nil {
		log.Printf("Could not fetch current sales: %v", err)
		return c.JSON([]model.Sale{})
	}
	return c.JSON(sales)
}

// Banner tekil banner seçimi: yayındaki kampanyalardan oluşturulma sırasına
// göre ilki. Yayında kampanya yoksa null döner.
func (sc *SaleController) Banner(c *fiber.Ctx) error {
	sales, err := sc.currentSales()
	if err != nil {
		log.Printf("Could not fetch sale banner: %v", err)
		return c.JSON(nil)
	}
	if len(sales) == 0 {
		return c.JSON(nil)
	}
	return c.JSON(sales[0])
}

func (sc *SaleController) currentSales() ([]model.Sale, error) {
	now := time.Now()

	if sc.db == nil {
		current := make([]model.Sale, 0)
		for _, sale := range seed.DemoSales() {
			if sale.IsCurrent(now) {
				current = append(current, sale)
			}
		}
		return current, nil
	}

	var sales []model.Sale
	err := sc.db.
		Where("active = ? AND starts_at <= ? AND ends_at >= ?", true, now, now).
		Order("id asc").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// ListAll admin listesi: pencere ve aktiflikten bağımsız tüm kampanyalar
func (sc *SaleController) ListAll(c *fiber.Ctx) error {
	if sc.db == nil {
		return c.JSON(seed.DemoSales())
	}

	var sales []model.Sale
	if err := sc.db.Order("id asc").Find(&sales).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sales",
		})
	}
	return c.JSON(sales)
}

func (sc *SaleController) Create(c *fiber.Ctx) error {
	if sc.db == nil {
		return demoReadOnly(c)
	}

	input := new(SaleInput)
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

	sale := model.Sale{
		Label:       input.Label,
		DiscountPct: input.DiscountPct,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Active:      true,
	}
	if input.Active != nil {
		sale.Active = *input.Active
	}

	if err := sc.db.Create(&sale).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create sale",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

func (sc *SaleController) Update(c *fiber.Ctx) error {
	if sc.db == nil {
		return demoReadOnly(c)
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sale ID",
		})
	}

	var sale model.Sale
	if err := sc.db.First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Sale not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sale",
		})
	}

	input := new(SaleInput)
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

	updates := map[string]interface{}{
		"label":        input.Label,
		"discount_pct": input.DiscountPct,
		"starts_at":    input.StartsAt,
		"ends_at":      input.EndsAt,
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if err := sc.db.Model(&sale).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update sale",
		})
	}

	return c.JSON(sale)
}

func (sc *SaleController) Delete(c *fiber.Ctx) error {
	if sc.db == nil {
		return demoReadOnly(c)
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sale ID",
		})
	}

	result := sc.db.Delete(&model.Sale{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete sale",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sale not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func demoReadOnly(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Admin writes are disabled in demo mode",
	})
}
