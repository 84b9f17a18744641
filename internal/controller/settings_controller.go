package controller

import (
	"github.com/gofiber/fiber/v2"

	"hazelview_backend/internal/settings"
)

type SettingsController struct {
	store settings.Store
}

func NewSettingsController(store settings.Store) *SettingsController {
	return &SettingsController{store: store}
}

type SettingInput struct {
	Key         string `json:"key" validate:"required"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description"`
}

// List tüm site ayarlarını döner
func (sc *SettingsController) List(c *fiber.Ctx) error {
	items, err := sc.store.All()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch settings",
		})
	}
	return c.JSON(items)
}

// Upsert ayarı key üzerinden oluşturur veya günceller. Görünürlük politikası
// için değer kümesi doğrulanır; yeni değer bir sonraki sorguda etkilidir.
func (sc *SettingsController) Upsert(c *fiber.Ctx) error {
	input := new(SettingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Key and value are required",
		})
	}

	if input.Key == settings.KeySoldVisibility && !settings.ValidVisibility(settings.Visibility(input.Value)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":        "Invalid visibility value",
			"valid_values": []string{string(settings.VisibilityShow), string(settings.VisibilityHide)},
		})
	}

	setting, err := sc.store.Upsert(input.Key, input.Value, input.Description)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save setting",
		})
	}

	return c.JSON(setting)
}
