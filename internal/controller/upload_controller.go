package controller

import (
	"github.com/gofiber/fiber/v2"

	"hazelview_backend/pkg/storage"
	"hazelview_backend/pkg/utils/validation"
)

type UploadController struct {
	storage *storage.Client
}

// NewUploadController storage nil ise (S3 yapılandırılmamış) yükleme kapalıdır
func NewUploadController(client *storage.Client) *UploadController {
	return &UploadController{storage: client}
}

// UploadImage tekil dosya alır, optimize edip S3'e yükler ve URL döner.
// Webp türevi arka planda üretilir; türev hatası sonucu etkilemez.
func (uc *UploadController) UploadImage(c *fiber.Ctx) error {
	if uc.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Image uploads are not configured",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := uc.storage.UploadImage(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}
