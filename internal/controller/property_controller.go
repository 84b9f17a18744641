package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hazelview_backend/internal/listing"
	"hazelview_backend/internal/middleware"
	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
)

const MaxPropertyImages = 16

type PropertyController struct {
	catalog  listing.Catalog
	settings settings.Store
}

func NewPropertyController(catalog listing.Catalog, store settings.Store) *PropertyController {
	return &PropertyController{catalog: catalog, settings: store}
}

type PropertyInput struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	Status      model.PropertyStatus `json:"status" validate:"required"`
	Published   bool                 `json:"published"`
	Price       float64              `json:"price" validate:"gte=0"`

	Address   string   `json:"address" validate:"required"`
	City      string   `json:"city" validate:"required"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Bedrooms   int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms  float64 `json:"bathrooms" validate:"gte=0"`
	SquareFeet int     `json:"square_feet" validate:"gte=0"`

	FloorPlanURL string   `json:"floor_plan_url"`
	Features     []string `json:"features"`

	Images []string `json:"images"`
}

type PropertyUpdateInput struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Status      *model.PropertyStatus `json:"status"`
	Published   *bool                 `json:"published"`
	Price       *float64              `json:"price"`

	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Zip       *string  `json:"zip"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Bedrooms   *int     `json:"bedrooms"`
	Bathrooms  *float64 `json:"bathrooms"`
	SquareFeet *int     `json:"square_feet"`

	FloorPlanURL *string   `json:"floor_plan_url"`
	Features     *[]string `json:"features"`

	// Verilirse mevcut resimler tamamen değiştirilir
	Images *[]string `json:"images"`
}

type ImageInput struct {
	URL     string `json:"url" validate:"required"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
	IsCover bool   `json:"is_cover"`
}

// List public katalog sorgusu. Backend hatasında site render edilebilsin diye
// boş liste döner, hata loglanır.
func (pc *PropertyController) List(c *fiber.Ctx) error {
	criteria := listing.ParseCriteria(func(key string) string { return c.Query(key) })
	policy := pc.settings.SoldVisibility()

	properties, err := pc.catalog.Query(criteria, listing.ContextPublic, policy)
	if err != nil {
		log.Printf("Could not fetch public properties: %v", err)
		return c.JSON([]model.Property{})
	}

	return c.JSON(properties)
}

// ListAdmin admin listesi; yayın ve görünürlük filtrelerini atlar
func (pc *PropertyController) ListAdmin(c *fiber.Ctx) error {
	criteria := listing.ParseCriteria(func(key string) string { return c.Query(key) })

	properties, err := pc.catalog.Query(criteria, listing.ContextAdmin, settings.VisibilityShow)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	return c.JSON(properties)
}

// Get tekil ilan. Context, Authorization header'ından çıkarsanır; public
// çağrı için politikanın listeden gizlediği kayıt 404 döner.
func (pc *PropertyController) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	ctx := listing.ContextPublic
	if middleware.IsAdmin(c) {
		ctx = listing.ContextAdmin
	}

	property, err := pc.catalog.Get(id, ctx, pc.settings.SoldVisibility())
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		if ctx == listing.ContextPublic {
			log.Printf("Could not fetch property %d: %v", id, err)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}

	return c.JSON(property)
}

// Create yeni ilan oluşturur; ilan ve resimleri tek transaction'da yazılır
func (pc *PropertyController) Create(c *fiber.Ctx) error {
	input := new(PropertyInput)
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
	if !model.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
			"valid_statuses": []string{
				string(model.PropertyStatusAvailable),
				string(model.PropertyStatusSold),
				string(model.PropertyStatusUnderContract),
			},
		})
	}
	if len(input.Images) > MaxPropertyImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d images allowed", MaxPropertyImages),
		})
	}

	property := model.Property{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Published:    input.Published,
		Price:        input.Price,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Zip:          input.Zip,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFeet:   input.SquareFeet,
		FloorPlanURL: input.FloorPlanURL,
		Features:     listing.FeaturesJSON(input.Features),
		Images:       imagesFromURLs(input.Images),
	}

	created, err := pc.catalog.Create(property)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update kısmi güncelleme yapar; sadece gönderilen alanlar değişir.
// Images alanı verilmişse mevcut resimler komple değiştirilir.
func (pc *PropertyController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	input := new(PropertyUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Status != nil && !model.ValidStatus(*input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
		})
	}
	if input.Images != nil && len(*input.Images) > MaxPropertyImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d images allowed", MaxPropertyImages),
		})
	}

	update := listing.PropertyUpdate{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Published:    input.Published,
		Price:        input.Price,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Zip:          input.Zip,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFeet:   input.SquareFeet,
		FloorPlanURL: input.FloorPlanURL,
		Features:     input.Features,
	}
	if input.Images != nil {
		images := imagesFromURLs(*input.Images)
		update.Images = &images
	}

	updated, err := pc.catalog.Update(id, update)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update property",
		})
	}

	return c.JSON(updated)
}

// Delete ilanı ve resimlerini siler
func (pc *PropertyController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	if err := pc.catalog.Delete(id); err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddImage ilana tekil resim kaydı ekler
func (pc *PropertyController) AddImage(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	input := new(ImageInput)
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

	image, err := pc.catalog.AddImage(id, model.PropertyImage{
		URL:     input.URL,
		Caption: input.Caption,
		Order:   input.Order,
		IsCover: input.IsCover,
	})
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save image record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}

// DeleteImage tekil resim kaydını siler
func (pc *PropertyController) DeleteImage(c *fiber.Ctx) error {
	id, err := parseID(c.Params("image_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid image ID",
		})
	}

	if err := pc.catalog.DeleteImage(id); err != nil {
		if errors.Is(err, listing.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete image",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func imagesFromURLs(urls []string) []model.PropertyImage {
	images := make([]model.PropertyImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, model.PropertyImage{
			URL:     url,
			Order:   i,
			IsCover: i == 0,
		})
	}
	return images
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
