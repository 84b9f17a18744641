package listing

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
)

type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// visibilityScope public context için yayın ve görünürlük filtrelerini uygular
func visibilityScope(ctx Context, policy settings.Visibility) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ctx == ContextAdmin {
			return db
		}
		db = db.Where("published = ?", true)
		if policy == settings.VisibilityHide {
			db = db.Where("status <> ?", model.PropertyStatusSold)
		}
		return db
	}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("property_images.order ASC, property_images.id ASC")
}

// escapeLike LIKE metakarakterlerini kaçırır; arama metni her zaman literal
// substring olarak eşleşir (in-memory yol ile aynı semantik)
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (g *GormCatalog) Query(c Criteria, ctx Context, policy settings.Visibility) ([]model.Property, error) {
	query := g.db.Model(&model.Property{}).Scopes(visibilityScope(ctx, policy))

	if c.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(c.Search)) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?)",
			pattern, pattern, pattern)
	}
	if c.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(c.City))
	}
	if c.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *c.MinBedrooms)
	}
	if c.MaxBedrooms != nil {
		query = query.Where("bedrooms <= ?", *c.MaxBedrooms)
	}
	if c.MinBathrooms != nil {
		query = query.Where("bathrooms >= ?", *c.MinBathrooms)
	}
	if c.MaxBathrooms != nil {
		query = query.Where("bathrooms <= ?", *c.MaxBathrooms)
	}
	if c.MinPrice != nil {
		query = query.Where("price >= ?", *c.MinPrice)
	}
	if c.MaxPrice != nil {
		query = query.Where("price <= ?", *c.MaxPrice)
	}
	if c.MinSqft != nil {
		query = query.Where("square_feet >= ?", *c.MinSqft)
	}
	if c.MaxSqft != nil {
		query = query.Where("square_feet <= ?", *c.MaxSqft)
	}

	var properties []model.Property
	err := query.
		Preload("Images", preloadImages).
		Order(c.OrderClause()).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (g *GormCatalog) Get(id uint, ctx Context, policy settings.Visibility) (model.Property, error) {
	var property model.Property
	err := g.db.Scopes(visibilityScope(ctx, policy)).
		Preload("Images", preloadImages).
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Property{}, ErrNotFound
		}
		return model.Property{}, err
	}
	return property, nil
}

// Create property ve resimlerini tek transaction içinde kaydeder
func (g *GormCatalog) Create(p model.Property) (model.Property, error) {
	images := p.Images
	p.Images = nil

	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].PropertyID = p.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Property{}, err
	}

	return g.Get(p.ID, ContextAdmin, settings.VisibilityShow)
}

// Update kısmi alan güncellemesi yapar; Images verilmişse mevcut resimler
// silinip yeniden yazılır. Tamamı tek transaction içinde çalışır.
func (g *GormCatalog) Update(id uint, u PropertyUpdate) (model.Property, error) {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		var property model.Property
		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := fieldUpdates(u)
		if len(updates) > 0 {
			if err := tx.Model(&property).Updates(updates).Error; err != nil {
				return err
			}
		}

		if u.Images != nil {
			if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImage{}).Error; err != nil {
				return err
			}
			for i := range *u.Images {
				img := (*u.Images)[i]
				img.ID = 0
				img.PropertyID = id
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return model.Property{}, err
	}

	return g.Get(id, ContextAdmin, settings.VisibilityShow)
}

func fieldUpdates(u PropertyUpdate) map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Status != nil {
		updates["status"] = *u.Status
	}
	if u.Published != nil {
		updates["published"] = *u.Published
	}
	if u.Price != nil {
		updates["price"] = *u.Price
	}
	if u.Address != nil {
		updates["address"] = *u.Address
	}
	if u.City != nil {
		updates["city"] = *u.City
	}
	if u.State != nil {
		updates["state"] = *u.State
	}
	if u.Zip != nil {
		updates["zip"] = *u.Zip
	}
	if u.Latitude != nil {
		updates["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		updates["longitude"] = *u.Longitude
	}
	if u.Bedrooms != nil {
		updates["bedrooms"] = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		updates["bathrooms"] = *u.Bathrooms
	}
	if u.SquareFeet != nil {
		updates["square_feet"] = *u.SquareFeet
	}
	if u.FloorPlanURL != nil {
		updates["floor_plan_url"] = *u.FloorPlanURL
	}
	if u.Features != nil {
		updates["features"] = FeaturesJSON(*u.Features)
	}
	return updates
}

// Delete property'yi ve resimlerini tek transaction içinde siler
func (g *GormCatalog) Delete(id uint) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		var property model.Property
		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
}

func (g *GormCatalog) AddImage(propertyID uint, img model.PropertyImage) (model.PropertyImage, error) {
	var property model.Property
	if err := g.db.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.PropertyImage{}, ErrNotFound
		}
		return model.PropertyImage{}, err
	}

	img.PropertyID = propertyID
	if err := g.db.Create(&img).Error; err != nil {
		return model.PropertyImage{}, err
	}
	return img, nil
}

func (g *GormCatalog) DeleteImage(imageID uint) error {
	var img model.PropertyImage
	if err := g.db.First(&img, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return g.db.Delete(&img).Error
}

func (g *GormCatalog) Images(propertyID uint) ([]model.PropertyImage, error) {
	var images []model.PropertyImage
	err := g.db.Where("property_id = ?", propertyID).
		Order("\"order\" ASC, id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
