package listing

import (
	"sync"
	"time"

	"github.com/gosimple/slug"

	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
)

// MemoryCatalog veritabanı yapılandırılmamışken kullanılan demo kataloğu.
// Filtre ve sıralama davranışı filter.go üzerinden GormCatalog ile ortaktır.
type MemoryCatalog struct {
	mu          sync.RWMutex
	properties  map[uint]*model.Property
	nextID      uint
	nextImageID uint
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		properties:  make(map[uint]*model.Property),
		nextID:      1,
		nextImageID: 1,
	}
}

func (m *MemoryCatalog) Query(c Criteria, ctx Context, policy settings.Visibility) ([]model.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]model.Property, 0)
	for _, p := range m.properties {
		if Visible(p, ctx, policy) && Matches(p, c) {
			results = append(results, cloneProperty(p))
		}
	}

	SortProperties(results, c)
	for i := range results {
		SortImages(results[i].Images)
	}
	return results, nil
}

func (m *MemoryCatalog) Get(id uint, ctx Context, policy settings.Visibility) (model.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.properties[id]
	// Politikanın listeden gizlediği kayıt doğrudan id ile de sızdırılmaz
	if !ok || !Visible(p, ctx, policy) {
		return model.Property{}, ErrNotFound
	}

	result := cloneProperty(p)
	SortImages(result.Images)
	return result, nil
}

func (m *MemoryCatalog) Create(p model.Property) (model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	p.ID = m.nextID
	m.nextID++
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}

	for i := range p.Images {
		p.Images[i].ID = m.nextImageID
		m.nextImageID++
		p.Images[i].PropertyID = p.ID
		p.Images[i].CreatedAt = now
		p.Images[i].UpdatedAt = now
	}

	stored := cloneProperty(&p)
	m.properties[p.ID] = &stored
	return cloneProperty(&stored), nil
}

func (m *MemoryCatalog) Update(id uint, u PropertyUpdate) (model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[id]
	if !ok {
		return model.Property{}, ErrNotFound
	}

	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Published != nil {
		p.Published = *u.Published
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.State != nil {
		p.State = *u.State
	}
	if u.Zip != nil {
		p.Zip = *u.Zip
	}
	if u.Latitude != nil {
		p.Latitude = u.Latitude
	}
	if u.Longitude != nil {
		p.Longitude = u.Longitude
	}
	if u.Bedrooms != nil {
		p.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		p.Bathrooms = *u.Bathrooms
	}
	if u.SquareFeet != nil {
		p.SquareFeet = *u.SquareFeet
	}
	if u.FloorPlanURL != nil {
		p.FloorPlanURL = *u.FloorPlanURL
	}
	if u.Features != nil {
		p.Features = FeaturesJSON(*u.Features)
	}

	if u.Images != nil {
		now := time.Now()
		images := make([]model.PropertyImage, 0, len(*u.Images))
		for _, img := range *u.Images {
			img.ID = m.nextImageID
			m.nextImageID++
			img.PropertyID = id
			img.CreatedAt = now
			img.UpdatedAt = now
			images = append(images, img)
		}
		p.Images = images
	}

	p.UpdatedAt = time.Now()
	result := cloneProperty(p)
	SortImages(result.Images)
	return result, nil
}

func (m *MemoryCatalog) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.properties[id]; !ok {
		return ErrNotFound
	}
	// Resimler property ile birlikte gider (cascade)
	delete(m.properties, id)
	return nil
}

func (m *MemoryCatalog) AddImage(propertyID uint, img model.PropertyImage) (model.PropertyImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[propertyID]
	if !ok {
		return model.PropertyImage{}, ErrNotFound
	}

	now := time.Now()
	img.ID = m.nextImageID
	m.nextImageID++
	img.PropertyID = propertyID
	img.CreatedAt = now
	img.UpdatedAt = now
	p.Images = append(p.Images, img)
	return img, nil
}

func (m *MemoryCatalog) DeleteImage(imageID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.properties {
		for i, img := range p.Images {
			if img.ID == imageID {
				p.Images = append(p.Images[:i], p.Images[i+1:]...)
				return nil
			}
		}
	}
	return ErrImageNotFound
}

func (m *MemoryCatalog) Images(propertyID uint) ([]model.PropertyImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.properties[propertyID]
	if !ok {
		return []model.PropertyImage{}, nil
	}

	images := make([]model.PropertyImage, len(p.Images))
	copy(images, p.Images)
	SortImages(images)
	return images, nil
}

func cloneProperty(p *model.Property) model.Property {
	clone := *p
	clone.Images = make([]model.PropertyImage, len(p.Images))
	copy(clone.Images, p.Images)
	if p.Features != nil {
		clone.Features = append([]byte(nil), p.Features...)
	}
	return clone
}
