package listing

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
)

var (
	ErrNotFound      = errors.New("property not found")
	ErrImageNotFound = errors.New("image not found")
)

// PropertyUpdate kısmi güncelleme girdisi; nil alanlar dokunulmaz.
// Images nil değilse mevcut resimler tamamen değiştirilir (merge yapılmaz).
type PropertyUpdate struct {
	Title        *string
	Description  *string
	Status       *model.PropertyStatus
	Published    *bool
	Price        *float64
	Address      *string
	City         *string
	State        *string
	Zip          *string
	Latitude     *float64
	Longitude    *float64
	Bedrooms     *int
	Bathrooms    *float64
	SquareFeet   *int
	FloorPlanURL *string
	Features     *[]string

	Images *[]model.PropertyImage
}

// Catalog ilan deposu. GormCatalog Postgres'e karşı çalışır, MemoryCatalog
// veritabanı yapılandırılmamış demo modunda ve testlerde kullanılır.
type Catalog interface {
	Query(c Criteria, ctx Context, policy settings.Visibility) ([]model.Property, error)
	Get(id uint, ctx Context, policy settings.Visibility) (model.Property, error)
	Create(p model.Property) (model.Property, error)
	Update(id uint, u PropertyUpdate) (model.Property, error)
	Delete(id uint) error
	AddImage(propertyID uint, img model.PropertyImage) (model.PropertyImage, error)
	DeleteImage(imageID uint) error
	Images(propertyID uint) ([]model.PropertyImage, error)
}

// FeaturesJSON özellik listesini JSON kolonuna çevirir
func FeaturesJSON(features []string) datatypes.JSON {
	if features == nil {
		features = []string{}
	}
	raw, _ := json.Marshal(features)
	return datatypes.JSON(raw)
}
