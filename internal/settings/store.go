package settings

import (
	"hazelview_backend/internal/model"
)

// Visibility satılmış ilanların public tarafta görünürlük politikası
type Visibility string

const (
	VisibilityShow Visibility = "show"
	VisibilityHide Visibility = "hide"
)

const KeySoldVisibility = "sold_property_visibility"

// ValidVisibility verilen değerin geçerli bir politika olup olmadığını döner
func ValidVisibility(v Visibility) bool {
	return v == VisibilityShow || v == VisibilityHide
}

// Store site ayarlarını tutar. SoldVisibility değer yoksa veya okunamazsa
// VisibilityShow döner.
type Store interface {
	SoldVisibility() Visibility
	SetSoldVisibility(v Visibility) error
	All() ([]model.Setting, error)
	Upsert(key, value, description string) (model.Setting, error)
}
