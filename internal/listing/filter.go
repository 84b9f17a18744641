package listing

import (
	"sort"
	"strings"

	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
)

// Bu dosyadaki saf fonksiyonlar MemoryCatalog'un filtre yoludur ve
// GormCatalog'un ürettiği SQL ile aynı semantiği taşır. Filtre davranışı
// değişecekse iki yol birlikte güncellenmelidir.

// Visible yayın ve görünürlük politikası filtrelerini uygular.
// Admin context her iki filtreyi de atlar.
func Visible(p *model.Property, ctx Context, policy settings.Visibility) bool {
	if ctx == ContextAdmin {
		return true
	}
	if !p.Published {
		return false
	}
	if policy == settings.VisibilityHide && p.Status == model.PropertyStatusSold {
		return false
	}
	return true
}

// Matches verilen kriterlerin tamamının (AND) sağlanıp sağlanmadığını döner.
// Search üç alan üzerinde OR semantiği ile çalışır.
func Matches(p *model.Property, c Criteria) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Address), needle) &&
			!strings.Contains(strings.ToLower(p.City), needle) {
			return false
		}
	}

	if c.City != "" && !strings.EqualFold(p.City, c.City) {
		return false
	}

	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MaxBedrooms != nil && p.Bedrooms > *c.MaxBedrooms {
		return false
	}
	if c.MinBathrooms != nil && p.Bathrooms < *c.MinBathrooms {
		return false
	}
	if c.MaxBathrooms != nil && p.Bathrooms > *c.MaxBathrooms {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MinSqft != nil && p.SquareFeet < *c.MinSqft {
		return false
	}
	if c.MaxSqft != nil && p.SquareFeet > *c.MaxSqft {
		return false
	}

	return true
}

// SortProperties kayıtları kriterdeki anahtara göre sıralar, eşitlikte ID asc
func SortProperties(props []model.Property, c Criteria) {
	switch c.Sort {
	case SortTitle:
		sortByTitle(props, c.Descending)
	case SortPrice, SortSqft, SortBedrooms:
		sort.SliceStable(props, func(i, j int) bool {
			a, b := &props[i], &props[j]
			av, bv := sortValue(a, c.Sort), sortValue(b, c.Sort)
			if av == bv {
				return a.ID < b.ID
			}
			if c.Descending {
				return av > bv
			}
			return av < bv
		})
	default:
		// Recency int64 nanosaniye üzerinden karşılaştırılır; float64'e
		// indirgenirse yakın timestamp'ler yanlış eşitlenir
		sort.SliceStable(props, func(i, j int) bool {
			a, b := &props[i], &props[j]
			av, bv := a.UpdatedAt.UnixNano(), b.UpdatedAt.UnixNano()
			if av == bv {
				return a.ID < b.ID
			}
			if c.Descending {
				return av > bv
			}
			return av < bv
		})
	}
}

// sortValue sayısal sıralama anahtarını karşılaştırılabilir tek tipe indirger
func sortValue(p *model.Property, key SortKey) float64 {
	switch key {
	case SortPrice:
		return p.Price
	case SortSqft:
		return float64(p.SquareFeet)
	default:
		return float64(p.Bedrooms)
	}
}

func sortByTitle(props []model.Property, descending bool) {
	sort.SliceStable(props, func(i, j int) bool {
		a, b := &props[i], &props[j]
		at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if at == bt {
			return a.ID < b.ID
		}
		if descending {
			return at > bt
		}
		return at < bt
	})
}

// SortImages galeri sırasını uygular: order asc, eşitlikte ID asc
func SortImages(images []model.PropertyImage) {
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].Order == images[j].Order {
			return images[i].ID < images[j].ID
		}
		return images[i].Order < images[j].Order
	})
}
