package listing

import (
	"strconv"
	"strings"
)

// Context sorguyu yapan tarafın rolü. Public çağrılar yayın ve görünürlük
// filtrelerine tabidir, admin çağrıları her kaydı görür.
type Context int

const (
	ContextPublic Context = iota
	ContextAdmin
)

type SortKey string

const (
	SortUpdated  SortKey = "updated"
	SortPrice    SortKey = "price"
	SortSqft     SortKey = "sqft"
	SortBedrooms SortKey = "bedrooms"
	SortTitle    SortKey = "title"
)

// sortColumns sıralama anahtarlarını sıralama ifadelerine çevirir (whitelist).
// Title in-memory yol ile aynı case-insensitive karşılaştırma için lowercase'tir.
var sortColumns = map[SortKey]string{
	SortUpdated:  "updated_at",
	SortPrice:    "price",
	SortSqft:     "square_feet",
	SortBedrooms: "bedrooms",
	SortTitle:    "LOWER(title)",
}

// Criteria listeleme filtreleri. Boş/nil alan "kısıt yok" demektir.
// Aralıklar dahildir; ters aralık (min > max) hata değil, boş sonuç üretir.
type Criteria struct {
	Search string
	City   string

	MinBedrooms  *int
	MaxBedrooms  *int
	MinBathrooms *float64
	MaxBathrooms *float64
	MinPrice     *float64
	MaxPrice     *float64
	MinSqft      *int
	MaxSqft      *int

	Sort       SortKey
	Descending bool
}

// ParseCriteria query parametrelerinden Criteria oluşturur. Bozuk sayısal
// değerler yok sayılır. Varsayılan sıralama updated_at desc'tir; diğer
// anahtarlar için yön verilmemişse asc kullanılır.
func ParseCriteria(get func(key string) string) Criteria {
	c := Criteria{
		Search: strings.TrimSpace(get("search")),
		City:   strings.TrimSpace(get("city")),

		MinBedrooms:  parseInt(get("min_bedrooms")),
		MaxBedrooms:  parseInt(get("max_bedrooms")),
		MinBathrooms: parseFloat(get("min_bathrooms")),
		MaxBathrooms: parseFloat(get("max_bathrooms")),
		MinPrice:     parseFloat(get("min_price")),
		MaxPrice:     parseFloat(get("max_price")),
		MinSqft:      parseInt(get("min_sqft")),
		MaxSqft:      parseInt(get("max_sqft")),
	}

	c.Sort = SortUpdated
	if key := SortKey(get("sort")); key != "" {
		if _, ok := sortColumns[key]; ok {
			c.Sort = key
		}
	}

	switch get("order") {
	case "asc":
		c.Descending = false
	case "desc":
		c.Descending = true
	default:
		c.Descending = c.Sort == SortUpdated
	}

	return c
}

// OrderClause SQL sıralama ifadesini döner, ID asc tie-break dahildir
func (c Criteria) OrderClause() string {
	column, ok := sortColumns[c.Sort]
	if !ok {
		column = "updated_at"
	}
	direction := "asc"
	if c.Descending {
		direction = "desc"
	}
	return column + " " + direction + ", id asc"
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
