package seed

import (
	"log"
	"time"

	"gorm.io/gorm"

	"hazelview_backend/internal/listing"
	"hazelview_backend/internal/model"
)

// SeedCommunities referans topluluk verisini yükler (idempotent)
func SeedCommunities(db *gorm.DB) {
	for _, community := range DemoCommunities() {
		// ID veritabanı sequence'inden gelir, demo sabiti taşınmaz
		community.ID = 0
		result := db.Where(model.Community{Slug: community.Slug}).FirstOrCreate(&community)
		if result.Error != nil {
			log.Printf("Error seeding community %s: %v", community.Name, result.Error)
		}
	}

	log.Println("Communities seeded successfully!")
}

// LoadDemoCatalog demo modunda in-memory kataloğu örnek ilanlarla doldurur
func LoadDemoCatalog(catalog *listing.MemoryCatalog) {
	for _, property := range DemoProperties() {
		if _, err := catalog.Create(property); err != nil {
			log.Printf("Error loading demo property %s: %v", property.Title, err)
		}
	}

	log.Println("Demo catalog loaded (no DATABASE_URL set)")
}

// DemoProperties örnek ilan seti. Demo modu kataloğu ve seed için kullanılır.
func DemoProperties() []model.Property {
	lat, lng := 30.2672, -97.7431

	return []model.Property{
		{
			Title:       "Modern Farmhouse on Juniper Lane",
			Description: "Open-concept living with a chef's kitchen and covered back porch.",
			Status:      model.PropertyStatusAvailable,
			Published:   true,
			Price:       450000,
			Address:     "214 Juniper Lane",
			City:        "Austin",
			State:       "TX",
			Zip:         "78704",
			Latitude:    &lat,
			Longitude:   &lng,
			Bedrooms:    2,
			Bathrooms:   2,
			SquareFeet:  1850,
			Features:    listing.FeaturesJSON([]string{"Quartz countertops", "Smart thermostat", "Fenced yard"}),
			Images: []model.PropertyImage{
				{URL: "https://hazelview-images.s3.eu-central-1.amazonaws.com/demo/juniper-front.jpg", Order: 0, IsCover: true},
				{URL: "https://hazelview-images.s3.eu-central-1.amazonaws.com/demo/juniper-kitchen.jpg", Order: 1},
			},
		},
		{
			Title:       "Lakeview Estate with Private Dock",
			Description: "Four-bedroom estate overlooking the lake, sold furnished.",
			Status:      model.PropertyStatusSold,
			Published:   true,
			Price:       1200000,
			Address:     "88 Shoreline Drive",
			City:        "Austin",
			State:       "TX",
			Zip:         "78732",
			Bedrooms:    4,
			Bathrooms:   3.5,
			SquareFeet:  4200,
			Features:    listing.FeaturesJSON([]string{"Private dock", "Wine cellar", "Three-car garage"}),
			Images: []model.PropertyImage{
				{URL: "https://hazelview-images.s3.eu-central-1.amazonaws.com/demo/shoreline-front.jpg", Order: 0, IsCover: true},
			},
		},
		{
			Title:       "Downtown Loft with Skyline Views",
			Description: "Corner unit loft, floor-to-ceiling windows, walk to everything.",
			Status:      model.PropertyStatusUnderContract,
			Published:   true,
			Price:       675000,
			Address:     "501 Brazos Street #1204",
			City:        "Austin",
			State:       "TX",
			Zip:         "78701",
			Bedrooms:    1,
			Bathrooms:   1,
			SquareFeet:  980,
			Features:    listing.FeaturesJSON([]string{"Concierge", "Rooftop pool"}),
		},
		{
			Title:       "Hill Country Ranch Retreat",
			Description: "Ten acres of oak-shaded pasture with an updated ranch house. Not yet listed publicly.",
			Status:      model.PropertyStatusAvailable,
			Published:   false,
			Price:       890000,
			Address:     "1400 Ranch Road 12",
			City:        "Dripping Springs",
			State:       "TX",
			Zip:         "78620",
			Bedrooms:    3,
			Bathrooms:   2.5,
			SquareFeet:  2600,
		},
	}
}

// DemoCommunities referans topluluk seti. ID'ler demo modunda tekil lookup
// için sabittir; veritabanına seed edilirken sıfırlanır.
func DemoCommunities() []model.Community {
	return []model.Community{
		{
			Model:          gorm.Model{ID: 1},
			Name:           "Cedar Hollow",
			Slug:           "cedar-hollow",
			Description:    "Master-planned community with greenbelt trails and a resort pool.",
			City:           "Leander",
			State:          "TX",
			PriceMin:       320000,
			PriceMax:       560000,
			HomeTypes:      listing.FeaturesJSON([]string{"Single family", "Townhome"}),
			TotalHomes:     420,
			AvailableHomes: 37,
			Amenities:      listing.FeaturesJSON([]string{"Resort pool", "Greenbelt trails", "Dog park"}),
			Schools: []model.School{
				{Name: "Cedar Hollow Elementary", Type: model.SchoolTypeElementary, Rating: 8.5, DistanceMiles: 0.6},
				{Name: "Juniper Middle School", Type: model.SchoolTypeMiddle, Rating: 7.9, DistanceMiles: 1.4},
				{Name: "Leander High School", Type: model.SchoolTypeHigh, Rating: 8.1, DistanceMiles: 2.8},
			},
		},
		{
			Model:          gorm.Model{ID: 2},
			Name:           "The Preserve at Willow Creek",
			Slug:           "preserve-at-willow-creek",
			Description:    "Gated enclave of estate homes backing onto the creek preserve.",
			City:           "Georgetown",
			State:          "TX",
			PriceMin:       580000,
			PriceMax:       1150000,
			HomeTypes:      listing.FeaturesJSON([]string{"Single family"}),
			TotalHomes:     120,
			AvailableHomes: 9,
			Amenities:      listing.FeaturesJSON([]string{"Gated entry", "Creekside park"}),
			Schools: []model.School{
				{Name: "Willow Creek Elementary", Type: model.SchoolTypeElementary, Rating: 9.0, DistanceMiles: 1.1},
				{Name: "Georgetown High School", Type: model.SchoolTypeHigh, Rating: 7.5, DistanceMiles: 3.2},
			},
		},
	}
}

// DemoSales demo modu için örnek kampanya seti
func DemoSales() []model.Sale {
	now := time.Now()
	return []model.Sale{
		{
			Label:       "Spring Closing Credit",
			DiscountPct: 2,
			StartsAt:    now.AddDate(0, 0, -7),
			EndsAt:      now.AddDate(0, 0, 21),
			Active:      true,
		},
	}
}
