package db_models

import "github.com/lib/pq"

// Place categories as delivered by the tour-data provider.
const (
	CategoryTouristSpot   = "tourist_spot"
	CategoryCulture       = "culture"
	CategoryFestival      = "festival"
	CategoryLeisure       = "leisure"
	CategoryAccommodation = "accommodation"
	CategoryShopping      = "shopping"
	CategoryRestaurant    = "restaurant"
)

var PlaceCategories = []string{
	CategoryTouristSpot,
	CategoryCulture,
	CategoryFestival,
	CategoryLeisure,
	CategoryAccommodation,
	CategoryShopping,
	CategoryRestaurant,
}

func IsPlaceCategory(c string) bool {
	for _, known := range PlaceCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Place struct {
	BaseModel
	ContentID string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	Address   string
	Latitude  float64 `gorm:"index:idx_places_lat_lng"`
	Longitude float64 `gorm:"index:idx_places_lat_lng"`
	Category  string  `gorm:"index"`
	ImageURL  string
	Overview  string         `gorm:"type:text"`
	Tags      pq.StringArray `gorm:"type:text[]"`
}
