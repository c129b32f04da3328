package models

// EventCategory классифицирует событие каталога.
type EventCategory string

const (
	CategorySports     EventCategory = "sports"
	CategoryMusic      EventCategory = "music"
	CategoryTheater    EventCategory = "theater"
	CategoryComedy     EventCategory = "comedy"
	CategoryFestival   EventCategory = "festival"
	CategoryFoodDrink  EventCategory = "food_drink"
	CategoryArts       EventCategory = "arts"
	CategoryFamily     EventCategory = "family"
	CategoryNightlife  EventCategory = "nightlife"
	CategoryNetworking EventCategory = "networking"
	CategoryEducation  EventCategory = "education"
	CategoryCharity    EventCategory = "charity"
	CategoryFilm       EventCategory = "film"
	CategoryGeneral    EventCategory = "general"
)

// Categories перечисляет все допустимые категории событий.
var Categories = []EventCategory{
	CategorySports, CategoryMusic, CategoryTheater, CategoryComedy,
	CategoryFestival, CategoryFoodDrink, CategoryArts, CategoryFamily,
	CategoryNightlife, CategoryNetworking, CategoryEducation,
	CategoryCharity, CategoryFilm, CategoryGeneral,
}

// GeoPoint - координаты места проведения события.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CatalogEvent описывает событие из посевного каталога или из внешнего
// источника обнаружения. Записи каталога неизменяемы во время работы.
type CatalogEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    EventCategory `json:"category"`
	StartISO    string        `json:"start_iso"`
	EndISO      string        `json:"end_iso"`
	Venue       string        `json:"venue"`
	Address     string        `json:"address"`
	Geo         GeoPoint      `json:"geo"`
	Popularity  float64       `json:"popularity"`
	Description string        `json:"description,omitempty"`
}

// RankedEvent - событие, дополненное расстоянием до пользователя (мили)
// и оценкой surge. Никогда не сохраняется, пересчитывается на каждый запрос.
type RankedEvent struct {
	CatalogEvent
	Distance      float64 `json:"distance"`
	ExpectedSurge float64 `json:"expected_surge"`
}
