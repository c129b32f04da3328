package models

// SortPolicy определяет порядок сортировки результатов поиска.
type SortPolicy string

const (
	SortSoonest SortPolicy = "soonest"
	SortNearest SortPolicy = "nearest"
	SortPopular SortPolicy = "popular"
)

// CategoryAll отключает фильтр по категории.
const CategoryAll = "all"

// Radii - фиксированный набор допустимых радиусов поиска (мили).
var Radii = []float64{5, 10, 25, 50, 100}

// NearbyFilters - параметры запроса близлежащих событий. Value object.
type NearbyFilters struct {
	Category    string     `json:"category" validate:"required"`
	Distance    float64    `json:"distance" validate:"oneof=5 10 25 50 100"`
	StartDate   string     `json:"start_date" validate:"required"`
	EndDate     string     `json:"end_date" validate:"required"`
	Sort        SortPolicy `json:"sort" validate:"oneof=soonest nearest popular"`
	SearchQuery string     `json:"search_query"`
}
