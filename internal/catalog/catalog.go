// Package catalog содержит посевной каталог событий, поставляемый вместе
// с приложением. Записи неизменяемы и никогда не удаляются во время работы.
package catalog

import "github.com/cityride/nearby_discovery/internal/models"

// Store - read-only хранилище событий каталога.
type Store struct {
	events []models.CatalogEvent
}

// NewStore возвращает хранилище с посевным набором событий.
func NewStore() *Store {
	return &Store{events: seedEvents}
}

// NewStoreWithEvents возвращает хранилище с заданным набором событий.
func NewStoreWithEvents(events []models.CatalogEvent) *Store {
	return &Store{events: events}
}

// All возвращает копию списка событий каталога, чтобы вызывающий код
// не мог изменить посевные данные.
func (s *Store) All() []models.CatalogEvent {
	out := make([]models.CatalogEvent, len(s.events))
	copy(out, s.events)
	return out
}

var seedEvents = []models.CatalogEvent{
	{
		ID:          "cat-cavs-251114",
		Title:       "Cavaliers vs. Celtics",
		Category:    models.CategorySports,
		StartISO:    "2026-11-14T19:30:00-05:00",
		EndISO:      "2026-11-14T22:00:00-05:00",
		Venue:       "Rocket Mortgage FieldHouse",
		Address:     "1 Center Ct, Cleveland, OH 44115",
		Geo:         models.GeoPoint{Latitude: 41.4965, Longitude: -81.6881},
		Popularity:  95,
		Description: "Regular season matchup downtown.",
	},
	{
		ID:          "cat-guardians-251003",
		Title:       "Guardians Postseason Watch Party",
		Category:    models.CategorySports,
		StartISO:    "2026-10-03T18:00:00-04:00",
		EndISO:      "2026-10-03T22:00:00-04:00",
		Venue:       "Progressive Field",
		Address:     "2401 Ontario St, Cleveland, OH 44115",
		Geo:         models.GeoPoint{Latitude: 41.4962, Longitude: -81.6852},
		Popularity:  88,
		Description: "Ballpark opens its gates for the away game broadcast.",
	},
	{
		ID:          "cat-orchestra-251121",
		Title:       "Cleveland Orchestra: Mahler 5",
		Category:    models.CategoryMusic,
		StartISO:    "2026-11-21T19:30:00-05:00",
		EndISO:      "2026-11-21T21:45:00-05:00",
		Venue:       "Severance Music Center",
		Address:     "11001 Euclid Ave, Cleveland, OH 44106",
		Geo:         models.GeoPoint{Latitude: 41.5064, Longitude: -81.6100},
		Popularity:  72,
		Description: "Symphony No. 5 under the resident conductor.",
	},
	{
		ID:          "cat-hob-251107",
		Title:       "Indie Rock Night",
		Category:    models.CategoryMusic,
		StartISO:    "2026-11-07T20:00:00-05:00",
		EndISO:      "2026-11-07T23:30:00-05:00",
		Venue:       "House of Blues Cleveland",
		Address:     "308 Euclid Ave, Cleveland, OH 44114",
		Geo:         models.GeoPoint{Latitude: 41.4993, Longitude: -81.6898},
		Popularity:  61,
	},
	{
		ID:          "cat-playhouse-251205",
		Title:       "Hamilton",
		Category:    models.CategoryTheater,
		StartISO:    "2026-12-05T19:00:00-05:00",
		EndISO:      "2026-12-05T21:45:00-05:00",
		Venue:       "Playhouse Square",
		Address:     "1501 Euclid Ave, Cleveland, OH 44115",
		Geo:         models.GeoPoint{Latitude: 41.5012, Longitude: -81.6804},
		Popularity:  90,
		Description: "Touring production, KeyBank Broadway series.",
	},
	{
		ID:          "cat-comedy-251115",
		Title:       "Stand-up Showcase",
		Category:    models.CategoryComedy,
		StartISO:    "2026-11-15T20:30:00-05:00",
		EndISO:      "2026-11-15T22:00:00-05:00",
		Venue:       "Hilarities 4th Street Theatre",
		Address:     "2035 E 4th St, Cleveland, OH 44115",
		Geo:         models.GeoPoint{Latitude: 41.4987, Longitude: -81.6904},
		Popularity:  48,
	},
	{
		ID:          "cat-marketfest-251108",
		Title:       "West Side Market Fest",
		Category:    models.CategoryFoodDrink,
		StartISO:    "2026-11-08T11:00:00-05:00",
		EndISO:      "2026-11-08T17:00:00-05:00",
		Venue:       "West Side Market",
		Address:     "1979 W 25th St, Cleveland, OH 44113",
		Geo:         models.GeoPoint{Latitude: 41.4847, Longitude: -81.7030},
		Popularity:  55,
		Description: "Local vendors, tastings and live cooking.",
	},
	{
		ID:          "cat-artmuseum-251203",
		Title:       "Impressionism After Dark",
		Category:    models.CategoryArts,
		StartISO:    "2026-12-03T18:00:00-05:00",
		EndISO:      "2026-12-03T21:00:00-05:00",
		Venue:       "Cleveland Museum of Art",
		Address:     "11150 East Blvd, Cleveland, OH 44106",
		Geo:         models.GeoPoint{Latitude: 41.5090, Longitude: -81.6118},
		Popularity:  40,
	},
	{
		ID:          "cat-grogshop-251212",
		Title:       "Local Bands Winter Bill",
		Category:    models.CategoryNightlife,
		StartISO:    "2026-12-12T21:00:00-05:00",
		EndISO:      "2026-12-13T01:00:00-05:00",
		Venue:       "Grog Shop",
		Address:     "2785 Euclid Heights Blvd, Cleveland Heights, OH 44106",
		Geo:         models.GeoPoint{Latitude: 41.5091, Longitude: -81.5800},
		Popularity:  33,
	},
	{
		ID:          "cat-techmeet-251119",
		Title:       "CLE Tech Networking Night",
		Category:    models.CategoryNetworking,
		StartISO:    "2026-11-19T17:30:00-05:00",
		EndISO:      "2026-11-19T20:00:00-05:00",
		Venue:       "Cleveland Public Hall",
		Address:     "500 Lakeside Ave E, Cleveland, OH 44114",
		Geo:         models.GeoPoint{Latitude: 41.5046, Longitude: -81.6934},
		Popularity:  27,
	},
}
