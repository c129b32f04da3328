package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityride/nearby_discovery/internal/models"
)

func TestDistance_SymmetryAndNonNegativity(t *testing.T) {
	// Подготовка
	pairs := [][2]models.GeoPoint{
		{
			{Latitude: 41.4993, Longitude: -81.6944}, // центр Кливленда
			{Latitude: 41.5064, Longitude: -81.6100}, // Severance Music Center
		},
		{
			{Latitude: 41.4965, Longitude: -81.6881},
			{Latitude: 41.5091, Longitude: -81.5800},
		},
		{
			{Latitude: 0, Longitude: 0},
			{Latitude: -33.8688, Longitude: 151.2093},
		},
	}

	for _, pair := range pairs {
		// Действие
		ab := Distance(pair[0], pair[1])
		ba := Distance(pair[1], pair[0])

		// Проверки
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	point := models.GeoPoint{Latitude: 41.4993, Longitude: -81.6944}

	assert.InDelta(t, 0.0, Distance(point, point), 1e-9)
}

func TestDistance_DowntownToUniversityCircle(t *testing.T) {
	// Примерно 4-5 миль по прямой между центром города и University Circle.
	downtown := models.GeoPoint{Latitude: 41.4993, Longitude: -81.6944}
	severance := models.GeoPoint{Latitude: 41.5064, Longitude: -81.6100}

	d := Distance(downtown, severance)

	assert.Greater(t, d, 3.0)
	assert.Less(t, d, 6.0)
}

func TestExpectedSurge_KnownVenueEveningRush(t *testing.T) {
	// Множитель площадки 1.8, местный час 19 попадает в [17, 20],
	// плюс безусловный бамп за день события.
	surge := ExpectedSurge("Rocket Mortgage FieldHouse", "2026-11-14T19:30:00-05:00")

	assert.InDelta(t, 1+0.8+0.3+0.5, surge, 1e-9)
}

func TestExpectedSurge_UnknownVenueDaytime(t *testing.T) {
	// Неизвестная площадка получает множитель 1, дневной час без бампа.
	surge := ExpectedSurge("Backyard Stage", "2026-11-14T12:00:00-05:00")

	assert.InDelta(t, 1.5, surge, 1e-9)
}

func TestExpectedSurge_Deterministic(t *testing.T) {
	first := ExpectedSurge("Progressive Field", "2026-10-03T18:00:00-04:00")
	second := ExpectedSurge("Progressive Field", "2026-10-03T18:00:00-04:00")

	assert.Equal(t, first, second)
}

func TestWithDistance_AttachesDistanceAndSurge(t *testing.T) {
	// Подготовка
	origin := models.UserLocation{Latitude: 41.4993, Longitude: -81.6944, Granted: true}
	events := []models.CatalogEvent{
		{ID: "e1", Venue: "Grog Shop", StartISO: "2026-12-12T21:00:00-05:00",
			Geo: models.GeoPoint{Latitude: 41.5091, Longitude: -81.5800}},
	}

	// Действие
	ranked := WithDistance(events, origin)

	// Проверки
	assert.Len(t, ranked, 1)
	assert.Greater(t, ranked[0].Distance, 0.0)
	assert.GreaterOrEqual(t, ranked[0].ExpectedSurge, 1.0)
}
