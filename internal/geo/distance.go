// Package geo содержит чистую геоматематику движка: расстояние по большому
// кругу и детерминированную эвристику surge. Никакого I/O.
package geo

import (
	"math"

	"github.com/cityride/nearby_discovery/internal/models"
)

// earthRadiusMiles - радиус Земли в милях для формулы гаверсинусов.
const earthRadiusMiles = 3959.0

// Distance возвращает расстояние по большому кругу между двумя точками в милях.
// Результат неотрицателен и симметричен.
func Distance(a, b models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// WithDistance дополняет события расстоянием от origin и оценкой surge.
// Исходный срез не изменяется.
func WithDistance(events []models.CatalogEvent, origin models.UserLocation) []models.RankedEvent {
	ranked := make([]models.RankedEvent, 0, len(events))
	userPoint := models.GeoPoint{Latitude: origin.Latitude, Longitude: origin.Longitude}
	for _, event := range events {
		ranked = append(ranked, models.RankedEvent{
			CatalogEvent:  event,
			Distance:      Distance(userPoint, event.Geo),
			ExpectedSurge: ExpectedSurge(event.Venue, event.StartISO),
		})
	}
	return ranked
}
