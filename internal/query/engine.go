// Package query реализует конвейер фильтрации и сортировки близлежащих
// событий. Все функции чистые: вход не изменяется, результат строится заново.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cityride/nearby_discovery/internal/geo"
	"github.com/cityride/nearby_discovery/internal/models"
)

var validate = validator.New()

// ValidateFilters проверяет параметры запроса перед выполнением конвейера.
func ValidateFilters(filters models.NearbyFilters) error {
	if err := validate.Struct(filters); err != nil {
		return fmt.Errorf("query: invalid filters: %w", err)
	}
	return nil
}

// Query применяет конвейер в фиксированном порядке: категория, диапазон дат,
// полнотекстовый фильтр, расстояние, радиус, сортировка. Пустой результат
// валиден и не является ошибкой.
func Query(events []models.CatalogEvent, origin models.UserLocation, filters models.NearbyFilters) []models.RankedEvent {
	filtered := make([]models.CatalogEvent, 0, len(events))
	needle := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	for _, ev := range events {
		if filters.Category != models.CategoryAll && string(ev.Category) != filters.Category {
			continue
		}
		// Границы диапазона дат включительные; сравнение лексикографическое,
		// что для ISO-8601 с нулевым дополнением совпадает с хронологическим.
		if ev.StartISO < filters.StartDate || ev.StartISO > filters.EndDate {
			continue
		}
		if needle != "" && !matchesText(ev, needle) {
			continue
		}
		filtered = append(filtered, ev)
	}

	ranked := geo.WithDistance(filtered, origin)

	// Радиус включительный: событие ровно на границе остаётся в выдаче.
	within := ranked[:0]
	for _, ev := range ranked {
		if ev.Distance <= filters.Distance {
			within = append(within, ev)
		}
	}
	ranked = within

	sortRanked(ranked, filters.Sort)
	return ranked
}

// matchesText проверяет регистронезависимое вхождение подстроки в заголовок,
// площадку или описание; достаточно совпадения по любому из полей.
func matchesText(ev models.CatalogEvent, needle string) bool {
	return strings.Contains(strings.ToLower(ev.Title), needle) ||
		strings.Contains(strings.ToLower(ev.Venue), needle) ||
		strings.Contains(strings.ToLower(ev.Description), needle)
}

// sortRanked сортирует выдачу стабильно: события с равным ключом сохраняют
// исходный относительный порядок.
func sortRanked(ranked []models.RankedEvent, policy models.SortPolicy) {
	switch policy {
	case models.SortNearest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Distance < ranked[j].Distance
		})
	case models.SortPopular:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Popularity > ranked[j].Popularity
		})
	default: // soonest
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].StartISO < ranked[j].StartISO
		})
	}
}
