package engine

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cityride/nearby_discovery/internal/config"
	discovery_mocks "github.com/cityride/nearby_discovery/internal/discovery/mocks"
	interest_mocks "github.com/cityride/nearby_discovery/internal/interest/mocks"
	location_mocks "github.com/cityride/nearby_discovery/internal/location/mocks"
	"github.com/cityride/nearby_discovery/internal/models"
	"github.com/cityride/nearby_discovery/internal/storage"
)

func newTestEngine(t *testing.T) (*Engine, *location_mocks.MockLocator, *discovery_mocks.MockSource, *interest_mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	locatorMock := location_mocks.NewMockLocator(ctrl)
	sourceMock := discovery_mocks.NewMockSource(ctrl)
	notifierMock := interest_mocks.NewMockNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		FallbackLatitude:  41.4993,
		FallbackLongitude: -81.6944,
		ReminderLead:      time.Hour,
	}

	eng := New(context.Background(), cfg, logger, storage.NewMemoryKV(), locatorMock, sourceMock, notifierMock, nil)
	return eng, locatorMock, sourceMock, notifierMock
}

func TestNearby_FallbackLocationEndToEnd(t *testing.T) {
	// Подготовка: доступ к геолокации не дан, источник возвращает одно
	// событие рядом с фолбэк-координатой.
	eng, locatorMock, sourceMock, _ := newTestEngine(t)
	ctx := context.Background()

	locatorMock.EXPECT().
		Current(ctx).
		Return(models.GeoPoint{}, fmt.Errorf("permission denied")).
		Times(1)

	discovered := models.CatalogEvent{
		ID:       "ext-1",
		Title:    "Lakefront Pop-up",
		Category: models.CategoryGeneral,
		StartISO: "2026-06-05T18:00:00-04:00",
		EndISO:   "2026-06-05T21:00:00-04:00",
		Geo:      models.GeoPoint{Latitude: 41.5080, Longitude: -81.6950},
	}
	sourceMock.EXPECT().
		Search(ctx, gomock.Any()).
		Return([]models.CatalogEvent{discovered}, nil).
		Times(1)

	filters := models.NearbyFilters{
		Category:  models.CategoryAll,
		Distance:  5,
		StartDate: "2026-06-01T00:00:00Z",
		EndDate:   "2026-06-30T23:59:59Z",
		Sort:      models.SortNearest,
	}

	// Действие
	results, err := eng.Nearby(ctx, filters)

	// Проверки: каталог отфильтрован диапазоном дат, осталось обнаруженное событие
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ext-1", results[0].ID)
	assert.Less(t, results[0].Distance, 5.0)

	loc, found := eng.Location.LastKnown(ctx)
	require.True(t, found)
	assert.False(t, loc.Granted)
}

func TestNearby_InvalidFiltersRejected(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)

	_, err := eng.Nearby(context.Background(), models.NearbyFilters{
		Category:  models.CategoryAll,
		Distance:  7, // вне фиксированного набора радиусов
		StartDate: "2026-06-01T00:00:00Z",
		EndDate:   "2026-06-30T23:59:59Z",
		Sort:      models.SortSoonest,
	})

	assert.Error(t, err)
}

func TestPrefs_RoundTrip(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	// Нулевое значение до первой записи
	assert.Empty(t, eng.Prefs(ctx).FavoriteCategories)

	prefs := models.UserPrefs{
		FavoriteCategories: []models.EventCategory{models.CategorySports},
		FavoriteTeams:      []string{"Cavaliers"},
		RideBufferMinutes:  45,
	}
	require.NoError(t, eng.SavePrefs(ctx, prefs))

	assert.Equal(t, prefs, eng.Prefs(ctx))
}
