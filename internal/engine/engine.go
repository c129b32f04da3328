// Package engine собирает сервисы обнаружения и интереса в один явный
// инстанс с жизненным циклом init/teardown. Движок внедряется вызывающим
// кодом, глобального состояния нет.
package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cityride/nearby_discovery/internal/catalog"
	"github.com/cityride/nearby_discovery/internal/config"
	"github.com/cityride/nearby_discovery/internal/discovery"
	"github.com/cityride/nearby_discovery/internal/interest"
	"github.com/cityride/nearby_discovery/internal/location"
	"github.com/cityride/nearby_discovery/internal/models"
	"github.com/cityride/nearby_discovery/internal/query"
	"github.com/cityride/nearby_discovery/internal/storage"
)

// Engine - фасад движка обнаружения и отслеживания интереса.
type Engine struct {
	Location   *location.Service
	Aggregator *discovery.Aggregator
	Interest   *interest.Service

	cfg    *config.Config
	logger *logrus.Logger
	kv     storage.KV
	closer func()
}

// New собирает движок из коллабораторов. closer (может быть nil) вызывается
// при Close и освобождает ресурсы, созданные вызывающим кодом.
func New(
	ctx context.Context,
	cfg *config.Config,
	logger *logrus.Logger,
	kv storage.KV,
	locator location.Locator,
	source discovery.Source,
	notifier interest.Notifier,
	closer func(),
) *Engine {
	fallback := models.GeoPoint{Latitude: cfg.FallbackLatitude, Longitude: cfg.FallbackLongitude}

	return &Engine{
		Location:   location.NewService(locator, kv, fallback, logger),
		Aggregator: discovery.NewAggregator(catalog.NewStore(), source, logger),
		Interest:   interest.NewService(ctx, kv, notifier, logger),
		cfg:        cfg,
		logger:     logger,
		kv:         kv,
		closer:     closer,
	}
}

// Nearby - сквозной сценарий: позиция пользователя, обновление обнаруженного
// набора и ранжированная выдача по фильтрам.
func (e *Engine) Nearby(ctx context.Context, filters models.NearbyFilters) ([]models.RankedEvent, error) {
	if err := query.ValidateFilters(filters); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	origin, ok := e.Location.LastKnown(ctx)
	if !ok {
		origin = e.Location.Acquire(ctx)
	}

	e.Aggregator.Refresh(ctx, filters)
	return query.Query(e.Aggregator.Combined(), origin, filters), nil
}

// Prefs возвращает сохранённые предпочтения пользователя; при их отсутствии
// или сбое чтения - нулевое значение.
func (e *Engine) Prefs(ctx context.Context) models.UserPrefs {
	var prefs models.UserPrefs
	if _, err := e.kv.Get(ctx, storage.KeyUserPrefs, &prefs); err != nil {
		e.logger.WithError(err).Error("Failed to read user prefs")
	}
	return prefs
}

// SavePrefs записывает предпочтения пользователя целиком.
func (e *Engine) SavePrefs(ctx context.Context, prefs models.UserPrefs) error {
	if err := e.kv.Set(ctx, storage.KeyUserPrefs, prefs); err != nil {
		return fmt.Errorf("engine: could not save user prefs: %w", err)
	}
	return nil
}

// Close освобождает ресурсы движка.
func (e *Engine) Close() {
	if e.closer != nil {
		e.closer()
	}
}
