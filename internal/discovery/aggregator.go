package discovery

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/cityride/nearby_discovery/internal/catalog"
	"github.com/cityride/nearby_discovery/internal/models"
)

// Source определяет контракт внешнего источника обнаружения событий.
// Вызов сетевой и может завершиться ошибкой.
type Source interface {
	Search(ctx context.Context, filters models.NearbyFilters) ([]models.CatalogEvent, error)
}

// Aggregator объединяет посевной каталог со свежими результатами внешнего
// источника. Обнаруженный набор живёт только в памяти текущей сессии и
// целиком заменяется при каждом успешном Refresh.
type Aggregator struct {
	catalog *catalog.Store
	source  Source
	logger  *logrus.Logger

	refreshing atomic.Bool

	mu         sync.RWMutex
	discovered []models.CatalogEvent
}

func NewAggregator(cat *catalog.Store, source Source, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		catalog: cat,
		source:  source,
		logger:  logger,
	}
}

// Refresh запрашивает внешний источник и целиком заменяет обнаруженный набор.
// Нереентерабельный: запрос, пришедший пока предыдущий ещё выполняется,
// отбрасывается, а не ставится в очередь. Сбой источника сохраняет прежний
// набор ("нет новых результатов").
func (a *Aggregator) Refresh(ctx context.Context, filters models.NearbyFilters) {
	log := a.logger.WithFields(logrus.Fields{
		"service": "discovery",
		"method":  "Refresh",
	})

	if !a.refreshing.CompareAndSwap(false, true) {
		log.Debug("Refresh already in flight, dropping request")
		return
	}
	defer a.refreshing.Store(false)

	events, err := a.source.Search(ctx, filters)
	if err != nil {
		log.WithError(err).Warn("Discovery search failed, keeping previous results")
		return
	}

	a.mu.Lock()
	a.discovered = events
	a.mu.Unlock()
	log.WithField("count", len(events)).Info("Discovered events replaced")
}

// Combined возвращает объединение каталога и обнаруженного набора.
// Дедупликация только по id; при совпадении id побеждает запись каталога.
// Семантические дубликаты с разными id (та же площадка и время) намеренно
// не склеиваются.
func (a *Aggregator) Combined() []models.CatalogEvent {
	catalogEvents := a.catalog.All()

	seen := make(map[string]struct{}, len(catalogEvents))
	for _, ev := range catalogEvents {
		seen[ev.ID] = struct{}{}
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	combined := catalogEvents
	for _, ev := range a.discovered {
		if _, ok := seen[ev.ID]; ok {
			continue
		}
		seen[ev.ID] = struct{}{}
		combined = append(combined, ev)
	}
	return combined
}

// Discovered возвращает копию текущего обнаруженного набора.
func (a *Aggregator) Discovered() []models.CatalogEvent {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.CatalogEvent, len(a.discovered))
	copy(out, a.discovered)
	return out
}
