package location

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cityride/nearby_discovery/internal/models"
	"github.com/cityride/nearby_discovery/internal/storage"
)

// Locator определяет контракт для получения позиции с устройства.
// Реализация запрашивает разрешение у пользователя; отказ или сбой
// возвращаются как ошибка.
type Locator interface {
	Current(ctx context.Context) (models.GeoPoint, error)
}

// Service получает координаты пользователя и хранит последнее известное
// значение. Отказ в разрешении не является ошибкой: сервис деградирует
// к фиксированной точке города (fail open).
type Service struct {
	locator  Locator
	kv       storage.KV
	fallback models.GeoPoint
	logger   *logrus.Logger
}

func NewService(locator Locator, kv storage.KV, fallback models.GeoPoint, logger *logrus.Logger) *Service {
	return &Service{
		locator:  locator,
		kv:       kv,
		fallback: fallback,
		logger:   logger,
	}
}

// Acquire запрашивает позицию устройства. При отказе или сбое возвращает
// фолбэк с Granted=false, не поднимая ошибку наверх. Каждый вызов
// перезаписывает сохранённую последнюю позицию.
func (s *Service) Acquire(ctx context.Context) models.UserLocation {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "Acquire",
	})

	loc := models.UserLocation{
		Latitude:  s.fallback.Latitude,
		Longitude: s.fallback.Longitude,
		Granted:   false,
	}

	point, err := s.locator.Current(ctx)
	if err != nil {
		log.WithError(err).Warn("Device fix unavailable, using fallback coordinate")
	} else {
		loc = models.UserLocation{Latitude: point.Latitude, Longitude: point.Longitude, Granted: true}
		log.Debug("Device fix acquired")
	}

	if err := s.kv.Set(ctx, storage.KeyLastLocation, loc); err != nil {
		// Потеря записи не фатальна: значение останется актуальным в памяти
		// вызывающего кода до следующего запуска.
		log.WithError(err).Error("Failed to persist last known location")
	}

	return loc
}

// LastKnown возвращает сохранённую последнюю позицию. Чистое чтение,
// ничего не записывает. Второе значение false, если позиция ещё не
// сохранялась.
func (s *Service) LastKnown(ctx context.Context) (models.UserLocation, bool) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "LastKnown",
	})

	var loc models.UserLocation
	found, err := s.kv.Get(ctx, storage.KeyLastLocation, &loc)
	if err != nil {
		log.WithError(err).Error("Failed to read last known location")
		return models.UserLocation{}, false
	}
	return loc, found
}
