package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"

	"github.com/cityride/nearby_discovery/internal/config"
	"github.com/cityride/nearby_discovery/internal/discovery"
	"github.com/cityride/nearby_discovery/internal/engine"
	"github.com/cityride/nearby_discovery/internal/models"
	"github.com/cityride/nearby_discovery/internal/notify"
	"github.com/cityride/nearby_discovery/internal/storage"
	"github.com/cityride/nearby_discovery/pkg/logger"
	"github.com/cityride/nearby_discovery/pkg/postgres"
	redisclient "github.com/cityride/nearby_discovery/pkg/redis"
)

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// envLocator отдаёт координаты из переменных окружения DEVICE_LATITUDE /
// DEVICE_LONGITUDE; их отсутствие трактуется как отказ в доступе к геолокации.
type envLocator struct{}

func (envLocator) Current(_ context.Context) (models.GeoPoint, error) {
	lat, latErr := strconv.ParseFloat(os.Getenv("DEVICE_LATITUDE"), 64)
	lng, lngErr := strconv.ParseFloat(os.Getenv("DEVICE_LONGITUDE"), 64)
	if latErr != nil || lngErr != nil {
		return models.GeoPoint{}, fmt.Errorf("device coordinates not provided")
	}
	return models.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// emptySource используется, когда внешний провайдер не сконфигурирован:
// каждое обновление приносит пустой набор, работает только каталог.
type emptySource struct{}

func (emptySource) Search(_ context.Context, _ models.NearbyFilters) ([]models.CatalogEvent, error) {
	return nil, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Выбор бэкенда хранилища
	var kv storage.KV
	closer := func() {}
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		closer = dbpool.Close
		kv = storage.NewPostgresKV(dbpool)
		log.Info("Successfully connected to PostgreSQL")
	case config.BackendRedis:
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		closer = func() { _ = redisClient.Close() }
		kv = storage.NewRedisKV(redisClient)
		log.Info("Successfully connected to Redis")
	default:
		kv = storage.NewMemoryKV()
		log.Warn("Using in-memory storage, state will not survive restart")
	}

	// Источник обнаружения
	var source discovery.Source = emptySource{}
	if cfg.DiscoveryBaseURL != "" {
		source = discovery.NewHTTPSource(cfg.DiscoveryBaseURL, cfg.DiscoveryTimeout)
	}

	// Планировщик напоминаний
	reminders := notify.NewReminderScheduler(cfg.ReminderLead, log)
	defer reminders.Close()

	eng := engine.New(ctx, cfg, log, kv, envLocator{}, source, reminders, closer)
	defer eng.Close()

	// Одноразовый прогон: позиция -> обновление -> ранжированная выдача.
	now := time.Now().UTC()
	filters := models.NearbyFilters{
		Category:  models.CategoryAll,
		Distance:  25,
		StartDate: now.Format(time.RFC3339),
		EndDate:   now.AddDate(0, 3, 0).Format(time.RFC3339),
		Sort:      models.SortSoonest,
	}

	results, err := eng.Nearby(ctx, filters)
	if err != nil {
		log.Fatalf("Nearby query failed: %v", err)
	}

	loc, _ := eng.Location.LastKnown(ctx)
	log.WithFields(logrus.Fields{
		"granted": loc.Granted,
		"count":   len(results),
	}).Info("Nearby events")
	for _, ev := range results {
		fmt.Printf("%-40s %-12s %6.1f mi  surge %.1fx  %s\n",
			ev.Title, ev.Category, ev.Distance, ev.ExpectedSurge, ev.StartISO)
	}
}
