// Package notify содержит локальный планировщик напоминаний о событиях.
// Это привязка интерфейса Notifier по умолчанию; доставка самих
// push-уведомлений остаётся за внешним коллаборатором.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/cityride/nearby_discovery/internal/models"
)

// oneShot - cron.Schedule, срабатывающий ровно один раз в момент at.
// После срабатывания Next возвращает нулевое время и cron удаляет запись.
type oneShot struct {
	at time.Time
}

func (s oneShot) Next(t time.Time) time.Time {
	if t.Before(s.at) {
		return s.at
	}
	return time.Time{}
}

// ReminderScheduler планирует одноразовые напоминания перед началом события.
type ReminderScheduler struct {
	cron   *cron.Cron
	lead   time.Duration
	logger *logrus.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func NewReminderScheduler(lead time.Duration, logger *logrus.Logger) *ReminderScheduler {
	c := cron.New()
	c.Start()
	return &ReminderScheduler{
		cron:    c,
		lead:    lead,
		logger:  logger,
		entries: make(map[string]cron.EntryID),
	}
}

// Schedule регистрирует напоминание за lead до начала события и возвращает
// его id. Для событий, чьё время напоминания уже прошло, возвращает пустой
// id без ошибки: планирование не удалось, но это не фатально.
func (r *ReminderScheduler) Schedule(_ context.Context, event models.CatalogEvent) (string, error) {
	start, err := time.Parse(time.RFC3339, event.StartISO)
	if err != nil {
		return "", fmt.Errorf("notify: invalid event start time %q: %w", event.StartISO, err)
	}

	fireAt := start.Add(-r.lead)
	if !fireAt.After(time.Now()) {
		r.logger.WithFields(logrus.Fields{
			"service":  "notify",
			"event_id": event.ID,
		}).Debug("Reminder time already passed, nothing scheduled")
		return "", nil
	}

	notificationID := uuid.NewString()
	title := event.Title
	entryID := r.cron.Schedule(oneShot{at: fireAt}, cron.FuncJob(func() {
		r.logger.WithFields(logrus.Fields{
			"service":         "notify",
			"notification_id": notificationID,
			"title":           title,
		}).Info("Reminder fired")
		r.mu.Lock()
		delete(r.entries, notificationID)
		r.mu.Unlock()
	}))

	r.mu.Lock()
	r.entries[notificationID] = entryID
	r.mu.Unlock()

	return notificationID, nil
}

// Cancel снимает запланированное напоминание. Неизвестный id не является
// ошибкой: напоминание могло уже сработать.
func (r *ReminderScheduler) Cancel(_ context.Context, notificationID string) error {
	r.mu.Lock()
	entryID, ok := r.entries[notificationID]
	if ok {
		delete(r.entries, notificationID)
	}
	r.mu.Unlock()

	if ok {
		r.cron.Remove(entryID)
	}
	return nil
}

// Close останавливает планировщик и дожидается завершения запущенных задач.
func (r *ReminderScheduler) Close() {
	<-r.cron.Stop().Done()
}
