package interest

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cityride/nearby_discovery/internal/models"
	"github.com/cityride/nearby_discovery/internal/storage"
)

// Notifier определяет контракт планировщика локальных напоминаний.
// Пустой id при nil-ошибке означает, что планирование не удалось;
// это фиксируется, но не фатально.
type Notifier interface {
	Schedule(ctx context.Context, event models.CatalogEvent) (string, error)
	Cancel(ctx context.Context, notificationID string) error
}

// Service - машина состояний интереса пользователя к событиям.
// Для каждого id события хранится одно из трёх состояний: нейтральное,
// interested или not_interested. Инвариант: id находится не более чем
// в одном из двух множеств.
//
// Все мутации сериализуются одним мьютексом (single writer), поэтому
// порядок планирования/отмены уведомлений совпадает с порядком вызовов.
type Service struct {
	kv       storage.KV
	notifier Notifier
	logger   *logrus.Logger

	mu            sync.Mutex
	interested    []models.InterestedEvent
	notInterested []string
}

func NewService(ctx context.Context, kv storage.KV, notifier Notifier, logger *logrus.Logger) *Service {
	s := &Service{
		kv:       kv,
		notifier: notifier,
		logger:   logger,
	}
	s.load(ctx)
	return s
}

// load восстанавливает оба множества из хранилища. Сбой чтения не фатален:
// сервис стартует с пустым состоянием.
func (s *Service) load(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "interest",
		"method":  "load",
	})

	if _, err := s.kv.Get(ctx, storage.KeyInterested, &s.interested); err != nil {
		log.WithError(err).Error("Failed to load interested events, starting empty")
	}
	if _, err := s.kv.Get(ctx, storage.KeyNotInterested, &s.notInterested); err != nil {
		log.WithError(err).Error("Failed to load not-interested set, starting empty")
	}
}

// MarkInterested переводит событие в состояние interested. Повторный вызов
// для уже отмеченного события - no-op: запись не дублируется и второе
// уведомление не планируется.
func (s *Service) MarkInterested(ctx context.Context, event models.CatalogEvent) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "interest",
		"method":   "MarkInterested",
		"event_id": event.ID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findInterested(event.ID) >= 0 {
		log.Debug("Event already marked interested, ignoring")
		return
	}

	record := models.InterestedEvent{
		CatalogEventID: event.ID,
		InterestedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	notificationID, err := s.notifier.Schedule(ctx, event)
	if err != nil {
		log.WithError(err).Warn("Failed to schedule reminder, recording without notification")
	} else if notificationID != "" {
		record.NotificationScheduled = true
		record.NotificationID = notificationID
	}

	s.interested = append(s.interested, record)
	s.removeNotInterested(event.ID)
	s.persist(ctx, log)

	log.WithField("notification_scheduled", record.NotificationScheduled).Info("Event marked interested")
}

// MarkNotInterested переводит событие в состояние not_interested. Если для
// события была запись interested, её уведомление отменяется best-effort:
// сбой отмены не блокирует смену состояния.
func (s *Service) MarkNotInterested(ctx context.Context, eventID string) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "interest",
		"method":   "MarkNotInterested",
		"event_id": eventID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAndRemoveInterested(ctx, eventID, log)

	if !s.containsNotInterested(eventID) {
		s.notInterested = append(s.notInterested, eventID)
	}
	s.persist(ctx, log)

	log.Info("Event marked not interested")
}

// RemoveInterest возвращает событие в нейтральное состояние: отменяет
// запланированное уведомление и убирает id из обоих множеств. Единственная
// операция, ведущая обратно в neutral.
func (s *Service) RemoveInterest(ctx context.Context, eventID string) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "interest",
		"method":   "RemoveInterest",
		"event_id": eventID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAndRemoveInterested(ctx, eventID, log)
	s.removeNotInterested(eventID)
	s.persist(ctx, log)

	log.Info("Interest state cleared")
}

// StatusOf возвращает текущее состояние интереса; nil-аналогом нейтрального
// состояния служит пустая строка. Interested проверяется первым: это
// защищает от нарушения инварианта дизъюнктности выше по стеку.
func (s *Service) StatusOf(eventID string) models.InterestStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findInterested(eventID) >= 0 {
		return models.StatusInterested
	}
	if s.containsNotInterested(eventID) {
		return models.StatusNotInterested
	}
	return ""
}

// Interested возвращает копию списка записей interested.
func (s *Service) Interested() []models.InterestedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InterestedEvent, len(s.interested))
	copy(out, s.interested)
	return out
}

// NotInterested возвращает копию множества not_interested.
func (s *Service) NotInterested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.notInterested))
	copy(out, s.notInterested)
	return out
}

// cancelAndRemoveInterested отменяет уведомление существующей записи
// interested (если есть) и удаляет запись. Вызывается под мьютексом.
func (s *Service) cancelAndRemoveInterested(ctx context.Context, eventID string, log *logrus.Entry) {
	idx := s.findInterested(eventID)
	if idx < 0 {
		return
	}

	record := s.interested[idx]
	if record.NotificationScheduled && record.NotificationID != "" {
		if err := s.notifier.Cancel(ctx, record.NotificationID); err != nil {
			log.WithError(err).Warn("Failed to cancel reminder, removing record anyway")
		}
	}
	s.interested = append(s.interested[:idx], s.interested[idx+1:]...)
}

// persist записывает оба множества в хранилище. Запись best-effort:
// сбой логируется, состояние в памяти остаётся авторитетным.
func (s *Service) persist(ctx context.Context, log *logrus.Entry) {
	if err := s.kv.Set(ctx, storage.KeyInterested, s.interested); err != nil {
		log.WithError(err).Error("Failed to persist interested events")
	}
	if err := s.kv.Set(ctx, storage.KeyNotInterested, s.notInterested); err != nil {
		log.WithError(err).Error("Failed to persist not-interested set")
	}
}

func (s *Service) findInterested(eventID string) int {
	for i, rec := range s.interested {
		if rec.CatalogEventID == eventID {
			return i
		}
	}
	return -1
}

func (s *Service) containsNotInterested(eventID string) bool {
	for _, id := range s.notInterested {
		if id == eventID {
			return true
		}
	}
	return false
}

func (s *Service) removeNotInterested(eventID string) {
	for i, id := range s.notInterested {
		if id == eventID {
			s.notInterested = append(s.notInterested[:i], s.notInterested[i+1:]...)
			return
		}
	}
}
