package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityride/nearby_discovery/internal/models"
)

func newTestScheduler(t *testing.T) *ReminderScheduler {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	r := NewReminderScheduler(time.Hour, logger)
	t.Cleanup(r.Close)
	return r
}

func TestOneShot_NextFiresOnce(t *testing.T) {
	at := time.Now().Add(time.Hour)
	s := oneShot{at: at}

	assert.Equal(t, at, s.Next(time.Now()))
	// После момента срабатывания расписание исчерпано.
	assert.True(t, s.Next(at.Add(time.Second)).IsZero())
}

func TestSchedule_FutureEventGetsID(t *testing.T) {
	r := newTestScheduler(t)

	id, err := r.Schedule(context.Background(), models.CatalogEvent{
		ID:       "e1",
		Title:    "Future Show",
		StartISO: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestSchedule_PastEventNotScheduled(t *testing.T) {
	// Время напоминания уже прошло: пустой id без ошибки.
	r := newTestScheduler(t)

	id, err := r.Schedule(context.Background(), models.CatalogEvent{
		ID:       "e1",
		Title:    "Yesterday Show",
		StartISO: time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
	})

	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSchedule_InvalidStartTime(t *testing.T) {
	r := newTestScheduler(t)

	_, err := r.Schedule(context.Background(), models.CatalogEvent{
		ID:       "e1",
		StartISO: "not-a-timestamp",
	})

	assert.Error(t, err)
}

func TestCancel_UnknownIDIsNoop(t *testing.T) {
	r := newTestScheduler(t)

	assert.NoError(t, r.Cancel(context.Background(), "missing"))
}

func TestCancel_RemovesScheduledReminder(t *testing.T) {
	r := newTestScheduler(t)

	id, err := r.Schedule(context.Background(), models.CatalogEvent{
		ID:       "e1",
		Title:    "Future Show",
		StartISO: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	require.NoError(t, r.Cancel(context.Background(), id))

	r.mu.Lock()
	_, stillTracked := r.entries[id]
	r.mu.Unlock()
	assert.False(t, stillTracked)
}
