package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityride/nearby_discovery/internal/models"
)

func TestSeedEvents_Wellformed(t *testing.T) {
	events := NewStore().All()
	require.NotEmpty(t, events)

	validCategories := make(map[models.EventCategory]struct{}, len(models.Categories))
	for _, c := range models.Categories {
		validCategories[c] = struct{}{}
	}

	seen := make(map[string]struct{}, len(events))
	for _, ev := range events {
		// Уникальные стабильные id
		_, dup := seen[ev.ID]
		assert.False(t, dup, "duplicate id %s", ev.ID)
		seen[ev.ID] = struct{}{}

		_, ok := validCategories[ev.Category]
		assert.True(t, ok, "unknown category %q for %s", ev.Category, ev.ID)

		// startISO <= endISO, обе метки парсятся как RFC3339
		start, err := time.Parse(time.RFC3339, ev.StartISO)
		require.NoError(t, err, ev.ID)
		end, err := time.Parse(time.RFC3339, ev.EndISO)
		require.NoError(t, err, ev.ID)
		assert.False(t, end.Before(start), "end before start for %s", ev.ID)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	store := NewStore()

	first := store.All()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", store.All()[0].Title)
}
