package geo

import "time"

const (
	// Бамп за вечерний час пик: местный час начала события в [17, 20].
	eveningRushBump = 0.3
	// Безусловный бамп за день события.
	eventDayBump = 0.5
)

// venueMultipliers - фиксированная таблица множителей площадок.
// Площадки, отсутствующие в таблице, получают множитель 1.
var venueMultipliers = map[string]float64{
	"Rocket Mortgage FieldHouse": 1.8,
	"Progressive Field":          1.7,
	"Huntington Bank Field":      1.9,
	"Playhouse Square":           1.4,
	"Jacobs Pavilion":            1.3,
	"House of Blues Cleveland":   1.3,
	"Grog Shop":                  1.1,
	"Cleveland Public Hall":      1.2,
}

// ExpectedSurge возвращает детерминированную оценку ценового давления для
// события на площадке venue с началом в startISO (ISO-8601). Это
// презентационная эвристика, воспроизводимая только из входных данных:
// никакой случайности и внешних вызовов.
func ExpectedSurge(venue, startISO string) float64 {
	multiplier := 1.0
	if m, ok := venueMultipliers[venue]; ok {
		multiplier = m
	}

	timeOfDayBump := 0.0
	if t, err := time.Parse(time.RFC3339, startISO); err == nil {
		if hour := t.Hour(); hour >= 17 && hour <= 20 {
			timeOfDayBump = eveningRushBump
		}
	}

	return 1 + (multiplier - 1) + timeOfDayBump + eventDayBump
}
