package storage

import "context"

// Ключи хранилища, используемые движком. Каждое значение читается и
// записывается целиком, частичных обновлений нет.
const (
	KeyLastLocation  = "nearby:last_location"
	KeyInterested    = "nearby:interested_events"
	KeyNotInterested = "nearby:not_interested_events"
	KeyUserPrefs     = "nearby:user_prefs"
)

// KV определяет контракт для долговременного key-value хранилища.
// Значения сериализуются в JSON; запись атомарна в пределах одного ключа.
type KV interface {
	// Get десериализует значение ключа в dest. Возвращает false, если ключ
	// отсутствует; dest при этом не изменяется.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set сериализует value и записывает его под ключом целиком.
	Set(ctx context.Context, key string, value any) error
	// Delete удаляет ключ. Отсутствие ключа не является ошибкой.
	Delete(ctx context.Context, key string) error
}
