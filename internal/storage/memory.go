package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryKV - реализация KV в памяти. Используется в тестах и как бэкенд
// по умолчанию, когда долговременное хранилище не сконфигурировано.
// Значения проходят через JSON, чтобы семантика совпадала с другими бэкендами.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (s *MemoryKV) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	val, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value of key %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryKV) Set(_ context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = val
	s.mu.Unlock()
	return nil
}

func (s *MemoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
