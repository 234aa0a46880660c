package storage

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type prefKey struct {
	userID string
	key    string
}

// MemoryStorage реализует PreferenceStorage в памяти процесса
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[prefKey]string
	logger *zap.Logger
}

// NewMemoryStorage создает новый экземпляр MemoryStorage
func NewMemoryStorage(logger *zap.Logger) *MemoryStorage {
	return &MemoryStorage{
		values: make(map[prefKey]string),
		logger: logger,
	}
}

// Get получает значение настройки пользователя
func (ms *MemoryStorage) Get(ctx context.Context, userID, key string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.values == nil {
		return "", ErrStorageClosed
	}
	value, exists := ms.values[prefKey{userID: userID, key: key}]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set сохраняет значение настройки пользователя
func (ms *MemoryStorage) Set(ctx context.Context, userID, key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.values == nil {
		return ErrStorageClosed
	}
	ms.values[prefKey{userID: userID, key: key}] = value
	return nil
}

// CheckConnection проверяет доступность хранилища
func (ms *MemoryStorage) CheckConnection(ctx context.Context) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.values == nil {
		return ErrStorageClosed
	}
	return nil
}

// Close очищает хранилище; последующие вызовы вернут ErrStorageClosed
func (ms *MemoryStorage) Close() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.values = nil
	return nil
}
