// Package storage предоставляет хранилища пользовательских настроек (тема, избранное).
// Значения хранятся как строки по паре (userID, key), формат значения определяет вызывающий код.
package storage

import "context"

const (
	// KeyTheme ключ сохранённой темы оформления
	KeyTheme = "theme"
	// KeyFavorites ключ JSON-списка избранных стран
	KeyFavorites = "favorites"
)

// PreferenceStorage интерфейс key-value хранилища настроек пользователя.
// Операции чтения-изменения-записи не атомарны: два параллельных запроса
// одного пользователя могут потерять обновление.
type PreferenceStorage interface {
	// Get возвращает значение или ErrKeyNotFound
	Get(ctx context.Context, userID, key string) (string, error)

	// Set сохраняет значение, перезаписывая предыдущее
	Set(ctx context.Context, userID, key, value string) error

	// CheckConnection проверяет доступность хранилища
	CheckConnection(ctx context.Context) error

	// Close освобождает ресурсы хранилища
	Close() error
}
