package storage

import (
	"fmt"

	"github.com/InQaaaaGit/countries.git/internal/config"
	"go.uber.org/zap"
)

// New выбирает реализацию хранилища по конфигурации.
// Приоритет: PostgreSQL, SQLite, файл, память.
func New(cfg *config.Config, logger *zap.Logger) (PreferenceStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		logger.Info("Using PostgreSQL preference storage")
		ps, err := NewPostgresStorage(cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating postgres storage: %w", err)
		}
		return ps, nil
	case cfg.SQLitePath != "":
		logger.Info("Using SQLite preference storage", zap.String("path", cfg.SQLitePath))
		ss, err := NewSQLiteStorage(cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating sqlite storage: %w", err)
		}
		return ss, nil
	case cfg.FileStoragePath != "":
		logger.Info("Using file preference storage", zap.String("path", cfg.FileStoragePath))
		fs, err := NewFileStorage(cfg.FileStoragePath, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating file storage: %w", err)
		}
		return fs, nil
	default:
		logger.Info("Using in-memory preference storage")
		return NewMemoryStorage(logger), nil
	}
}
