package storage

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteStorage реализует PreferenceStorage поверх файла SQLite
type SQLiteStorage struct {
	sqlStorage
	logger *zap.Logger
}

var sqliteQueries = sqlQueries{
	createTable: `CREATE TABLE IF NOT EXISTS preferences (
		user_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, key)
	)`,
	get: "SELECT value FROM preferences WHERE user_id = ? AND key = ?",
	upsert: "INSERT INTO preferences (user_id, key, value) VALUES (?, ?, ?) " +
		"ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
}

// NewSQLiteStorage открывает (или создаёт) базу SQLite по пути path
func NewSQLiteStorage(path string, logger *zap.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open error: %w", err)
	}
	// SQLite не любит параллельных писателей
	db.SetMaxOpenConns(1)

	ss := &SQLiteStorage{
		sqlStorage: sqlStorage{db: db, queries: sqliteQueries},
		logger:     logger,
	}
	if err := ss.init(context.Background()); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close sqlite after init error", zap.Error(closeErr))
		}
		return nil, err
	}

	return ss, nil
}
