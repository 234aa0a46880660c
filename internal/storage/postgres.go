package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresStorage реализует PreferenceStorage с использованием PostgreSQL
type PostgresStorage struct {
	sqlStorage
	logger *zap.Logger
}

var postgresQueries = sqlQueries{
	createTable: `CREATE TABLE IF NOT EXISTS preferences (` +
		`user_id VARCHAR(255) NOT NULL,` +
		`key VARCHAR(64) NOT NULL,` +
		`value TEXT NOT NULL,` +
		`updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),` +
		`PRIMARY KEY (user_id, key)` +
		`)`,
	get: "SELECT value FROM preferences WHERE user_id = $1 AND key = $2",
	upsert: "INSERT INTO preferences (user_id, key, value) VALUES ($1, $2, $3) " +
		"ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()",
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и создаёт таблицу, если её нет
func NewPostgresStorage(dsn string, logger *zap.Logger) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	ps := &PostgresStorage{
		sqlStorage: sqlStorage{db: db, queries: postgresQueries},
		logger:     logger,
	}
	if err := ps.init(context.Background()); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close DB connection after init error", zap.Error(closeErr))
		}
		return nil, err
	}

	return ps, nil
}
