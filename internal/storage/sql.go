package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// sqlQueries набор запросов, отличающихся между диалектами
type sqlQueries struct {
	createTable string
	get         string
	upsert      string
}

// sqlStorage общая реализация PreferenceStorage поверх database/sql
type sqlStorage struct {
	db      *sql.DB
	queries sqlQueries
}

func (s *sqlStorage) init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection check error: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.queries.createTable); err != nil {
		return fmt.Errorf("table creation error: %w", err)
	}
	return nil
}

// Get получает значение настройки пользователя
func (s *sqlStorage) Get(ctx context.Context, userID, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.queries.get, userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("get preference error: %w", err)
	}
	return value, nil
}

// Set сохраняет значение настройки пользователя (upsert)
func (s *sqlStorage) Set(ctx context.Context, userID, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.queries.upsert, userID, key, value); err != nil {
		return fmt.Errorf("save preference error: %w", err)
	}
	return nil
}

// CheckConnection проверяет соединение с базой данных
func (s *sqlStorage) CheckConnection(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close закрывает соединение с базой данных
func (s *sqlStorage) Close() error {
	return s.db.Close()
}
