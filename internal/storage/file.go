package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PreferenceRecord запись файла настроек
type PreferenceRecord struct {
	UUID   string `json:"uuid"`
	UserID string `json:"user_id"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// FileStorage реализует PreferenceStorage поверх файла JSON lines, в который только дописывают.
// При загрузке действует последняя запись для пары (пользователь, ключ).
type FileStorage struct {
	filePath string
	values   map[prefKey]PreferenceRecord
	appended int
	mutex    sync.RWMutex
	file     *os.File
	logger   *zap.Logger
}

// NewFileStorage открывает файл настроек. Если хвост файла повреждён, файл
// перезаписывается только прочитанными записями, чтобы новые записи не оказались за мусором.
func NewFileStorage(filePath string, logger *zap.Logger) (*FileStorage, error) {
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	fs := &FileStorage{
		filePath: filePath,
		file:     file,
		values:   make(map[prefKey]PreferenceRecord),
		logger:   logger,
	}

	if err := fs.loadFromFile(); err != nil {
		logger.Error("Error loading preferences from file, dropping corrupted tail", zap.Error(err))
		if err := fs.rewriteFile(); err != nil {
			if fs.file != nil {
				_ = fs.file.Close()
			}
			return nil, fmt.Errorf("error repairing preferences file: %w", err)
		}
	}

	return fs, nil
}

// loadFromFile читает записи из файла в память
func (fs *FileStorage) loadFromFile() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, err := fs.file.Seek(0, 0); err != nil {
		return fmt.Errorf("error seeking to file start: %w", err)
	}

	decoder := json.NewDecoder(fs.file)
	for decoder.More() {
		var record PreferenceRecord
		if err := decoder.Decode(&record); err != nil {
			return fmt.Errorf("error decoding record: %w", err)
		}
		fs.values[prefKey{userID: record.UserID, key: record.Key}] = record
		fs.appended++
	}

	return nil
}

// Get получает значение настройки пользователя
func (fs *FileStorage) Get(ctx context.Context, userID, key string) (string, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	if record, exists := fs.values[prefKey{userID: userID, key: key}]; exists {
		return record.Value, nil
	}
	return "", ErrKeyNotFound
}

// Set дописывает запись в файл и обновляет состояние в памяти
func (fs *FileStorage) Set(ctx context.Context, userID, key, value string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if fs.file == nil {
		return ErrStorageClosed
	}

	record := PreferenceRecord{
		UUID:   uuid.NewString(),
		UserID: userID,
		Key:    key,
		Value:  value,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling preference record: %w", err)
	}

	if _, err := fs.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	fs.values[prefKey{userID: userID, key: key}] = record
	fs.appended++
	return nil
}

// Compact перезаписывает файл, оставляя только актуальную запись для каждого ключа
func (fs *FileStorage) Compact() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if fs.file == nil {
		return ErrStorageClosed
	}
	if err := fs.rewriteFile(); err != nil {
		return fmt.Errorf("error compacting file: %w", err)
	}

	fs.logger.Info("Preferences file compacted",
		zap.String("path", fs.filePath),
		zap.Int("records", len(fs.values)))
	return nil
}

// rewriteFile перезаписывает файл с текущими данными из памяти
func (fs *FileStorage) rewriteFile() error {
	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}

	file, err := os.OpenFile(fs.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening file for rewrite: %w", err)
	}

	for _, record := range fs.values {
		data, err := json.Marshal(record)
		if err != nil {
			file.Close()
			return fmt.Errorf("error marshaling record: %w", err)
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			file.Close()
			return fmt.Errorf("error writing record: %w", err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing rewritten file: %w", err)
	}

	fs.file, err = os.OpenFile(fs.filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("error reopening file: %w", err)
	}
	fs.appended = len(fs.values)

	return nil
}

// CheckConnection проверяет доступность файла
func (fs *FileStorage) CheckConnection(ctx context.Context) error {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	if fs.file == nil {
		return fmt.Errorf("file is not open")
	}
	return nil
}

// Close закрывает файл. Если в файле накопились перезаписанные значения, он предварительно сжимается.
func (fs *FileStorage) Close() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if fs.file == nil {
		return nil
	}

	if fs.appended > len(fs.values) {
		if err := fs.rewriteFile(); err != nil {
			fs.logger.Error("Error compacting file before close", zap.Error(err))
		}
	}

	if err := fs.file.Sync(); err != nil {
		fs.logger.Error("Error syncing file before close", zap.Error(err))
	}
	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	fs.file = nil

	return nil
}
