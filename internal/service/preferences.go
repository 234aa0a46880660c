package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/InQaaaaGit/countries.git/internal/storage"
	"go.uber.org/zap"
)

// PreferenceService управляет темой и избранным пользователя поверх хранилища настроек.
// Каждая операция toggle выполняет чтение-изменение-запись без блокировки.
type PreferenceService struct {
	storage storage.PreferenceStorage
	logger  *zap.Logger
}

// NewPreferenceService создает сервис настроек
func NewPreferenceService(s storage.PreferenceStorage, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{storage: s, logger: logger}
}

// Theme возвращает сохранённую тему; по умолчанию светлая
func (s *PreferenceService) Theme(ctx context.Context, userID string) (models.Theme, error) {
	value, err := s.storage.Get(ctx, userID, storage.KeyTheme)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return models.ThemeLight, nil
		}
		return models.ThemeLight, fmt.Errorf("error reading theme: %w", err)
	}
	if models.Theme(value) == models.ThemeDark {
		return models.ThemeDark, nil
	}
	return models.ThemeLight, nil
}

// ToggleTheme переключает тему и сохраняет новое значение
func (s *PreferenceService) ToggleTheme(ctx context.Context, userID string) (models.Theme, error) {
	current, err := s.Theme(ctx, userID)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.storage.Set(ctx, userID, storage.KeyTheme, string(next)); err != nil {
		return current, fmt.Errorf("error saving theme: %w", err)
	}
	return next, nil
}

// Favorites возвращает список избранного. Повреждённое значение трактуется как пустой список.
func (s *PreferenceService) Favorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	value, err := s.storage.Get(ctx, userID, storage.KeyFavorites)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Favorite{}, nil
		}
		return nil, fmt.Errorf("error reading favorites: %w", err)
	}

	var favorites []models.Favorite
	if err := json.Unmarshal([]byte(value), &favorites); err != nil {
		s.logger.Warn("Corrupted favorites value, treating as empty",
			zap.String("user_id", userID), zap.Error(err))
		return []models.Favorite{}, nil
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}

// IsFavorite проверяет наличие страны в избранном по имени
func (s *PreferenceService) IsFavorite(ctx context.Context, userID, name string) (bool, error) {
	favorites, err := s.Favorites(ctx, userID)
	if err != nil {
		return false, err
	}
	return containsFavorite(favorites, name), nil
}

// ToggleFavorite добавляет страну в избранное или удаляет её оттуда.
// Возвращает новое состояние: true, если страна теперь в избранном.
func (s *PreferenceService) ToggleFavorite(ctx context.Context, userID, name string) (bool, error) {
	if name == "" {
		return false, ErrNameRequired
	}

	favorites, err := s.Favorites(ctx, userID)
	if err != nil {
		return false, err
	}

	var active bool
	if containsFavorite(favorites, name) {
		favorites = removeFavorite(favorites, name)
	} else {
		favorites = append(favorites, models.Favorite{Name: name})
		active = true
	}

	data, err := json.Marshal(favorites)
	if err != nil {
		return false, fmt.Errorf("error marshaling favorites: %w", err)
	}
	if err := s.storage.Set(ctx, userID, storage.KeyFavorites, string(data)); err != nil {
		return false, fmt.Errorf("error saving favorites: %w", err)
	}

	s.logger.Info("Favorite toggled",
		zap.String("user_id", userID),
		zap.String("country", name),
		zap.Bool("active", active))
	return active, nil
}

// CheckConnection проверяет доступность хранилища настроек
func (s *PreferenceService) CheckConnection(ctx context.Context) error {
	return s.storage.CheckConnection(ctx)
}

func containsFavorite(favorites []models.Favorite, name string) bool {
	for _, f := range favorites {
		if f.Name == name {
			return true
		}
	}
	return false
}

// removeFavorite удаляет все записи с таким именем
func removeFavorite(favorites []models.Favorite, name string) []models.Favorite {
	kept := make([]models.Favorite, 0, len(favorites))
	for _, f := range favorites {
		if f.Name != name {
			kept = append(kept, f)
		}
	}
	return kept
}
