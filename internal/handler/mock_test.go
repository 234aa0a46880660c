package handler

import (
	"context"
	"errors"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/InQaaaaGit/countries.git/internal/view"
)

// mockController реализует интерфейс CountryController для тестов
type mockController struct {
	homeFunc            func(ctx context.Context, userID, region, query string) (view.Page, error)
	detailFunc          func(ctx context.Context, userID, name string) (view.Page, error)
	toggleFavoriteFunc  func(ctx context.Context, userID, name string) (bool, error)
	toggleThemeFunc     func(ctx context.Context, userID string) (models.Theme, error)
	favoritesFunc       func(ctx context.Context, userID string) ([]models.Favorite, error)
	checkConnectionFunc func(ctx context.Context) error
}

func (m *mockController) Home(ctx context.Context, userID, region, query string) (view.Page, error) {
	if m.homeFunc != nil {
		return m.homeFunc(ctx, userID, region, query)
	}
	return view.Page{}, errors.New("not implemented")
}

func (m *mockController) Detail(ctx context.Context, userID, name string) (view.Page, error) {
	if m.detailFunc != nil {
		return m.detailFunc(ctx, userID, name)
	}
	return view.Page{}, errors.New("not implemented")
}

func (m *mockController) ToggleFavorite(ctx context.Context, userID, name string) (bool, error) {
	if m.toggleFavoriteFunc != nil {
		return m.toggleFavoriteFunc(ctx, userID, name)
	}
	return false, errors.New("not implemented")
}

func (m *mockController) ToggleTheme(ctx context.Context, userID string) (models.Theme, error) {
	if m.toggleThemeFunc != nil {
		return m.toggleThemeFunc(ctx, userID)
	}
	return models.ThemeLight, errors.New("not implemented")
}

func (m *mockController) Favorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	if m.favoritesFunc != nil {
		return m.favoritesFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockController) CheckConnection(ctx context.Context) error {
	if m.checkConnectionFunc != nil {
		return m.checkConnectionFunc(ctx)
	}
	return errors.New("not implemented")
}
