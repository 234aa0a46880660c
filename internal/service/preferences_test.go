package service

import (
	"context"
	"testing"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/InQaaaaGit/countries.git/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPreferences(t *testing.T) (*PreferenceService, *storage.MemoryStorage) {
	t.Helper()
	s := storage.NewMemoryStorage(zap.NewNop())
	t.Cleanup(func() { _ = s.Close() })
	return NewPreferenceService(s, zap.NewNop()), s
}

func TestPreferenceService_Theme(t *testing.T) {
	ctx := context.Background()
	prefs, s := newTestPreferences(t)

	// Без сохранённого значения тема светлая
	theme, err := prefs.Theme(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	next, err := prefs.ToggleTheme(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, next)

	stored, err := s.Get(ctx, "user-1", storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	next, err = prefs.ToggleTheme(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, next)

	// Другой пользователь не затронут
	theme, err = prefs.Theme(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestPreferenceService_ThemeUnknownValue(t *testing.T) {
	ctx := context.Background()
	prefs, s := newTestPreferences(t)
	require.NoError(t, s.Set(ctx, "user-1", storage.KeyTheme, "purple"))

	theme, err := prefs.Theme(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestPreferenceService_ToggleFavoriteTwiceRestores(t *testing.T) {
	ctx := context.Background()
	prefs, _ := newTestPreferences(t)

	names := []string{"Brazil", "Côte d'Ivoire", "Japan"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			before, err := prefs.Favorites(ctx, "user-1")
			require.NoError(t, err)

			active, err := prefs.ToggleFavorite(ctx, "user-1", name)
			require.NoError(t, err)
			assert.True(t, active)

			isFav, err := prefs.IsFavorite(ctx, "user-1", name)
			require.NoError(t, err)
			assert.True(t, isFav)

			active, err = prefs.ToggleFavorite(ctx, "user-1", name)
			require.NoError(t, err)
			assert.False(t, active)

			after, err := prefs.Favorites(ctx, "user-1")
			require.NoError(t, err)
			assert.ElementsMatch(t, before, after)
		})
	}
}

func TestPreferenceService_FavoritesStoredAsJSON(t *testing.T) {
	ctx := context.Background()
	prefs, s := newTestPreferences(t)

	_, err := prefs.ToggleFavorite(ctx, "user-1", "Brazil")
	require.NoError(t, err)
	_, err = prefs.ToggleFavorite(ctx, "user-1", "Peru")
	require.NoError(t, err)

	stored, err := s.Get(ctx, "user-1", storage.KeyFavorites)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Brazil"},{"name":"Peru"}]`, stored)
}

func TestPreferenceService_RemovesAllDuplicates(t *testing.T) {
	ctx := context.Background()
	prefs, s := newTestPreferences(t)
	require.NoError(t, s.Set(ctx, "user-1", storage.KeyFavorites,
		`[{"name":"Brazil"},{"name":"Peru"},{"name":"Brazil"}]`))

	active, err := prefs.ToggleFavorite(ctx, "user-1", "Brazil")
	require.NoError(t, err)
	assert.False(t, active)

	favorites, err := prefs.Favorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []models.Favorite{{Name: "Peru"}}, favorites)
}

func TestPreferenceService_CorruptedFavorites(t *testing.T) {
	ctx := context.Background()
	prefs, s := newTestPreferences(t)
	require.NoError(t, s.Set(ctx, "user-1", storage.KeyFavorites, "{not json"))

	favorites, err := prefs.Favorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// Повреждённое значение перезаписывается при следующем переключении
	active, err := prefs.ToggleFavorite(ctx, "user-1", "Chile")
	require.NoError(t, err)
	assert.True(t, active)

	favorites, err = prefs.Favorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []models.Favorite{{Name: "Chile"}}, favorites)
}

func TestPreferenceService_NullFavorites(t *testing.T) {
	ctx := context.Background()
	prefs, s := newTestPreferences(t)
	require.NoError(t, s.Set(ctx, "user-1", storage.KeyFavorites, "null"))

	favorites, err := prefs.Favorites(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestPreferenceService_EmptyName(t *testing.T) {
	prefs, _ := newTestPreferences(t)

	_, err := prefs.ToggleFavorite(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestPreferenceService_StorageErrors(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceService(failingStorage{}, zap.NewNop())

	_, err := prefs.Theme(ctx, "user-1")
	assert.ErrorIs(t, err, errStorageDown)

	_, err = prefs.ToggleTheme(ctx, "user-1")
	assert.ErrorIs(t, err, errStorageDown)

	_, err = prefs.Favorites(ctx, "user-1")
	assert.ErrorIs(t, err, errStorageDown)

	_, err = prefs.ToggleFavorite(ctx, "user-1", "Brazil")
	assert.ErrorIs(t, err, errStorageDown)

	assert.ErrorIs(t, prefs.CheckConnection(ctx), errStorageDown)
}
