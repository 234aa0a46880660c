package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPreferenceStorageContract проверяет поведение, общее для всех реализаций
func runPreferenceStorageContract(t *testing.T, s PreferenceStorage) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "nobody", KeyTheme)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "user1", KeyTheme, "dark"))
		value, err := s.Get(ctx, "user1", KeyTheme)
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "user1", KeyFavorites, `[{"name":"Brazil"}]`))
		require.NoError(t, s.Set(ctx, "user1", KeyFavorites, `[]`))
		value, err := s.Get(ctx, "user1", KeyFavorites)
		require.NoError(t, err)
		assert.Equal(t, `[]`, value)
	})

	t.Run("users are isolated", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "user2", KeyTheme, "light"))
		value, err := s.Get(ctx, "user1", KeyTheme)
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, s.Set(ctx, fmt.Sprintf("user-%d", i), KeyTheme, "dark"))
			}(i)
		}
		wg.Wait()

		for i := 0; i < 20; i++ {
			value, err := s.Get(ctx, fmt.Sprintf("user-%d", i), KeyTheme)
			require.NoError(t, err)
			assert.Equal(t, "dark", value)
		}
	})

	t.Run("check connection", func(t *testing.T) {
		assert.NoError(t, s.CheckConnection(ctx))
	})
}
