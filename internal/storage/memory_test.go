package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMemoryStorage_Contract(t *testing.T) {
	runPreferenceStorageContract(t, NewMemoryStorage(zap.NewNop()))
}

func TestMemoryStorage_Close(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	_ = storage.Set(ctx, "user1", KeyTheme, "dark")
	assert.NoError(t, storage.Close())

	_, err := storage.Get(ctx, "user1", KeyTheme)
	assert.ErrorIs(t, err, ErrStorageClosed)
	assert.ErrorIs(t, storage.Set(ctx, "user1", KeyTheme, "light"), ErrStorageClosed)
	assert.ErrorIs(t, storage.CheckConnection(ctx), ErrStorageClosed)
}
