package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/contracts/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const lockKey = "consent_export_retry:leader"

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquired", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("TrySetNX", ctx, lockKey, mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, token, err := NewLockService(redisRepo, zap.NewNop()).TryLock(ctx, lockKey, time.Minute)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)
	})

	t.Run("Held Elsewhere", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("TrySetNX", ctx, lockKey, mock.Anything, time.Minute).Return(false, nil)

		acquired, token, err := NewLockService(redisRepo, zap.NewNop()).TryLock(ctx, lockKey, time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("TrySetNX", ctx, lockKey, mock.Anything, time.Minute).Return(false, errors.New("down"))

		_, _, err := NewLockService(redisRepo, zap.NewNop()).TryLock(ctx, lockKey, time.Minute)
		assert.Error(t, err)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Owned Lock Released", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", ctx, lockKey).Return(`"token-1"`, nil)
		redisRepo.On("Delete", ctx, lockKey).Return(nil)

		err := NewLockService(redisRepo, zap.NewNop()).Unlock(ctx, lockKey, "token-1")

		require.NoError(t, err)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Foreign Lock Kept", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", ctx, lockKey).Return(`"token-2"`, nil)

		err := NewLockService(redisRepo, zap.NewNop()).Unlock(ctx, lockKey, "token-1")

		require.NoError(t, err)
		redisRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLockService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Owned", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", ctx, lockKey).Return(`"token-1"`, nil)
		redisRepo.On("Expire", ctx, lockKey, 2*time.Minute).Return(nil)

		err := NewLockService(redisRepo, zap.NewNop()).Refresh(ctx, lockKey, "token-1", 2*time.Minute)

		require.NoError(t, err)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Lost", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", ctx, lockKey).Return("", nil)

		err := NewLockService(redisRepo, zap.NewNop()).Refresh(ctx, lockKey, "token-1", 2*time.Minute)

		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})
}
