package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	args := m.Called(ctx, key, exp)
	return args.Error(0)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}
