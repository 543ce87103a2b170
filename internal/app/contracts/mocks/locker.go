package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}
