package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MessagePublisher struct {
	mock.Mock
}

func (m *MessagePublisher) Publish(ctx context.Context, messageType string, payload interface{}) error {
	args := m.Called(ctx, messageType, payload)
	return args.Error(0)
}

func (m *MessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
