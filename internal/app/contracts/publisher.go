package contracts

import "context"

type MessagePublisher interface {
	Publish(ctx context.Context, messageType string, payload interface{}) error
	Close() error
}
