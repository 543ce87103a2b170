package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Persistent JSON Message", func(t *testing.T) {
		channel := new(MockChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "consent_exports", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		publisher := newPublisher(channel, "consent_exports", zap.NewNop())
		err := publisher.Publish(ctx, constvars.ConsentSubmissionExportedEvent, map[string]string{"submission_id": "s1"})

		require.NoError(t, err)
		channel.AssertExpectations(t)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)
		assert.Equal(t, "req-1", published.Headers["request_id"])

		var body struct {
			Type    string            `json:"type"`
			Payload map[string]string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(published.Body, &body))
		assert.Equal(t, constvars.ConsentSubmissionExportedEvent, body.Type)
		assert.Equal(t, "s1", body.Payload["submission_id"])
	})

	t.Run("Broker Failure", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, "", "consent_exports", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		publisher := newPublisher(channel, "consent_exports", zap.NewNop())
		err := publisher.Publish(ctx, constvars.ConsentSubmissionExportedEvent, nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "consent_exports")
	})
}
