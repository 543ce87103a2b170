package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the part of *amqp091.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitMQPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
	// publishing on one channel from several goroutines interleaves frames
	mu sync.Mutex
}

// NewRabbitMQPublisher opens a channel and declares queue as durable.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MessagePublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return newPublisher(channel, queue, logger), nil
}

func newPublisher(channel amqpChannel, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, messageType string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)

	event := requests.EventMessage{
		MessageID:  uuid.NewString(),
		Type:       messageType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     messageType,
		"requeue_strategy": "DROP",
	}
	if requestID != "" {
		headers["request_id"] = requestID
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.MessageID,
		Type:         messageType,
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.Publish message published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
		zap.String("message_type", messageType),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.Channel.Close()
}
