package events

import (
	"context"
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Publisher announces committed domain changes to other systems.
type Publisher interface {
	PublishTransactionRecorded(ctx context.Context, transaction *models.Transaction) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishTransactionRecorded(context.Context, *models.Transaction) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }

// channel is the subset of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn           *amqp091.Connection
	channel        channel
	exchangeName   string
	queueName      string
	publishTimeout time.Duration
	logger         zerolog.Logger
	now            func() time.Time
}

// NewAMQPPublisher dials the broker and declares a durable direct exchange
// with one queue bound under the queue's name.
func NewAMQPPublisher(url, exchangeName, queueName string, publishTimeout time.Duration, logger zerolog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisherWithChannel(ch, exchangeName, queueName, publishTimeout, logger)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

func newPublisherWithChannel(ch channel, exchangeName, queueName string, publishTimeout time.Duration, logger zerolog.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		channel:        ch,
		exchangeName:   exchangeName,
		queueName:      queueName,
		publishTimeout: publishTimeout,
		logger:         logger.With().Str("component", "events").Logger(),
		now:            time.Now,
	}

	if err := p.setup(); err != nil {
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *AMQPPublisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := p.channel.QueueDeclare(p.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// routing key is the queue name
	if err := p.channel.QueueBind(p.queueName, p.queueName, p.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) PublishTransactionRecorded(ctx context.Context, transaction *models.Transaction) error {
	now := p.now()
	msg := NewTransactionRecordedMessage(transaction, now)
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchangeName, p.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    now,
		Type:         TypeTransactionRecorded,
		MessageId:    transaction.ID.String(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.logger.Debug().
		Str("transaction_id", transaction.ID.String()).
		Str("exchange", p.exchangeName).
		Str("queue", p.queueName).
		Msg("published transaction event")

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
