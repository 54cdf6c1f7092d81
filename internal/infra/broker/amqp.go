package broker

import (
	"context"
	"log/slog"
	"sync"

	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends outbox events to a durable queue on the default exchange.
// The event kind travels as the message type; the body is the stored payload.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ shared.EventPublisher = (*AMQPPublisher)(nil)

func NewAMQPPublisher(cfg config.BrokerConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Type:         ev.Kind,
		Timestamp:    ev.CreatedAt.UTC(),
		Body:         ev.Payload,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset()
		return errs.Wrapf(err, "failed to publish %s event %s", ev.Kind, ev.ID)
	}
	return nil
}

// channel opens the connection on first use and after a failure.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open broker channel")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare queue %s", p.queue)
	}

	slog.Info("broker channel opened", "queue", p.queue)
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}
