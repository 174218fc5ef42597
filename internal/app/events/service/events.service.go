package events_service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// New returns a no-op publisher when amqp is disabled.
func New(ch *amqp.Channel, cfg *config.Config, log *slog.Logger) app.EventPublisher {
	if ch == nil {
		return NoopPublisher{}
	}
	return NewAmqp(ch, cfg.Infrastructure.Amqp.Exchange, log)
}

type AmqpPublisher struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
	log      *slog.Logger
}

func NewAmqp(ch Channel, exchange string, log *slog.Logger) *AmqpPublisher {
	return &AmqpPublisher{ch: ch, exchange: exchange, log: log}
}

func (this *AmqpPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", routingKey, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         routingKey,
		Body:         body,
	}

	this.mu.Lock()
	defer this.mu.Unlock()
	if err := this.ch.PublishWithContext(ctx, this.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	this.log.Debug("event published", "event", routingKey, "exchange", this.exchange)
	return nil
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return nil
}
