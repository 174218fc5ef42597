package rabbitmq_client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/excel-users/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// New dials the broker and declares the topic exchange. It returns nil when
// no URL is configured.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*amqp.Channel, error) {
	acfg := cfg.Infrastructure.Amqp
	if acfg.Url == "" {
		log.Info("amqp disabled")
		return nil, nil
	}

	conn, err := amqp.Dial(acfg.Url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(acfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", acfg.Exchange, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			ch.Close()
			return conn.Close()
		},
	})
	return ch, nil
}
