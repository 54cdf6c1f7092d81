package bootstrap

import (
	"context"

	"campus-reservation/internal/infra/broker"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects lazily, so a broker outage only delays the relay.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.Broker.Enabled {
		return broker.LogPublisher{}
	}

	pub := broker.NewAMQPPublisher(cfg.Broker)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
