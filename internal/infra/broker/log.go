package broker

import (
	"context"
	"log/slog"

	"campus-reservation/internal/usecase/shared"
)

// LogPublisher stands in for the broker when none is configured.
type LogPublisher struct{}

var _ shared.EventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, ev shared.Event) error {
	slog.Info("reservation event",
		"event_id", ev.ID.String(),
		"kind", ev.Kind,
		"reservation_id", ev.ReservationID)
	return nil
}

func (LogPublisher) Close() error { return nil }
